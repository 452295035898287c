package parserstep4

import (
	pc "github.com/shibukawa/parsercombinator"
	"github.com/shibukawa/sqlsegment"
	cmn "github.com/shibukawa/sqlsegment/parser/parsercommon"
	"github.com/shibukawa/sqlsegment/syntaxtree"
	tok "github.com/shibukawa/sqlsegment/tokenizer"
)

var genericClauses = map[cmn.ClauseKind]syntaxtree.RuleName{
	cmn.WITH_CLAUSE:   syntaxtree.WITH_CLAUSE,
	cmn.SELECT_CLAUSE: syntaxtree.SELECT_CLAUSE,
	cmn.FROM_CLAUSE:   syntaxtree.FROM_CLAUSE,
	cmn.WHERE_CLAUSE:  syntaxtree.WHERE_CLAUSE,
	cmn.HAVING_CLAUSE: syntaxtree.HAVING_CLAUSE,
}

// Execute builds the SELECT_STATEMENT tree from validated clauses. Problems
// are added to perr; the returned tree is still complete for the clauses
// that parsed.
func Execute(clauses []cmn.Clause, dialect sqlsegment.Dialect, perr *cmn.ParseError) *syntaxtree.RuleNode {
	var (
		children     []syntaxtree.Node
		tokens       []pc.Token[tok.Token]
		limitClause  *cmn.Clause
		offsetClause *cmn.Clause
		limitAt      = -1
	)

	for i := range clauses {
		clause := clauses[i]
		tokens = append(tokens, clause.Tokens()...)

		switch clause.Kind {
		case cmn.GROUP_BY_CLAUSE:
			children = append(children, finalizeOrderByClause(syntaxtree.GROUP_BY_CLAUSE, clause, perr))
		case cmn.ORDER_BY_CLAUSE:
			children = append(children, finalizeOrderByClause(syntaxtree.ORDER_BY_CLAUSE, clause, perr))
		case cmn.LIMIT_CLAUSE, cmn.OFFSET_CLAUSE:
			if clause.Kind == cmn.LIMIT_CLAUSE {
				limitClause = &clauses[i]
			} else {
				offsetClause = &clauses[i]
			}
			if limitAt < 0 {
				limitAt = len(children)
				children = append(children, nil)
			}
		default:
			rule := genericClauses[clause.Kind]
			children = append(children, newRule(rule, clause.Tokens(), terminals(clause.Tokens())...))
		}
	}

	if limitAt >= 0 {
		children[limitAt] = finalizeLimitOffsetClause(limitClause, offsetClause, dialect, perr)
	}

	return newRule(syntaxtree.SELECT_STATEMENT, tokens, children...)
}
