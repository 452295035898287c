package parserstep4

import (
	"fmt"

	pc "github.com/shibukawa/parsercombinator"
	"github.com/shibukawa/sqlsegment"
	cmn "github.com/shibukawa/sqlsegment/parser/parsercommon"
	"github.com/shibukawa/sqlsegment/syntaxtree"
	tok "github.com/shibukawa/sqlsegment/tokenizer"
)

var (
	orderByQualifier = pc.Seq(
		cmn.SP,
		pc.Optional(cmn.Tag("order", pc.Or(asc, desc))),
		cmn.SP,
		pc.Optional(cmn.Tag("nulls", nulls, pc.Or(first, last))),
		cmn.SP,
		cmn.EOS)

	numberLiteral = pc.Seq(
		pc.Optional(cmn.WS2(cmn.Minus)),
		cmn.Number,
		cmn.SP,
		cmn.EOS)

	columnName = pc.Seq(
		cmn.Identifier,
		pc.Optional(pc.Seq(cmn.Dot, cmn.Identifier)),
		pc.Optional(pc.Seq(cmn.Dot, cmn.Identifier)),
		cmn.SP,
		cmn.EOS)

	parameterOnly = pc.Seq(cmn.Placeholder, cmn.SP, cmn.EOS)
)

// finalizeOrderByClause builds an ORDER BY or GROUP BY clause node. Every
// comma separated field becomes an ORDER_BY_ITEM whose children are the
// sort key and, when written, the ASC/DESC keyword.
func finalizeOrderByClause(rule syntaxtree.RuleName, clause cmn.Clause, perr *cmn.ParseError) *syntaxtree.RuleNode {
	children := terminals(clause.Heading)

	for _, part := range fieldIter(clause.Body) {
		item, err := orderByItem(clause, part.Skipped)
		if err != nil {
			perr.Add(err)
		} else {
			children = append(children, item)
		}

		children = append(children, terminals(part.Match)...)
	}

	return newRule(rule, clause.Tokens(), children...)
}

func orderByItem(clause cmn.Clause, tokens []pc.Token[tok.Token]) (syntaxtree.Node, error) {
	tokens = cmn.TrimSpace(tokens)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w at %s: empty item in %s", sqlsegment.ErrInvalidSQL, clause.Position().String(), clause.Keyword())
	}

	pctx := pc.NewParseContext[tok.Token]()

	key := tokens
	var direction syntaxtree.Node

	skipped, qualifiers, _, _, found := pc.Find(pctx, orderByQualifier, tokens)
	if found {
		key = cmn.TrimSpace(skipped)
		for _, q := range qualifiers {
			switch q.Type {
			case "order":
				direction = syntaxtree.NewTerminal(q.Val)
			case "nulls":
				return nil, fmt.Errorf("%w at %s: NULLS FIRST/LAST is not supported", sqlsegment.ErrInvalidSQL, q.Val.Position.String())
			}
		}
	}

	if len(key) == 0 {
		return nil, fmt.Errorf("%w at %s: %s item has no sort key", sqlsegment.ErrInvalidSQL, tokens[0].Val.Position.String(), clause.Keyword())
	}

	children := []syntaxtree.Node{sortKey(pctx, key)}
	if direction != nil {
		children = append(children, direction)
	}

	return newRule(syntaxtree.ORDER_BY_ITEM, tokens, children...), nil
}

// sortKey classifies a sort key by its shape: a signed number, a possibly
// qualified column, a lone placeholder or any other expression.
func sortKey(pctx *pc.ParseContext[tok.Token], key []pc.Token[tok.Token]) syntaxtree.Node {
	if _, _, err := numberLiteral(pctx, key); err == nil {
		meaningful := cmn.FilterSpace(key)
		return syntaxtree.NewRuleNode(syntaxtree.NUMBER_LITERAL, cmn.ToSrc(meaningful), key[0].Val.Position, terminals(meaningful)...)
	}

	if _, _, err := columnName(pctx, key); err == nil {
		return newRule(syntaxtree.COLUMN_NAME, key, terminals(key)...)
	}

	if _, _, err := parameterOnly(pctx, key); err == nil {
		return parameterMarker(key[0])
	}

	return newRule(syntaxtree.EXPR, key, terminals(key)...)
}
