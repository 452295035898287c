// Package parserstep2 splits a SELECT statement into its top-level clauses.
// Keywords nested in parentheses (subqueries, window definitions, function
// arguments) stay in the body of the enclosing clause.
package parserstep2

import (
	"fmt"

	pc "github.com/shibukawa/parsercombinator"
	"github.com/shibukawa/sqlsegment"
	cmn "github.com/shibukawa/sqlsegment/parser/parsercommon"
	tok "github.com/shibukawa/sqlsegment/tokenizer"
)

// Execute splits tokens into clauses in source order. Set operations and
// data modifying statements are rejected with ErrUnsupportedStatement.
func Execute(tokens []tok.Token) ([]cmn.Clause, error) {
	pctx := pc.NewParseContext[tok.Token]()

	var (
		clauses []cmn.Clause
		current *cmn.Clause
		leading []pc.Token[tok.Token]
		nest    int
	)

	appendBody := func(t []pc.Token[tok.Token]) {
		if current == nil {
			leading = append(leading, t...)
		} else {
			current.Body = append(current.Body, t...)
		}
	}

	for _, part := range pc.FindIter(pctx, splitter, cmn.ToParserToken(tokens)) {
		appendBody(part.Skipped)

		if part.Last {
			break
		}

		match := part.Match
		switch {
		case match[0].Val.Type == tok.OPENED_PARENS:
			nest++
			appendBody(match)
		case match[0].Val.Type == tok.CLOSED_PARENS:
			nest--
			appendBody(match)
		case nest > 0:
			appendBody(match)
		default:
			switch match[0].Type {
			case tagSetOperation:
				return nil, fmt.Errorf("%w: %s at %s", sqlsegment.ErrUnsupportedStatement, match[0].Val.Value, match[0].Val.Position.String())
			case tagDML:
				return nil, fmt.Errorf("%w: %s statement at %s", sqlsegment.ErrUnsupportedStatement, match[0].Val.Value, match[0].Val.Position.String())
			case tagIncomplete:
				return nil, fmt.Errorf("%w at %s: %s must be followed by BY", sqlsegment.ErrInvalidSQL, match[0].Val.Position.String(), match[0].Val.Value)
			}

			if current != nil {
				clauses = append(clauses, *current)
			}
			current = &cmn.Clause{
				Kind:    clauseTags[match[0].Type],
				Heading: match,
			}
		}
	}

	if current != nil {
		clauses = append(clauses, *current)
	}

	if first := cmn.FilterSpace(leading); len(first) > 0 {
		return nil, fmt.Errorf("%w: statement must start with SELECT or WITH but '%s' at %s",
			sqlsegment.ErrUnsupportedStatement, first[0].Val.Value, first[0].Val.Position.String())
	}

	return clauses, nil
}
