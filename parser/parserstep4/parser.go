// Package parserstep4 parses the body of every clause and assembles the
// syntax tree of the statement.
package parserstep4

import (
	"iter"

	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/sqlsegment/parser/parsercommon"
	"github.com/shibukawa/sqlsegment/syntaxtree"
	tok "github.com/shibukawa/sqlsegment/tokenizer"
)

var (
	// Order By
	asc   = cmn.WS2(cmn.PrimitiveType("asc", tok.ASC))
	desc  = cmn.WS2(cmn.PrimitiveType("desc", tok.DESC))
	nulls = cmn.WS2(cmn.KeywordType("nulls", "NULLS"))
	first = cmn.WS2(cmn.KeywordType("first", "FIRST"))
	last  = cmn.WS2(cmn.KeywordType("last", "LAST"))

	// Limit / Offset
	all  = cmn.WS2(cmn.PrimitiveType("all", tok.ALL))
	rows = cmn.WS2(cmn.KeywordType("rows", "ROW", "ROWS"))
)

// fieldIter splits tokens at commas outside parentheses. Skipped holds the
// field tokens, Match the comma. The final field comes with Last set.
func fieldIter(tokens []pc.Token[tok.Token]) iter.Seq2[int, pc.Consume[tok.Token]] {
	splitter := pc.Or(cmn.Comma, cmn.ParenOpen, cmn.ParenClose)

	return func(yield func(index int, consume pc.Consume[tok.Token]) bool) {
		count := 0
		nest := 0

		var skipped []pc.Token[tok.Token]

		for _, part := range pc.FindIter(pc.NewParseContext[tok.Token](), splitter, tokens) {
			if part.Last {
				skipped = append(skipped, part.Skipped...)

				break
			}

			switch {
			case part.Match[0].Val.Type == tok.OPENED_PARENS:
				nest++
				skipped = append(skipped, part.Skipped...)
				skipped = append(skipped, part.Match...)
			case part.Match[0].Val.Type == tok.CLOSED_PARENS:
				nest--
				skipped = append(skipped, part.Skipped...)
				skipped = append(skipped, part.Match...)
			case nest > 0:
				skipped = append(skipped, part.Skipped...)
				skipped = append(skipped, part.Match...)
			default:
				skipped = append(skipped, part.Skipped...)
				if !yield(count, pc.Consume[tok.Token]{
					Consume: len(skipped) + len(part.Match),
					Skipped: skipped,
					Match:   part.Match,
				}) {
					return
				}

				skipped = nil
				count++
			}
		}

		yield(count, pc.Consume[tok.Token]{
			Consume: len(skipped),
			Skipped: skipped,
			Last:    true,
		})
	}
}

func newRule(rule syntaxtree.RuleName, tokens []pc.Token[tok.Token], children ...syntaxtree.Node) *syntaxtree.RuleNode {
	trimmed := cmn.TrimSpace(tokens)

	var position tok.Position
	if len(trimmed) > 0 {
		position = trimmed[0].Val.Position
	}

	return syntaxtree.NewRuleNode(rule, cmn.ToSrc(trimmed), position, children...)
}

func parameterMarker(token pc.Token[tok.Token]) syntaxtree.Node {
	return syntaxtree.NewRuleNode(syntaxtree.PARAMETER_MARKER, token.Val.Value, token.Val.Position, syntaxtree.NewTerminal(token.Val))
}

// terminals turns every meaningful token into a leaf. Placeholders become
// PARAMETER_MARKER nodes so they can be indexed.
func terminals(tokens []pc.Token[tok.Token]) []syntaxtree.Node {
	result := make([]syntaxtree.Node, 0, len(tokens))
	for _, token := range tokens {
		switch {
		case token.Val.IsSpace():
			continue
		case token.Val.Type == tok.PLACEHOLDER:
			result = append(result, parameterMarker(token))
		default:
			result = append(result, syntaxtree.NewTerminal(token.Val))
		}
	}

	return result
}
