package parserstep4

import (
	"fmt"

	pc "github.com/shibukawa/parsercombinator"
	"github.com/shibukawa/sqlsegment"
	cmn "github.com/shibukawa/sqlsegment/parser/parsercommon"
	"github.com/shibukawa/sqlsegment/syntaxtree"
	tok "github.com/shibukawa/sqlsegment/tokenizer"
)

var limitValue = pc.Or(
	cmn.Tag("number", cmn.WS2(cmn.Number)),
	cmn.Tag("negative-number", cmn.WS2(cmn.Minus), cmn.WS2(cmn.Number)),
	cmn.Tag("placeholder", cmn.WS2(cmn.Placeholder)),
)

var (
	limitAll    = pc.Seq(all, cmn.EOS)
	limitComma  = cmn.WS2(cmn.Comma)
	offsetTail  = pc.Seq(pc.Optional(rows), cmn.EOS)
	endOfClause = pc.Seq(cmn.SP, cmn.EOS)
)

// finalizeLimitOffsetClause merges LIMIT and OFFSET into one LIMIT_CLAUSE
// node. Either clause may be nil. Supported forms are LIMIT n, LIMIT ALL,
// LIMIT offset, n (not PostgreSQL), LIMIT n OFFSET m and OFFSET m [ROWS]
// in either order.
func finalizeLimitOffsetClause(limitClause, offsetClause *cmn.Clause, dialect sqlsegment.Dialect, perr *cmn.ParseError) *syntaxtree.RuleNode {
	var (
		limitChildren   []syntaxtree.Node
		offsetChildren  []syntaxtree.Node
		hasInlineOffset bool
		tokens          []pc.Token[tok.Token]
	)

	if limitClause != nil {
		children, inlineOffset, err := parseLimitBody(*limitClause, dialect)
		if err != nil {
			perr.Add(err)
		}
		limitChildren = append(terminals(limitClause.Heading), children...)
		hasInlineOffset = inlineOffset
	}

	if offsetClause != nil {
		if hasInlineOffset {
			perr.Add(fmt.Errorf("%w at %s: OFFSET is already given in LIMIT", sqlsegment.ErrInvalidSQL, offsetClause.Position().String()))
		}
		children, err := parseOffsetBody(*offsetClause)
		if err != nil {
			perr.Add(err)
		}
		offsetChildren = append(terminals(offsetClause.Heading), children...)
	}

	var children []syntaxtree.Node
	switch {
	case limitClause == nil:
		children = offsetChildren
		tokens = offsetClause.Tokens()
	case offsetClause == nil:
		children = limitChildren
		tokens = limitClause.Tokens()
	case limitClause.Position().Offset < offsetClause.Position().Offset:
		children = append(limitChildren, offsetChildren...)
		tokens = append(limitClause.Tokens(), offsetClause.Tokens()...)
	default:
		children = append(offsetChildren, limitChildren...)
		tokens = append(offsetClause.Tokens(), limitClause.Tokens()...)
	}

	return newRule(syntaxtree.LIMIT_CLAUSE, tokens, children...)
}

func parseLimitBody(clause cmn.Clause, dialect sqlsegment.Dialect) ([]syntaxtree.Node, bool, error) {
	pctx := pc.NewParseContext[tok.Token]()
	body := cmn.TrimSpace(clause.Body)

	if _, match, err := limitAll(pctx, body); err == nil {
		if !dialect.Supports(sqlsegment.FeatureLimitAll) {
			return nil, false, fmt.Errorf("%w at %s: LIMIT ALL is not supported by %s", sqlsegment.ErrInvalidSQL, match[0].Val.Position.String(), dialect)
		}

		return terminals(match), false, nil
	}

	consume, first, err := parseValue(pctx, clause, body)
	if err != nil {
		return nil, false, err
	}
	rest := body[consume:]

	if _, _, err := endOfClause(pctx, rest); err == nil {
		return []syntaxtree.Node{newLimitPart(syntaxtree.LIMIT_ROW_COUNT, first)}, false, nil
	}

	consume, comma, err := limitComma(pctx, rest)
	if err != nil {
		return nil, false, fmt.Errorf("%w at %s: unexpected '%s' in %s", sqlsegment.ErrInvalidSQL, rest[0].Val.Position.String(), rest[0].Val.Value, clause.Keyword())
	}
	if !dialect.Supports(sqlsegment.FeatureLimitCommaOffset) {
		return nil, false, fmt.Errorf("%w at %s: LIMIT offset, count is not supported by %s", sqlsegment.ErrInvalidSQL, comma[0].Val.Position.String(), dialect)
	}
	rest = rest[consume:]

	consume, second, err := parseValue(pctx, clause, rest)
	if err != nil {
		return nil, false, err
	}
	rest = rest[consume:]

	if _, _, err := endOfClause(pctx, rest); err != nil {
		return nil, false, fmt.Errorf("%w at %s: unexpected '%s' in %s", sqlsegment.ErrInvalidSQL, rest[0].Val.Position.String(), rest[0].Val.Value, clause.Keyword())
	}

	return []syntaxtree.Node{
		newLimitPart(syntaxtree.LIMIT_OFFSET, first),
		syntaxtree.NewTerminal(comma[0].Val),
		newLimitPart(syntaxtree.LIMIT_ROW_COUNT, second),
	}, true, nil
}

func parseOffsetBody(clause cmn.Clause) ([]syntaxtree.Node, error) {
	pctx := pc.NewParseContext[tok.Token]()
	body := cmn.TrimSpace(clause.Body)

	consume, value, err := parseValue(pctx, clause, body)
	if err != nil {
		return nil, err
	}
	rest := body[consume:]

	_, tail, err := offsetTail(pctx, rest)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: unexpected '%s' in OFFSET", sqlsegment.ErrInvalidSQL, rest[0].Val.Position.String(), rest[0].Val.Value)
	}

	return append([]syntaxtree.Node{newLimitPart(syntaxtree.LIMIT_OFFSET, value)}, terminals(tail)...), nil
}

// parseValue reads a non negative number or a placeholder.
func parseValue(pctx *pc.ParseContext[tok.Token], clause cmn.Clause, tokens []pc.Token[tok.Token]) (int, syntaxtree.Node, error) {
	consume, match, err := limitValue(pctx, tokens)
	if err != nil {
		if len(tokens) == 0 {
			return 0, nil, fmt.Errorf("%w: %s clause requires number for its content", sqlsegment.ErrInvalidSQL, clause.Keyword())
		}
		return 0, nil, fmt.Errorf("%w at %s: invalid number in %s clause", sqlsegment.ErrInvalidSQL, tokens[0].Val.Position.String(), clause.Keyword())
	}

	switch match[0].Type {
	case "negative-number":
		return 0, nil, fmt.Errorf("%w at %s: negative number in %s clause is not supported", sqlsegment.ErrInvalidSQL, match[0].Val.Position.String(), clause.Keyword())
	case "placeholder":
		return consume, parameterMarker(match[0]), nil
	default:
		return consume, newRule(syntaxtree.NUMBER_LITERAL, match, terminals(match)...), nil
	}
}

func newLimitPart(rule syntaxtree.RuleName, value syntaxtree.Node) syntaxtree.Node {
	var position tok.Position
	if p, ok := value.(interface{ Position() tok.Position }); ok {
		position = p.Position()
	}

	return syntaxtree.NewRuleNode(rule, value.Text(), position, value)
}
