package extractor

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/sqlsegment"
	"github.com/shibukawa/sqlsegment/segment"
	st "github.com/shibukawa/sqlsegment/syntaxtree"
)

func term(text string) st.Node {
	return st.NewTerminalText(text)
}

func item(children ...st.Node) st.Node {
	return st.NewRule(st.ORDER_BY_ITEM, children...)
}

func number(text string) st.Node {
	return st.NewRule(st.NUMBER_LITERAL, term(text))
}

func column(text string) st.Node {
	return st.NewRule(st.COLUMN_NAME, term(text))
}

func expr(children ...st.Node) st.Node {
	return st.NewRule(st.EXPR, children...)
}

// ORDER BY <items separated by ','>
func orderByClause(items ...st.Node) st.Node {
	children := []st.Node{term("ORDER"), term("BY")}
	for i, it := range items {
		if i > 0 {
			children = append(children, term(","))
		}
		children = append(children, it)
	}

	return st.NewRule(st.ORDER_BY_CLAUSE, children...)
}

func TestOrderByItemExtractor_EndToEndShape(t *testing.T) {
	// ORDER BY 2 DESC, name, LENGTH(name) ASC
	clause := orderByClause(
		item(number("2"), term("DESC")),
		item(column("name")),
		item(expr(term("LENGTH"), term("("), term("name"), term(")")), term("ASC")),
	)

	got, err := OrderByItemExtractor{}.Extract(clause, st.PlaceholderIndex{})
	assert.NoError(t, err)
	assert.Equal(t, []segment.OrderByItem{
		segment.NewIndexOrderByItem(2, segment.DESC, segment.ASC),
		segment.NewColumnOrderByItem("name", segment.ASC, segment.ASC),
		segment.NewExpressionOrderByItem("LENGTH(name)", segment.ASC, segment.ASC),
	}, got)
}

func TestOrderByItemExtractor_Direction(t *testing.T) {
	tests := []struct {
		name     string
		item     st.Node
		expected segment.OrderDirection
	}{
		{"lower desc", item(column("a"), term("desc")), segment.DESC},
		{"upper desc", item(column("a"), term("DESC")), segment.DESC},
		{"mixed desc", item(column("a"), term("DeSc")), segment.DESC},
		{"asc", item(column("a"), term("asc")), segment.ASC},
		{"no direction", item(column("a")), segment.ASC},
		{"other text", item(column("a"), term("DESCENDING")), segment.ASC},
		{"desc as third child", item(column("a"), term("COLLATE"), term("DESC")), segment.ASC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OrderByItemExtractor{}.Extract(orderByClause(tt.item), nil)
			assert.NoError(t, err)
			assert.Equal(t, 1, len(got))
			assert.Equal(t, tt.expected, got[0].Direction())
			assert.Equal(t, segment.ASC, got[0].NullsDirection())
		})
	}
}

func TestOrderByItemExtractor_ShapePriority(t *testing.T) {
	tests := []struct {
		name     string
		item     st.Node
		expected segment.OrderByItem
	}{
		{
			name:     "literal wins over enclosing expression",
			item:     item(expr(number("2"))),
			expected: segment.NewIndexOrderByItem(2, segment.ASC, segment.ASC),
		},
		{
			name:     "literal wins over column",
			item:     item(column("a"), number("3")),
			expected: segment.NewIndexOrderByItem(3, segment.ASC, segment.ASC),
		},
		{
			name:     "expression wins over column",
			item:     item(expr(column("a"), term("+"), term("b"))),
			expected: segment.NewExpressionOrderByItem("a+b", segment.ASC, segment.ASC),
		},
		{
			name:     "column only",
			item:     item(column("user_id")),
			expected: segment.NewColumnOrderByItem("user_id", segment.ASC, segment.ASC),
		},
		{
			name:     "qualified column",
			item:     item(column("t.user_id"), term("DESC")),
			expected: segment.NewColumnOrderByItem("t.user_id", segment.DESC, segment.ASC),
		},
		{
			name:     "fraction truncates",
			item:     item(number("1.5")),
			expected: segment.NewIndexOrderByItem(1, segment.ASC, segment.ASC),
		},
		{
			name:     "zero and negative ordinals are not validated",
			item:     item(number("-1"), term("DESC")),
			expected: segment.NewIndexOrderByItem(-1, segment.DESC, segment.ASC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OrderByItemExtractor{}.Extract(orderByClause(tt.item), nil)
			assert.NoError(t, err)
			assert.Equal(t, []segment.OrderByItem{tt.expected}, got)
		})
	}
}

func TestOrderByItemExtractor_SkipsUnrecognizedShape(t *testing.T) {
	marker := st.NewRule(st.PARAMETER_MARKER, term("?"))
	clause := orderByClause(
		item(column("a")),
		item(marker, term("DESC")),
		item(column("b")),
	)

	got, err := OrderByItemExtractor{}.Extract(clause, st.PlaceholderIndex{marker: 0})
	assert.NoError(t, err)
	assert.Equal(t, []segment.OrderByItem{
		segment.NewColumnOrderByItem("a", segment.ASC, segment.ASC),
		segment.NewColumnOrderByItem("b", segment.ASC, segment.ASC),
	}, got)
}

func TestOrderByItemExtractor_Empty(t *testing.T) {
	tests := []struct {
		name string
		root st.Node
	}{
		{"clause without items", orderByClause()},
		{"unrelated subtree", st.NewRule(st.WHERE_CLAUSE, term("WHERE"), term("a"))},
		{"nil root", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OrderByItemExtractor{}.Extract(tt.root, nil)
			assert.NoError(t, err)
			assert.Equal(t, 0, len(got))
		})
	}
}

func TestOrderByItemExtractor_MalformedLiteral(t *testing.T) {
	clause := orderByClause(
		item(column("a")),
		item(number("1x")),
		item(column("b")),
	)

	got, err := OrderByItemExtractor{}.Extract(clause, nil)
	assert.IsError(t, err, sqlsegment.ErrMalformedNumericLiteral)
	assert.Zero(t, got)
}

func TestOrderByItemExtractor_HugeOrdinals(t *testing.T) {
	clause := orderByClause(
		item(number("1e900000000")),
		item(number("9223372036854775808"), term("DESC")),
		item(number("1e-900000000")),
	)

	got, err := OrderByItemExtractor{}.Extract(clause, nil)
	assert.NoError(t, err)
	assert.Equal(t, []segment.OrderByItem{
		segment.NewIndexOrderByItem(0, segment.ASC, segment.ASC),
		segment.NewIndexOrderByItem(-9223372036854775808, segment.DESC, segment.ASC),
		segment.NewIndexOrderByItem(0, segment.ASC, segment.ASC),
	}, got)
}

func TestOrderByItemExtractor_LengthBound(t *testing.T) {
	clause := orderByClause(
		item(column("a")),
		item(term("?")),
		item(expr(term("f"), term("("), term(")"))),
		item(),
	)

	occurrences := len(st.FindAllDescendants(clause, st.ORDER_BY_ITEM))
	got, err := OrderByItemExtractor{}.Extract(clause, nil)
	assert.NoError(t, err)
	assert.Equal(t, 4, occurrences)
	assert.Equal(t, 2, len(got))
}
