// Package extractor converts clause subtrees of a parsed statement into the
// typed items of the segment package. Extractors hold no state and may be
// shared between goroutines.
package extractor

import (
	"strings"

	"github.com/shibukawa/sqlsegment/numberutil"
	"github.com/shibukawa/sqlsegment/segment"
	"github.com/shibukawa/sqlsegment/syntaxtree"
)

// OrderByItemExtractor turns every ORDER_BY_ITEM node below a clause into
// an OrderByItem.
type OrderByItemExtractor struct{}

// Extract returns the items of root in document order.
//
// An item is DESC only when it has exactly two children and the second one
// reads DESC in any letter case. The sort key is chosen by the first rule
// found in the item, checked in this order: NUMBER_LITERAL, EXPR,
// COLUMN_NAME. Items matching none of them are skipped. NULL ordering is
// always ASC since the grammar does not carry it.
//
// placeholders is not consulted for ORDER BY; it is accepted so all clause
// extractors share one signature.
func (OrderByItemExtractor) Extract(root syntaxtree.Node, placeholders syntaxtree.PlaceholderIndex) ([]segment.OrderByItem, error) {
	nodes := syntaxtree.FindAllDescendants(root, syntaxtree.ORDER_BY_ITEM)
	result := make([]segment.OrderByItem, 0, len(nodes))

	for _, node := range nodes {
		direction := orderDirection(node)

		if literal, ok := syntaxtree.FindFirstChild(node, syntaxtree.NUMBER_LITERAL); ok {
			number, err := numberutil.ParseExactNumber(literal.Text(), 10)
			if err != nil {
				return nil, err
			}
			result = append(result, segment.NewIndexOrderByItem(number.Int(), direction, segment.ASC))
		} else if expr, ok := syntaxtree.FindFirstChild(node, syntaxtree.EXPR); ok {
			result = append(result, segment.NewExpressionOrderByItem(expr.Text(), direction, segment.ASC))
		} else if column, ok := syntaxtree.FindFirstChild(node, syntaxtree.COLUMN_NAME); ok {
			result = append(result, segment.NewColumnOrderByItem(column.Text(), direction, segment.ASC))
		}
	}

	return result, nil
}

func orderDirection(item syntaxtree.Node) segment.OrderDirection {
	children := item.Children()
	if len(children) == 2 && strings.EqualFold(children[1].Text(), segment.DESC.String()) {
		return segment.DESC
	}

	return segment.ASC
}
