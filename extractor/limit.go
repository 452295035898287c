package extractor

import (
	"fmt"

	"github.com/shibukawa/sqlsegment"
	"github.com/shibukawa/sqlsegment/numberutil"
	"github.com/shibukawa/sqlsegment/segment"
	"github.com/shibukawa/sqlsegment/syntaxtree"
)

// LimitExtractor extracts LIMIT and OFFSET of a statement.
type LimitExtractor struct{}

// Extract returns false when the statement has neither LIMIT nor OFFSET.
// Placeholder values are reported by their position in placeholders.
func (LimitExtractor) Extract(stmt syntaxtree.Node, placeholders syntaxtree.PlaceholderIndex) (*segment.Limit, bool, error) {
	clause, ok := findClause(stmt, syntaxtree.LIMIT_CLAUSE)
	if !ok {
		return nil, false, nil
	}

	var result segment.Limit

	for _, child := range clause.Children() {
		switch child.Rule() {
		case syntaxtree.LIMIT_ROW_COUNT:
			value, err := limitValue(child, placeholders)
			if err != nil {
				return nil, false, err
			}
			result.RowCount = value
		case syntaxtree.LIMIT_OFFSET:
			value, err := limitValue(child, placeholders)
			if err != nil {
				return nil, false, err
			}
			result.Offset = value
		}
	}

	return &result, true, nil
}

func limitValue(node syntaxtree.Node, placeholders syntaxtree.PlaceholderIndex) (segment.LimitValue, error) {
	if marker, ok := syntaxtree.FindFirstChild(node, syntaxtree.PARAMETER_MARKER); ok {
		index, ok := placeholders[marker]
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", sqlsegment.ErrParameterMarkerNotIndexed, marker.Text())
		}
		return segment.ParameterMarkerLimitValue{ParameterIndex: index}, nil
	}

	if literal, ok := syntaxtree.FindFirstChild(node, syntaxtree.NUMBER_LITERAL); ok {
		value, err := numberutil.RoundHalfUp(literal.Text())
		if err != nil {
			return nil, err
		}
		return segment.NumberLiteralLimitValue{Value: value}, nil
	}

	return nil, fmt.Errorf("%w: %s expects a number or a placeholder but got '%s'",
		sqlsegment.ErrUnexpectedNodeShape, node.Rule(), node.Text())
}
