package extractor

import (
	"github.com/shibukawa/sqlsegment/segment"
	"github.com/shibukawa/sqlsegment/syntaxtree"
)

// SelectExtractor runs every clause extractor over one SELECT statement.
type SelectExtractor struct {
	groupBy GroupByExtractor
	orderBy OrderByExtractor
	limit   LimitExtractor
}

// Extract fails as a whole when any clause fails.
func (e SelectExtractor) Extract(stmt syntaxtree.Node, placeholders syntaxtree.PlaceholderIndex) (*segment.Select, error) {
	var result segment.Select

	groupBy, ok, err := e.groupBy.Extract(stmt, placeholders)
	if err != nil {
		return nil, err
	}
	if ok {
		result.GroupBy = groupBy
	}

	orderBy, ok, err := e.orderBy.Extract(stmt, placeholders)
	if err != nil {
		return nil, err
	}
	if ok {
		result.OrderBy = orderBy
	}

	limit, ok, err := e.limit.Extract(stmt, placeholders)
	if err != nil {
		return nil, err
	}
	if ok {
		result.Limit = limit
	}

	return &result, nil
}
