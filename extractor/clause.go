package extractor

import (
	"github.com/shibukawa/sqlsegment/segment"
	"github.com/shibukawa/sqlsegment/syntaxtree"
)

// findClause returns root itself when it is the clause, otherwise the first
// direct child with the rule. Nested statements are not searched, so an
// ORDER BY inside a subquery never leaks into the outer statement.
func findClause(root syntaxtree.Node, rule syntaxtree.RuleName) (syntaxtree.Node, bool) {
	if root == nil {
		return nil, false
	}
	if root.Rule() == rule {
		return root, true
	}
	for _, child := range root.Children() {
		if child.Rule() == rule {
			return child, true
		}
	}

	return nil, false
}

// OrderByExtractor extracts the ORDER BY clause of a statement.
type OrderByExtractor struct {
	items OrderByItemExtractor
}

// Extract returns false when the statement has no ORDER BY clause.
func (e OrderByExtractor) Extract(stmt syntaxtree.Node, placeholders syntaxtree.PlaceholderIndex) (*segment.OrderBy, bool, error) {
	clause, ok := findClause(stmt, syntaxtree.ORDER_BY_CLAUSE)
	if !ok {
		return nil, false, nil
	}

	items, err := e.items.Extract(clause, placeholders)
	if err != nil {
		return nil, false, err
	}

	return &segment.OrderBy{Items: items}, true, nil
}

// GroupByExtractor extracts the GROUP BY clause of a statement. Grouping
// keys are ORDER_BY_ITEM nodes, so ASC/DESC written after a key (MySQL
// before 8.0) is kept.
type GroupByExtractor struct {
	items OrderByItemExtractor
}

// Extract returns false when the statement has no GROUP BY clause.
func (e GroupByExtractor) Extract(stmt syntaxtree.Node, placeholders syntaxtree.PlaceholderIndex) (*segment.GroupBy, bool, error) {
	clause, ok := findClause(stmt, syntaxtree.GROUP_BY_CLAUSE)
	if !ok {
		return nil, false, nil
	}

	items, err := e.items.Extract(clause, placeholders)
	if err != nil {
		return nil, false, err
	}

	return &segment.GroupBy{Items: items}, true, nil
}
