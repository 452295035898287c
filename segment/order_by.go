// Package segment holds the normalized clause items produced by the
// extractors. Values are plain structs that compare with ==.
package segment

// OrderDirection represents ASC or DESC ordering. It is used both for the
// sort direction and for the position of NULL values.
type OrderDirection int

const (
	ASC OrderDirection = iota
	DESC
)

func (d OrderDirection) String() string {
	switch d {
	case ASC:
		return "ASC"
	case DESC:
		return "DESC"
	default:
		return "UNKNOWN"
	}
}

// OrderByItem is one sort key of an ORDER BY or GROUP BY clause.
// The concrete type is one of IndexOrderByItem, ExpressionOrderByItem or
// ColumnOrderByItem.
type OrderByItem interface {
	Direction() OrderDirection
	NullsDirection() OrderDirection
	orderByItem()
}

// IndexOrderByItem sorts by the 1-based position of a projection column,
// as in ORDER BY 2. The index is not validated against the projection.
type IndexOrderByItem struct {
	Index int
	Order OrderDirection
	Nulls OrderDirection
}

func NewIndexOrderByItem(index int, order, nulls OrderDirection) IndexOrderByItem {
	return IndexOrderByItem{Index: index, Order: order, Nulls: nulls}
}

func (i IndexOrderByItem) Direction() OrderDirection      { return i.Order }
func (i IndexOrderByItem) NullsDirection() OrderDirection { return i.Nulls }
func (IndexOrderByItem) orderByItem()                     {}

// ExpressionOrderByItem sorts by an arbitrary expression kept as source text.
type ExpressionOrderByItem struct {
	Expression string
	Order      OrderDirection
	Nulls      OrderDirection
}

func NewExpressionOrderByItem(expression string, order, nulls OrderDirection) ExpressionOrderByItem {
	return ExpressionOrderByItem{Expression: expression, Order: order, Nulls: nulls}
}

func (e ExpressionOrderByItem) Direction() OrderDirection      { return e.Order }
func (e ExpressionOrderByItem) NullsDirection() OrderDirection { return e.Nulls }
func (ExpressionOrderByItem) orderByItem()                     {}

// ColumnOrderByItem sorts by a column reference, possibly qualified.
type ColumnOrderByItem struct {
	Column string
	Order  OrderDirection
	Nulls  OrderDirection
}

func NewColumnOrderByItem(column string, order, nulls OrderDirection) ColumnOrderByItem {
	return ColumnOrderByItem{Column: column, Order: order, Nulls: nulls}
}

func (c ColumnOrderByItem) Direction() OrderDirection      { return c.Order }
func (c ColumnOrderByItem) NullsDirection() OrderDirection { return c.Nulls }
func (ColumnOrderByItem) orderByItem()                     {}

var (
	_ OrderByItem = IndexOrderByItem{}
	_ OrderByItem = ExpressionOrderByItem{}
	_ OrderByItem = ColumnOrderByItem{}
)

// OrderBy is the extracted ORDER BY clause of a statement
type OrderBy struct {
	Items []OrderByItem
}

// GroupBy is the extracted GROUP BY clause of a statement.
// Its keys share the ORDER BY item model.
type GroupBy struct {
	Items []OrderByItem
}
