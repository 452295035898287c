package segment

// Select bundles the segments extracted from one SELECT statement.
// A nil field means the clause is absent.
type Select struct {
	GroupBy *GroupBy
	OrderBy *OrderBy
	Limit   *Limit
}

// ItemKind names the variant of an OrderByItem in a Describe view
type ItemKind string

const (
	IndexItem      ItemKind = "index"
	ExpressionItem ItemKind = "expression"
	ColumnItem     ItemKind = "column"
)

// ItemView is the serializable form of an OrderByItem.
type ItemView struct {
	Kind           ItemKind `json:"kind" yaml:"kind"`
	Index          *int     `json:"index,omitempty" yaml:"index,omitempty"`
	Expression     string   `json:"expression,omitempty" yaml:"expression,omitempty"`
	Column         string   `json:"column,omitempty" yaml:"column,omitempty"`
	Direction      string   `json:"direction" yaml:"direction"`
	NullsDirection string   `json:"nulls_direction" yaml:"nulls_direction"`
}

// LimitView is the serializable form of a Limit.
type LimitView struct {
	RowCount *LimitValueView `json:"row_count,omitempty" yaml:"row_count,omitempty"`
	Offset   *LimitValueView `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// LimitValueView is the serializable form of a LimitValue.
type LimitValueView struct {
	Value          *int `json:"value,omitempty" yaml:"value,omitempty"`
	ParameterIndex *int `json:"parameter_index,omitempty" yaml:"parameter_index,omitempty"`
}

// SelectView is the serializable form of a Select.
type SelectView struct {
	GroupBy []ItemView `json:"group_by,omitempty" yaml:"group_by,omitempty"`
	OrderBy []ItemView `json:"order_by,omitempty" yaml:"order_by,omitempty"`
	Limit   *LimitView `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// DescribeItem converts an item into its serializable form.
func DescribeItem(item OrderByItem) ItemView {
	view := ItemView{
		Direction:      item.Direction().String(),
		NullsDirection: item.NullsDirection().String(),
	}

	switch v := item.(type) {
	case IndexOrderByItem:
		index := v.Index
		view.Kind = IndexItem
		view.Index = &index
	case ExpressionOrderByItem:
		view.Kind = ExpressionItem
		view.Expression = v.Expression
	case ColumnOrderByItem:
		view.Kind = ColumnItem
		view.Column = v.Column
	}

	return view
}

func describeItems(items []OrderByItem) []ItemView {
	result := make([]ItemView, 0, len(items))
	for _, item := range items {
		result = append(result, DescribeItem(item))
	}

	return result
}

func describeLimitValue(value LimitValue) *LimitValueView {
	switch v := value.(type) {
	case NumberLiteralLimitValue:
		n := v.Value
		return &LimitValueView{Value: &n}
	case ParameterMarkerLimitValue:
		n := v.ParameterIndex
		return &LimitValueView{ParameterIndex: &n}
	default:
		return nil
	}
}

// Describe converts the extracted segments into their serializable form.
func (s *Select) Describe() SelectView {
	var view SelectView
	if s == nil {
		return view
	}

	if s.GroupBy != nil {
		view.GroupBy = describeItems(s.GroupBy.Items)
	}

	if s.OrderBy != nil {
		view.OrderBy = describeItems(s.OrderBy.Items)
	}

	if s.Limit != nil {
		view.Limit = &LimitView{
			RowCount: describeLimitValue(s.Limit.RowCount),
			Offset:   describeLimitValue(s.Limit.Offset),
		}
	}

	return view
}
