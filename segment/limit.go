package segment

import "strconv"

// LimitValue is the row count or offset of a LIMIT clause: either a numeric
// literal or a reference to a bound parameter.
type LimitValue interface {
	String() string
	limitValue()
}

// NumberLiteralLimitValue is a literal row count or offset
type NumberLiteralLimitValue struct {
	Value int
}

func (v NumberLiteralLimitValue) String() string { return strconv.Itoa(v.Value) }
func (NumberLiteralLimitValue) limitValue()      {}

// ParameterMarkerLimitValue points at the 0-based position of the
// placeholder that supplies the value at execution time.
type ParameterMarkerLimitValue struct {
	ParameterIndex int
}

func (v ParameterMarkerLimitValue) String() string {
	return "?" + strconv.Itoa(v.ParameterIndex)
}
func (ParameterMarkerLimitValue) limitValue() {}

var (
	_ LimitValue = NumberLiteralLimitValue{}
	_ LimitValue = ParameterMarkerLimitValue{}
)

// Limit is the extracted LIMIT / OFFSET pagination of a statement.
// Either part may be nil when it was not written.
type Limit struct {
	RowCount LimitValue
	Offset   LimitValue
}
