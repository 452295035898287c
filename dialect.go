package sqlsegment

import "slices"

// Dialect represents supported database dialects
// This type is shared across all packages
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite"
	DialectMariaDB  Dialect = "mariadb"
)

// Dialects lists every dialect the tokenizer understands.
var Dialects = []Dialect{DialectPostgres, DialectMySQL, DialectMariaDB, DialectSQLite}

// IsValid reports whether d is one of the known dialects.
func (d Dialect) IsValid() bool {
	return slices.Contains(Dialects, d)
}

// BacktickIdentifier reports whether `name` is a quoted identifier.
func (d Dialect) BacktickIdentifier() bool {
	return d.Supports(FeatureBacktickIdentifier)
}

// DoubleQuoteIdentifier reports whether "name" is a quoted identifier rather than a string.
func (d Dialect) DoubleQuoteIdentifier() bool {
	return d.Supports(FeatureDoubleQuoteIdentifier)
}

// DollarPlaceholder reports whether $1, $2... are bind parameters.
func (d Dialect) DollarPlaceholder() bool {
	return d.Supports(FeatureDollarPlaceholder)
}

// NamedPlaceholder reports whether :name is a bind parameter.
func (d Dialect) NamedPlaceholder() bool {
	return d.Supports(FeatureNamedPlaceholder)
}
