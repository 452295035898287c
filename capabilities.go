package sqlsegment

// Feature represents dialect-specific syntax flags
type Feature int

const (
	FeatureBacktickIdentifier    Feature = iota + 1 // `name`
	FeatureDoubleQuoteIdentifier                    // "name" is an identifier, not a string
	FeatureDollarPlaceholder                        // $1, $2
	FeatureNamedPlaceholder                         // :name
	FeatureLimitCommaOffset                         // LIMIT offset, count
	FeatureLimitAll                                 // LIMIT ALL
)

// Capabilities defines which syntax features are supported by each dialect
var Capabilities = map[Dialect]map[Feature]bool{
	DialectPostgres: {
		FeatureBacktickIdentifier:    false,
		FeatureDoubleQuoteIdentifier: true,
		FeatureDollarPlaceholder:     true,
		FeatureNamedPlaceholder:      false,
		FeatureLimitCommaOffset:      false,
		FeatureLimitAll:              true,
	},
	DialectMySQL: {
		FeatureBacktickIdentifier:    true,
		FeatureDoubleQuoteIdentifier: false,
		FeatureDollarPlaceholder:     false,
		FeatureNamedPlaceholder:      false,
		FeatureLimitCommaOffset:      true,
		FeatureLimitAll:              false,
	},
	DialectMariaDB: {
		FeatureBacktickIdentifier:    true,
		FeatureDoubleQuoteIdentifier: false,
		FeatureDollarPlaceholder:     false,
		FeatureNamedPlaceholder:      false,
		FeatureLimitCommaOffset:      true,
		FeatureLimitAll:              false,
	},
	DialectSQLite: {
		FeatureBacktickIdentifier:    true,
		FeatureDoubleQuoteIdentifier: true,
		FeatureDollarPlaceholder:     false,
		FeatureNamedPlaceholder:      true,
		FeatureLimitCommaOffset:      true,
		FeatureLimitAll:              false,
	},
}

// Supports reports whether the dialect accepts the feature.
// Unknown dialects support nothing.
func (d Dialect) Supports(feature Feature) bool {
	return Capabilities[d][feature]
}
