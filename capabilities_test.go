package sqlsegment

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDialectCapabilities(t *testing.T) {
	assert.True(t, DialectMySQL.BacktickIdentifier())
	assert.False(t, DialectMySQL.DoubleQuoteIdentifier())
	assert.True(t, DialectPostgres.DoubleQuoteIdentifier())
	assert.True(t, DialectPostgres.DollarPlaceholder())
	assert.False(t, DialectSQLite.DollarPlaceholder())
	assert.True(t, DialectSQLite.NamedPlaceholder())
	assert.False(t, Dialect("oracle").IsValid())
}

func TestSupports(t *testing.T) {
	tests := []struct {
		dialect  Dialect
		feature  Feature
		expected bool
	}{
		{DialectPostgres, FeatureLimitCommaOffset, false},
		{DialectMySQL, FeatureLimitCommaOffset, true},
		{DialectMariaDB, FeatureLimitCommaOffset, true},
		{DialectSQLite, FeatureLimitCommaOffset, true},
		{DialectPostgres, FeatureLimitAll, true},
		{DialectMySQL, FeatureLimitAll, false},
		{Dialect("oracle"), FeatureBacktickIdentifier, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dialect.Supports(tt.feature))
		})
	}
}

func TestCapabilitiesCoverDialects(t *testing.T) {
	for _, dialect := range Dialects {
		_, ok := Capabilities[dialect]
		assert.True(t, ok, "missing capabilities for %s", dialect)
	}
}
