package parser

import (
	"testing"

	"github.com/shibukawa/sqlsegment"
	"github.com/shibukawa/sqlsegment/syntaxtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	result, err := Parse("SELECT id, name FROM users WHERE age > ? ORDER BY 2 DESC, name LIMIT ?;", sqlsegment.DialectMySQL)
	require.NoError(t, err)

	root := result.Root
	assert.Equal(t, syntaxtree.SELECT_STATEMENT, root.Rule())
	assert.Equal(t, "SELECT id, name FROM users WHERE age > ? ORDER BY 2 DESC, name LIMIT ?", root.Text())

	rules := make([]syntaxtree.RuleName, 0, len(root.Children()))
	for _, child := range root.Children() {
		rules = append(rules, child.Rule())
	}
	assert.Equal(t, []syntaxtree.RuleName{
		syntaxtree.SELECT_CLAUSE,
		syntaxtree.FROM_CLAUSE,
		syntaxtree.WHERE_CLAUSE,
		syntaxtree.ORDER_BY_CLAUSE,
		syntaxtree.LIMIT_CLAUSE,
	}, rules)
}

func TestParse_PlaceholderIndex(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		dialect  sqlsegment.Dialect
		expected []string
	}{
		{
			name:     "question marks",
			sql:      "SELECT ? FROM t WHERE a = ? ORDER BY ? LIMIT ?, ?",
			dialect:  sqlsegment.DialectMySQL,
			expected: []string{"?", "?", "?", "?", "?"},
		},
		{
			name:     "numbered markers keep document order",
			sql:      "SELECT a FROM t WHERE b = $2 AND c = $1 LIMIT $3",
			dialect:  sqlsegment.DialectPostgres,
			expected: []string{"$2", "$1", "$3"},
		},
		{
			name:     "named markers in a CTE",
			sql:      "WITH x AS (SELECT * FROM t WHERE a = :a) SELECT * FROM x WHERE b = :b",
			dialect:  sqlsegment.DialectSQLite,
			expected: []string{":a", ":b"},
		},
		{
			name:     "no markers",
			sql:      "SELECT 1",
			dialect:  sqlsegment.DialectSQLite,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.sql, tt.dialect)
			require.NoError(t, err)

			markers := syntaxtree.FindAllDescendants(result.Root, syntaxtree.PARAMETER_MARKER)
			require.Len(t, markers, len(tt.expected))
			require.Len(t, result.Placeholders, len(tt.expected))

			for i, marker := range markers {
				assert.Equal(t, tt.expected[i], marker.Text())
				assert.Equal(t, i, result.Placeholders[marker])
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		dialect  sqlsegment.Dialect
		expected error
	}{
		{"unknown dialect", "SELECT 1", sqlsegment.Dialect("oracle"), sqlsegment.ErrInvalidSQL},
		{"empty", "  ", sqlsegment.DialectMySQL, sqlsegment.ErrEmptyStatement},
		{"multiple statements", "SELECT 1; SELECT 2", sqlsegment.DialectMySQL, sqlsegment.ErrMultipleStatements},
		{"update", "UPDATE t SET a = 1", sqlsegment.DialectMySQL, sqlsegment.ErrUnsupportedStatement},
		{"union", "SELECT 1 UNION ALL SELECT 2", sqlsegment.DialectMySQL, sqlsegment.ErrUnsupportedStatement},
		{"clause order", "SELECT a FROM t LIMIT 1 WHERE b", sqlsegment.DialectMySQL, sqlsegment.ErrInvalidSQL},
		{"nulls ordering", "SELECT a FROM t ORDER BY a NULLS LAST", sqlsegment.DialectPostgres, sqlsegment.ErrInvalidSQL},
		{"bad limit", "SELECT a FROM t LIMIT x", sqlsegment.DialectMySQL, sqlsegment.ErrInvalidSQL},
		{"unterminated comment", "SELECT a /* x", sqlsegment.DialectMySQL, sqlsegment.ErrUnterminatedComment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.sql, tt.dialect)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParse_CollectsErrors(t *testing.T) {
	_, err := Parse("SELECT a FROM t ORDER BY a NULLS FIRST, b NULLS LAST LIMIT -1", sqlsegment.DialectPostgres)
	require.Error(t, err)

	perr, ok := AsParseError(err)
	require.True(t, ok)
	assert.Len(t, perr.Errors, 3)
}
