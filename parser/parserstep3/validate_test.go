package parserstep3

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/sqlsegment"
	cmn "github.com/shibukawa/sqlsegment/parser/parsercommon"
	"github.com/shibukawa/sqlsegment/parser/parserstep2"
	tok "github.com/shibukawa/sqlsegment/tokenizer"
)

func split(t *testing.T, sql string) []cmn.Clause {
	t.Helper()

	tokens, err := tok.NewSqlTokenizer(sql, sqlsegment.DialectMySQL).AllTokens()
	assert.NoError(t, err)

	clauses, err := parserstep2.Execute(tokens[:len(tokens)-1])
	assert.NoError(t, err)

	return clauses
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		wantErr error
	}{
		{name: "valid full", sql: "SELECT a FROM t WHERE b GROUP BY a HAVING c ORDER BY a LIMIT 1 OFFSET 2"},
		{name: "offset before limit", sql: "SELECT a FROM t OFFSET 2 LIMIT 1"},
		{name: "with", sql: "WITH x AS (SELECT 1) SELECT * FROM x"},
		{name: "duplicate where", sql: "SELECT a FROM t WHERE b WHERE c", wantErr: ErrDuplicateClause},
		{name: "order before where", sql: "SELECT a FROM t ORDER BY a WHERE b", wantErr: ErrClauseOrderViolation},
		{name: "limit before order", sql: "SELECT a FROM t LIMIT 1 ORDER BY a", wantErr: ErrClauseOrderViolation},
		{name: "missing select", sql: "WITH x AS (SELECT 1)", wantErr: ErrMissingSelectClause},
		{name: "empty order by", sql: "SELECT a FROM t ORDER BY", wantErr: ErrEmptyClause},
		{name: "empty from", sql: "SELECT a FROM WHERE b", wantErr: ErrEmptyClause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr := &cmn.ParseError{}
			Execute(split(t, tt.sql), perr)
			if tt.wantErr == nil {
				assert.False(t, perr.HasErrors())
				return
			}

			assert.True(t, perr.HasErrors())
			assert.IsError(t, perr, tt.wantErr)
			assert.IsError(t, perr, sqlsegment.ErrInvalidSQL)
		})
	}
}

func TestValidateClauseDuplicates_ReportsEachDuplicate(t *testing.T) {
	perr := &cmn.ParseError{}
	ValidateClauseDuplicates(split(t, "SELECT a FROM t LIMIT 1 LIMIT 2 LIMIT 3"), perr)
	assert.Equal(t, 2, len(perr.Errors))
}
