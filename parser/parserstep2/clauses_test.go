package parserstep2

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/sqlsegment"
	cmn "github.com/shibukawa/sqlsegment/parser/parsercommon"
	tok "github.com/shibukawa/sqlsegment/tokenizer"
)

func tokenize(t *testing.T, sql string) []tok.Token {
	t.Helper()

	tokens, err := tok.NewSqlTokenizer(sql, sqlsegment.DialectPostgres).AllTokens()
	assert.NoError(t, err)

	return tokens[:len(tokens)-1]
}

func kinds(clauses []cmn.Clause) []cmn.ClauseKind {
	result := make([]cmn.ClauseKind, 0, len(clauses))
	for _, c := range clauses {
		result = append(result, c.Kind)
	}

	return result
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected []cmn.ClauseKind
	}{
		{
			name:     "select only",
			sql:      "SELECT 1",
			expected: []cmn.ClauseKind{cmn.SELECT_CLAUSE},
		},
		{
			name: "all clauses",
			sql:  "SELECT a, count(*) FROM t WHERE b = 1 GROUP BY a HAVING count(*) > 1 ORDER BY a DESC LIMIT 10 OFFSET 5",
			expected: []cmn.ClauseKind{
				cmn.SELECT_CLAUSE, cmn.FROM_CLAUSE, cmn.WHERE_CLAUSE, cmn.GROUP_BY_CLAUSE,
				cmn.HAVING_CLAUSE, cmn.ORDER_BY_CLAUSE, cmn.LIMIT_CLAUSE, cmn.OFFSET_CLAUSE,
			},
		},
		{
			name:     "with clause",
			sql:      "WITH x AS (SELECT a FROM t ORDER BY a LIMIT 1) SELECT a FROM x",
			expected: []cmn.ClauseKind{cmn.WITH_CLAUSE, cmn.SELECT_CLAUSE, cmn.FROM_CLAUSE},
		},
		{
			name:     "subquery keywords stay nested",
			sql:      "SELECT (SELECT max(b) FROM u WHERE u.a = t.a) FROM t",
			expected: []cmn.ClauseKind{cmn.SELECT_CLAUSE, cmn.FROM_CLAUSE},
		},
		{
			name:     "window order by stays in projection",
			sql:      "SELECT row_number() OVER (PARTITION BY a ORDER BY b) FROM t ORDER BY 1",
			expected: []cmn.ClauseKind{cmn.SELECT_CLAUSE, cmn.FROM_CLAUSE, cmn.ORDER_BY_CLAUSE},
		},
		{
			name:     "keywords split by comment",
			sql:      "SELECT a FROM t ORDER /* sort */ BY a",
			expected: []cmn.ClauseKind{cmn.SELECT_CLAUSE, cmn.FROM_CLAUSE, cmn.ORDER_BY_CLAUSE},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clauses, err := Execute(tokenize(t, tt.sql))
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, kinds(clauses))
		})
	}
}

func TestExecute_ClauseContents(t *testing.T) {
	clauses, err := Execute(tokenize(t, "SELECT a FROM t order  by a desc, (b) LIMIT 3"))
	assert.NoError(t, err)
	assert.Equal(t, 4, len(clauses))

	orderBy := clauses[2]
	assert.Equal(t, "order by", orderBy.Keyword())
	assert.Equal(t, "order  by a desc, (b)", orderBy.Src())
	assert.Equal(t, 1, orderBy.Position().Line)
	assert.Equal(t, 17, orderBy.Position().Column)

	assert.Equal(t, "LIMIT 3", clauses[3].Src())
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected error
	}{
		{"union", "SELECT a FROM t UNION SELECT b FROM u", sqlsegment.ErrUnsupportedStatement},
		{"except", "SELECT a FROM t EXCEPT SELECT b FROM u", sqlsegment.ErrUnsupportedStatement},
		{"insert", "INSERT INTO t (a) VALUES (1)", sqlsegment.ErrUnsupportedStatement},
		{"with delete", "WITH x AS (SELECT 1) DELETE FROM t", sqlsegment.ErrUnsupportedStatement},
		{"parenthesized", "(SELECT 1)", sqlsegment.ErrUnsupportedStatement},
		{"leading garbage", "VALUES (1)", sqlsegment.ErrUnsupportedStatement},
		{"order without by", "SELECT a FROM t ORDER a", sqlsegment.ErrInvalidSQL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Execute(tokenize(t, tt.sql))
			assert.IsError(t, err, tt.expected)
		})
	}
}
