package parserstep1

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/sqlsegment"
	tok "github.com/shibukawa/sqlsegment/tokenizer"
)

func TestProcessSemicolons(t *testing.T) {
	tests := []struct {
		name        string
		tokens      []tok.Token
		expectError bool
		expectCount int
	}{
		{
			name: "no semicolon",
			tokens: []tok.Token{
				{Type: tok.SELECT, Value: "SELECT"},
				{Type: tok.WHITESPACE, Value: " "},
				{Type: tok.IDENTIFIER, Value: "id"},
			},
			expectCount: 3,
		},
		{
			name: "trailing semicolon only",
			tokens: []tok.Token{
				{Type: tok.SELECT, Value: "SELECT"},
				{Type: tok.WHITESPACE, Value: " "},
				{Type: tok.IDENTIFIER, Value: "id"},
				{Type: tok.SEMICOLON, Value: ";"},
			},
			expectCount: 3,
		},
		{
			name: "trailing semicolon with whitespace",
			tokens: []tok.Token{
				{Type: tok.SELECT, Value: "SELECT"},
				{Type: tok.SEMICOLON, Value: ";"},
				{Type: tok.WHITESPACE, Value: "\n"},
			},
			expectCount: 2,
		},
		{
			name: "trailing semicolon with line comment",
			tokens: []tok.Token{
				{Type: tok.SELECT, Value: "SELECT"},
				{Type: tok.SEMICOLON, Value: ";"},
				{Type: tok.WHITESPACE, Value: " "},
				{Type: tok.LINE_COMMENT, Value: "-- done"},
			},
			expectCount: 3,
		},
		{
			name: "semicolon in middle",
			tokens: []tok.Token{
				{Type: tok.SELECT, Value: "SELECT"},
				{Type: tok.SEMICOLON, Value: ";"},
				{Type: tok.IDENTIFIER, Value: "id"},
			},
			expectError: true,
		},
		{
			name: "multiple semicolons",
			tokens: []tok.Token{
				{Type: tok.SELECT, Value: "SELECT"},
				{Type: tok.SEMICOLON, Value: ";"},
				{Type: tok.SEMICOLON, Value: ";"},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := processSemicolons(tt.tokens)
			if tt.expectError {
				assert.IsError(t, err, sqlsegment.ErrMultipleStatements)
				assert.IsError(t, err, ErrSemicolonNotAtEnd)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectCount, len(result))
			}
		})
	}
}

func TestValidateParentheses(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid single pair", input: "(a)"},
		{name: "nested pairs", input: "((a))"},
		{name: "parenthesis in string", input: "'(' || a"},
		{name: "unmatched open", input: "(a", wantErr: ErrUnmatchedOpenParenthesis},
		{name: "unmatched close", input: "a)", wantErr: ErrUnmatchedCloseParenthesis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := tok.NewSqlTokenizer(tt.input, sqlsegment.DialectPostgres).AllTokens()
			assert.NoError(t, err)

			err = validateParentheses(tokens)
			if tt.wantErr != nil {
				assert.IsError(t, err, tt.wantErr)
				assert.IsError(t, err, sqlsegment.ErrInvalidSQL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	tokens, err := Execute("SELECT a FROM t;\n", sqlsegment.DialectMySQL)
	assert.NoError(t, err)
	assert.Equal(t, tok.SELECT, tokens[0].Type)
	for _, token := range tokens {
		assert.NotEqual(t, tok.SEMICOLON, token.Type)
		assert.NotEqual(t, tok.EOF, token.Type)
	}
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", sqlsegment.ErrEmptyStatement},
		{"comment only", "-- nothing\n", sqlsegment.ErrEmptyStatement},
		{"semicolon only", ";", sqlsegment.ErrEmptyStatement},
		{"two statements", "SELECT 1; SELECT 2", sqlsegment.ErrMultipleStatements},
		{"unterminated string", "SELECT 'abc", sqlsegment.ErrUnterminatedString},
		{"unbalanced", "SELECT (1", sqlsegment.ErrInvalidSQL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Execute(tt.input, sqlsegment.DialectSQLite)
			assert.IsError(t, err, tt.wantErr)
		})
	}
}
