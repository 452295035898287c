package tokenizer

import "strconv"

// TokenType represents the type of a token
type TokenType int

const (
	// Basic tokens
	EOF TokenType = iota
	WHITESPACE
	IDENTIFIER        // unquoted identifiers
	QUOTED_IDENTIFIER // `name` or "name" depending on dialect
	STRING            // string literals
	NUMBER            // numeric literals
	PLACEHOLDER       // ?, $1, :name
	OPENED_PARENS     // (
	CLOSED_PARENS     // )
	COMMA             // ,
	SEMICOLON         // ;
	DOT               // .
	DOUBLE_COLON      // :: (PostgreSQL cast)

	// SQL operators
	EQUAL         // =
	NOT_EQUAL     // <>, !=
	LESS_THAN     // <
	GREATER_THAN  // >
	LESS_EQUAL    // <=
	GREATER_EQUAL // >=
	PLUS          // +
	MINUS         // -
	MULTIPLY      // *
	DIVIDE        // /
	MODULO        // %
	CONCAT        // ||

	// Statement keywords
	WITH
	RECURSIVE
	SELECT
	DISTINCT
	ALL
	FROM
	WHERE
	GROUP
	HAVING
	ORDER
	BY
	LIMIT
	OFFSET
	UNION
	INTERSECT
	EXCEPT
	INSERT
	UPDATE
	DELETE

	// Order By qualifiers
	ASC
	DESC
	COLLATE

	// Expression keywords
	AS
	AND
	OR
	NOT
	IN
	IS
	NULL
	LIKE
	BETWEEN
	EXISTS
	CASE
	WHEN
	THEN
	ELSE
	END
	OVER
	PARTITION

	// Comments
	LINE_COMMENT  // -- line comment
	BLOCK_COMMENT // /* block comment */

	// Others
	OTHER // database-specific syntax
)

var tokenTypeNames = map[TokenType]string{
	EOF:               "EOF",
	WHITESPACE:        "WHITESPACE",
	IDENTIFIER:        "IDENTIFIER",
	QUOTED_IDENTIFIER: "QUOTED_IDENTIFIER",
	STRING:            "STRING",
	NUMBER:            "NUMBER",
	PLACEHOLDER:       "PLACEHOLDER",
	OPENED_PARENS:     "OPENED_PARENS",
	CLOSED_PARENS:     "CLOSED_PARENS",
	COMMA:             "COMMA",
	SEMICOLON:         "SEMICOLON",
	DOT:               "DOT",
	DOUBLE_COLON:      "DOUBLE_COLON",
	EQUAL:             "EQUAL",
	NOT_EQUAL:         "NOT_EQUAL",
	LESS_THAN:         "LESS_THAN",
	GREATER_THAN:      "GREATER_THAN",
	LESS_EQUAL:        "LESS_EQUAL",
	GREATER_EQUAL:     "GREATER_EQUAL",
	PLUS:              "PLUS",
	MINUS:             "MINUS",
	MULTIPLY:          "MULTIPLY",
	DIVIDE:            "DIVIDE",
	MODULO:            "MODULO",
	CONCAT:            "CONCAT",
	WITH:              "WITH",
	RECURSIVE:         "RECURSIVE",
	SELECT:            "SELECT",
	DISTINCT:          "DISTINCT",
	ALL:               "ALL",
	FROM:              "FROM",
	WHERE:             "WHERE",
	GROUP:             "GROUP",
	HAVING:            "HAVING",
	ORDER:             "ORDER",
	BY:                "BY",
	LIMIT:             "LIMIT",
	OFFSET:            "OFFSET",
	UNION:             "UNION",
	INTERSECT:         "INTERSECT",
	EXCEPT:            "EXCEPT",
	INSERT:            "INSERT",
	UPDATE:            "UPDATE",
	DELETE:            "DELETE",
	ASC:               "ASC",
	DESC:              "DESC",
	COLLATE:           "COLLATE",
	AS:                "AS",
	AND:               "AND",
	OR:                "OR",
	NOT:               "NOT",
	IN:                "IN",
	IS:                "IS",
	NULL:              "NULL",
	LIKE:              "LIKE",
	BETWEEN:           "BETWEEN",
	EXISTS:            "EXISTS",
	CASE:              "CASE",
	WHEN:              "WHEN",
	THEN:              "THEN",
	ELSE:              "ELSE",
	END:               "END",
	OVER:              "OVER",
	PARTITION:         "PARTITION",
	LINE_COMMENT:      "LINE_COMMENT",
	BLOCK_COMMENT:     "BLOCK_COMMENT",
	OTHER:             "OTHER",
}

// String returns the string representation of TokenType
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}

	return "UNKNOWN"
}

// IsKeyword reports whether the token type is a reserved keyword
func (t TokenType) IsKeyword() bool {
	return t >= WITH && t <= PARTITION
}

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns "line:column"
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string // source text as written
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}

// IsSpace reports whether the token carries no SQL meaning (whitespace or comment)
func (t Token) IsSpace() bool {
	return t.Type == WHITESPACE || t.Type == LINE_COMMENT || t.Type == BLOCK_COMMENT
}
