package tokenizer

import "strings"

// keywords maps upper-case reserved words to their token types.
// Words not listed here are identifiers, so function names such as LENGTH
// or contextual words such as NULLS stay IDENTIFIER tokens.
var keywords = map[string]TokenType{
	"WITH":      WITH,
	"RECURSIVE": RECURSIVE,
	"SELECT":    SELECT,
	"DISTINCT":  DISTINCT,
	"ALL":       ALL,
	"FROM":      FROM,
	"WHERE":     WHERE,
	"GROUP":     GROUP,
	"HAVING":    HAVING,
	"ORDER":     ORDER,
	"BY":        BY,
	"LIMIT":     LIMIT,
	"OFFSET":    OFFSET,
	"UNION":     UNION,
	"INTERSECT": INTERSECT,
	"EXCEPT":    EXCEPT,
	"INSERT":    INSERT,
	"UPDATE":    UPDATE,
	"DELETE":    DELETE,
	"ASC":       ASC,
	"DESC":      DESC,
	"COLLATE":   COLLATE,
	"AS":        AS,
	"AND":       AND,
	"OR":        OR,
	"NOT":       NOT,
	"IN":        IN,
	"IS":        IS,
	"NULL":      NULL,
	"LIKE":      LIKE,
	"BETWEEN":   BETWEEN,
	"EXISTS":    EXISTS,
	"CASE":      CASE,
	"WHEN":      WHEN,
	"THEN":      THEN,
	"ELSE":      ELSE,
	"END":       END,
	"OVER":      OVER,
	"PARTITION": PARTITION,
}

// keywordTokenType returns the TokenType corresponding to a word
func keywordTokenType(word string) TokenType {
	if t, ok := keywords[strings.ToUpper(word)]; ok {
		return t
	}

	return IDENTIFIER
}
