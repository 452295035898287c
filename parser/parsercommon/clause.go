package parsercommon

import (
	"strings"

	pc "github.com/shibukawa/parsercombinator"
	tok "github.com/shibukawa/sqlsegment/tokenizer"
)

// ClauseKind identifies a top-level clause of a SELECT statement
type ClauseKind int

const (
	WITH_CLAUSE ClauseKind = iota + 1
	SELECT_CLAUSE
	FROM_CLAUSE
	WHERE_CLAUSE
	GROUP_BY_CLAUSE
	HAVING_CLAUSE
	ORDER_BY_CLAUSE
	LIMIT_CLAUSE
	OFFSET_CLAUSE
)

func (k ClauseKind) String() string {
	switch k {
	case WITH_CLAUSE:
		return "WITH"
	case SELECT_CLAUSE:
		return "SELECT"
	case FROM_CLAUSE:
		return "FROM"
	case WHERE_CLAUSE:
		return "WHERE"
	case GROUP_BY_CLAUSE:
		return "GROUP BY"
	case HAVING_CLAUSE:
		return "HAVING"
	case ORDER_BY_CLAUSE:
		return "ORDER BY"
	case LIMIT_CLAUSE:
		return "LIMIT"
	case OFFSET_CLAUSE:
		return "OFFSET"
	default:
		return "UNKNOWN"
	}
}

// Clause is a top-level clause of a statement as split by parserstep2.
// Heading holds the clause keywords (e.g. ORDER, BY), Body the rest.
// Both keep whitespace and comments.
type Clause struct {
	Kind    ClauseKind
	Heading []pc.Token[tok.Token]
	Body    []pc.Token[tok.Token]
}

// Keyword returns the clause keywords as written, joined by a space.
func (c Clause) Keyword() string {
	words := make([]string, 0, 2)
	for _, t := range FilterSpace(c.Heading) {
		words = append(words, t.Val.Value)
	}

	return strings.Join(words, " ")
}

// Position returns the position of the first keyword.
func (c Clause) Position() tok.Position {
	if len(c.Heading) == 0 {
		return tok.Position{}
	}

	return c.Heading[0].Val.Position
}

// Src returns the clause source text without surrounding spaces.
func (c Clause) Src() string {
	return ToSrc(TrimSpace(c.Tokens()))
}

// Tokens returns heading and body as one slice.
func (c Clause) Tokens() []pc.Token[tok.Token] {
	all := make([]pc.Token[tok.Token], 0, len(c.Heading)+len(c.Body))
	all = append(all, c.Heading...)

	return append(all, c.Body...)
}
