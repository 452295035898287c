package parsercommon

import (
	"slices"
	"strings"

	pc "github.com/shibukawa/parsercombinator"
	tok "github.com/shibukawa/sqlsegment/tokenizer"
)

var (
	// Space parses a whitespace token.
	Space = PrimitiveType("space", tok.WHITESPACE)
	// Comment parses block or line comments.
	Comment = PrimitiveType("comment", tok.BLOCK_COMMENT, tok.LINE_COMMENT)
	// ParenOpen parses an opening parenthesis.
	ParenOpen = PrimitiveType("parenOpen", tok.OPENED_PARENS)
	// ParenClose parses a closing parenthesis.
	ParenClose = PrimitiveType("parenClose", tok.CLOSED_PARENS)
	// Comma parses a comma delimiter.
	Comma = PrimitiveType("comma", tok.COMMA)
	// Dot parses a dot token.
	Dot = PrimitiveType("dot", tok.DOT)

	// Number parses a numeric literal.
	Number = PrimitiveType("number", tok.NUMBER)
	// Placeholder parses a bind parameter marker.
	Placeholder = PrimitiveType("placeholder", tok.PLACEHOLDER)
	// Identifier parses a plain or quoted identifier.
	Identifier = PrimitiveType("identifier", tok.IDENTIFIER, tok.QUOTED_IDENTIFIER)
	// Minus parses a minus operator token.
	Minus = PrimitiveType("minus", tok.MINUS)

	// SP consumes zero or more space/comment tokens.
	SP = pc.Drop(pc.ZeroOrMore("comment or space", pc.Or(Space, Comment)))
	// EOS matches end of stream.
	EOS = pc.EOS[tok.Token]()
)

// WS2 matches token and drops the spaces after it.
func WS2(token pc.Parser[tok.Token]) pc.Parser[tok.Token] {
	return pc.Seq(
		token,
		pc.Drop(pc.ZeroOrMore("comment or space", pc.Or(Space, Comment))),
	)
}

// Tag renames the type of the first matched token so callers can tell
// which alternative of an Or matched.
func Tag(typeStr string, p ...pc.Parser[tok.Token]) pc.Parser[tok.Token] {
	return pc.Trans(pc.Seq(p...), func(pctx *pc.ParseContext[tok.Token], src []pc.Token[tok.Token]) ([]pc.Token[tok.Token], error) {
		if len(src) > 0 {
			src[0].Type = typeStr
		}

		return src, nil
	})
}

// PrimitiveType matches one token of the given types. The match is a copy
// typed as typeName, the input tokens are left untouched.
func PrimitiveType(typeName string, types ...tok.TokenType) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Type) {
			match := tokens[0]
			match.Type = typeName

			return 1, []pc.Token[tok.Token]{match}, nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// KeywordType matches an identifier spelled as one of the words. It is used
// for non-reserved words such as NULLS or ROWS.
func KeywordType(typeName string, word ...string) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) > 0 && tokens[0].Val.Type == tok.IDENTIFIER {
			v := tokens[0].Val.Value
			for _, w := range word {
				if strings.EqualFold(v, w) {
					match := tokens[0]
					match.Type = typeName

					return 1, []pc.Token[tok.Token]{match}, nil
				}
			}
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// FilterSpace removes whitespace and comment tokens.
func FilterSpace(tokens []pc.Token[tok.Token]) []pc.Token[tok.Token] {
	results := make([]pc.Token[tok.Token], 0, len(tokens))

	for _, token := range tokens {
		if !token.Val.IsSpace() {
			results = append(results, token)
		}
	}

	return results
}

// TrimSpace removes leading and trailing whitespace and comment tokens.
func TrimSpace(tokens []pc.Token[tok.Token]) []pc.Token[tok.Token] {
	start := 0
	for start < len(tokens) && tokens[start].Val.IsSpace() {
		start++
	}

	end := len(tokens)
	for end > start && tokens[end-1].Val.IsSpace() {
		end--
	}

	return tokens[start:end]
}

func ToParserToken(tokens []tok.Token) []pc.Token[tok.Token] {
	results := make([]pc.Token[tok.Token], len(tokens))

	for i, token := range tokens {
		pcToken := pc.Token[tok.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: token,
			Raw: token.Value,
		}
		results[i] = pcToken
	}

	return results
}

// ToSrc joins the raw text of the tokens, so a contiguous token run gives
// back the source exactly as written.
func ToSrc(entities []pc.Token[tok.Token]) string {
	src := make([]byte, 0, 256)
	for _, entity := range entities {
		src = append(src, entity.Raw...)
	}

	return string(src)
}
