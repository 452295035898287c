package tokenizer

import (
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/shibukawa/sqlsegment"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// SqlTokenizer is a tokenizer that returns an iterator
type SqlTokenizer struct {
	input   string
	dialect sqlsegment.Dialect
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	SkipWhitespace bool
	SkipComments   bool
}

// NewSqlTokenizer creates a new SqlTokenizer
func NewSqlTokenizer(input string, dialect sqlsegment.Dialect, options ...TokenizerOptions) *SqlTokenizer {
	opts := TokenizerOptions{}
	if len(options) > 0 {
		opts = options[0]
	}

	return &SqlTokenizer{
		input:   input,
		dialect: dialect,
		options: opts,
	}
}

// Tokens returns an iterator of tokens. Iteration stops after the first error.
func (t *SqlTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := newTokenizer(t.input, t.dialect)

		for {
			token, err := tokenizer.nextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}

			if token.Type == EOF {
				yield(token, nil)
				return
			}

			// Filtering based on options
			if t.options.SkipWhitespace && token.Type == WHITESPACE {
				continue
			}
			if t.options.SkipComments && (token.Type == LINE_COMMENT || token.Type == BLOCK_COMMENT) {
				continue
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice. The last token is always EOF on success.
func (t *SqlTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 64)

	for token, err := range t.Tokens() {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Internal tokenizer implementation
type tokenizer struct {
	input   string
	offset  int // byte offset of current
	width   int // byte width of current, 0 at end of input
	line    int
	column  int
	current rune
	dialect sqlsegment.Dialect
}

func newTokenizer(input string, dialect sqlsegment.Dialect) *tokenizer {
	t := &tokenizer{
		input:   input,
		line:    1,
		column:  1,
		dialect: dialect,
	}
	t.decode()

	return t
}

// nextToken gets the next token
func (t *tokenizer) nextToken() (Token, error) {
	start := t.mark()

	if t.width == 0 {
		return Token{Type: EOF, Position: start}, nil
	}

	switch t.current {
	case ' ', '\t', '\r', '\n':
		for t.width > 0 && unicode.IsSpace(t.current) {
			t.readChar()
		}
		return t.token(WHITESPACE, start), nil
	case '(':
		return t.single(OPENED_PARENS, start), nil
	case ')':
		return t.single(CLOSED_PARENS, start), nil
	case ',':
		return t.single(COMMA, start), nil
	case ';':
		return t.single(SEMICOLON, start), nil
	case '.':
		return t.single(DOT, start), nil
	case '+':
		return t.single(PLUS, start), nil
	case '*':
		return t.single(MULTIPLY, start), nil
	case '%':
		return t.single(MODULO, start), nil
	case '=':
		return t.single(EQUAL, start), nil
	case '\'':
		return t.readQuoted(STRING, start)
	case '"':
		if t.dialect.DoubleQuoteIdentifier() {
			return t.readQuoted(QUOTED_IDENTIFIER, start)
		}
		return t.readQuoted(STRING, start)
	case '`':
		if t.dialect.BacktickIdentifier() {
			return t.readQuoted(QUOTED_IDENTIFIER, start)
		}
		return t.single(OTHER, start), nil
	case '-':
		if t.peekChar() == '-' {
			return t.readLineComment(start), nil
		}
		return t.single(MINUS, start), nil
	case '/':
		if t.peekChar() == '*' {
			return t.readBlockComment(start)
		}
		return t.single(DIVIDE, start), nil
	case '<':
		switch t.peekChar() {
		case '=':
			return t.double(LESS_EQUAL, start), nil
		case '>':
			return t.double(NOT_EQUAL, start), nil
		}
		return t.single(LESS_THAN, start), nil
	case '>':
		if t.peekChar() == '=' {
			return t.double(GREATER_EQUAL, start), nil
		}
		return t.single(GREATER_THAN, start), nil
	case '!':
		if t.peekChar() == '=' {
			return t.double(NOT_EQUAL, start), nil
		}
		return t.single(OTHER, start), nil
	case '|':
		if t.peekChar() == '|' {
			return t.double(CONCAT, start), nil
		}
		return t.single(OTHER, start), nil
	case ':':
		next := t.peekChar()
		if next == ':' {
			return t.double(DOUBLE_COLON, start), nil
		}
		if t.dialect.NamedPlaceholder() && (unicode.IsLetter(next) || next == '_') {
			t.readChar()
			t.readWhile(isWordChar)
			return t.token(PLACEHOLDER, start), nil
		}
		return t.single(OTHER, start), nil
	case '?':
		t.readChar()
		if t.dialect == sqlsegment.DialectSQLite {
			t.readWhile(isDigit) // ?NNN
		}
		return t.token(PLACEHOLDER, start), nil
	case '$':
		if t.dialect.DollarPlaceholder() && isDigit(t.peekChar()) {
			t.readChar()
			t.readWhile(isDigit)
			return t.token(PLACEHOLDER, start), nil
		}
		return t.single(OTHER, start), nil
	}

	switch {
	case unicode.IsLetter(t.current) || t.current == '_':
		t.readWhile(isWordChar)
		token := t.token(IDENTIFIER, start)
		token.Type = keywordTokenType(token.Value)
		return token, nil
	case isDigit(t.current):
		return t.readNumber(start)
	case unicode.IsSpace(t.current):
		t.readWhile(unicode.IsSpace)
		return t.token(WHITESPACE, start), nil
	default:
		// Other characters are treated as OTHER
		return t.single(OTHER, start), nil
	}
}

// isDigit accepts only ASCII digits, other Unicode numerals are not SQL numbers
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (t *tokenizer) decode() {
	if t.offset >= len(t.input) {
		t.current, t.width = 0, 0
		return
	}
	t.current, t.width = utf8.DecodeRuneInString(t.input[t.offset:])
}

// readChar advances to the next character
func (t *tokenizer) readChar() {
	if t.width == 0 {
		return
	}

	if t.current == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}

	t.offset += t.width
	t.decode()
}

// peekChar looks ahead at the next character
func (t *tokenizer) peekChar() rune {
	next := t.offset + t.width
	if next >= len(t.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.input[next:])

	return r
}

func (t *tokenizer) readWhile(accept func(rune) bool) {
	for t.width > 0 && accept(t.current) {
		t.readChar()
	}
}

func (t *tokenizer) mark() Position {
	return Position{Line: t.line, Column: t.column, Offset: t.offset}
}

// token creates a token covering the source from start to the current position
func (t *tokenizer) token(tokenType TokenType, start Position) Token {
	return Token{
		Type:     tokenType,
		Value:    t.input[start.Offset:t.offset],
		Position: start,
	}
}

func (t *tokenizer) single(tokenType TokenType, start Position) Token {
	t.readChar()
	return t.token(tokenType, start)
}

func (t *tokenizer) double(tokenType TokenType, start Position) Token {
	t.readChar()
	t.readChar()
	return t.token(tokenType, start)
}

// readQuoted reads string literals and quoted identifiers.
// A doubled delimiter is an escaped delimiter; strings also accept backslash escapes.
func (t *tokenizer) readQuoted(tokenType TokenType, start Position) (Token, error) {
	delimiter := t.current
	t.readChar() // opening quote

	for {
		if t.width == 0 {
			if tokenType == QUOTED_IDENTIFIER {
				return Token{}, fmt.Errorf("%w: %c at line %d, column %d", sqlsegment.ErrUnterminatedIdentifier, delimiter, start.Line, start.Column)
			}
			return Token{}, fmt.Errorf("%w: %c at line %d, column %d", sqlsegment.ErrUnterminatedString, delimiter, start.Line, start.Column)
		}

		if t.current == '\\' && tokenType == STRING {
			t.readChar()
			t.readChar()
			continue
		}

		if t.current == delimiter {
			t.readChar()
			if t.width > 0 && t.current == delimiter {
				t.readChar()
				continue
			}
			break
		}

		t.readChar()
	}

	return t.token(tokenType, start), nil
}

// readNumber reads numeric literals
func (t *tokenizer) readNumber(start Position) (Token, error) {
	// Integer part
	t.readWhile(isDigit)

	// Decimal point
	if t.current == '.' && isDigit(t.peekChar()) {
		t.readChar()
		t.readWhile(isDigit)
	}

	// Exponential part
	if t.current == 'e' || t.current == 'E' {
		t.readChar()

		if t.current == '+' || t.current == '-' {
			t.readChar()
		}

		if !isDigit(t.current) {
			return Token{}, fmt.Errorf("%w: invalid exponent at line %d, column %d", sqlsegment.ErrInvalidNumber, start.Line, start.Column)
		}

		t.readWhile(isDigit)
	}

	return t.token(NUMBER, start), nil
}

// readLineComment reads line comments up to (not including) the line break
func (t *tokenizer) readLineComment(start Position) Token {
	t.readWhile(func(r rune) bool { return r != '\n' })
	return t.token(LINE_COMMENT, start)
}

// readBlockComment reads block comments
func (t *tokenizer) readBlockComment(start Position) (Token, error) {
	// '/*'
	t.readChar()
	t.readChar()

	for t.width > 0 {
		if t.current == '*' && t.peekChar() == '/' {
			t.readChar()
			t.readChar()
			return t.token(BLOCK_COMMENT, start), nil
		}
		t.readChar()
	}

	return Token{}, fmt.Errorf("%w at line %d, column %d", sqlsegment.ErrUnterminatedComment, start.Line, start.Column)
}
