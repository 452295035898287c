// Package parserstep1 tokenizes the statement and performs the checks that
// do not need any grammar: statement separators and parentheses.
package parserstep1

import (
	"errors"
	"fmt"

	"github.com/shibukawa/sqlsegment"
	tok "github.com/shibukawa/sqlsegment/tokenizer"
)

// Sentinel errors
var (
	ErrUnmatchedCloseParenthesis = fmt.Errorf("%w: unmatched close parenthesis", sqlsegment.ErrInvalidSQL)
	ErrUnmatchedOpenParenthesis  = fmt.Errorf("%w: unmatched open parenthesis", sqlsegment.ErrInvalidSQL)
	ErrSemicolonNotAtEnd         = errors.New("semicolon must be at the end of the statement")
)

// Execute tokenizes sql and validates it. The returned tokens carry no EOF
// token and no terminating semicolon.
func Execute(sql string, dialect sqlsegment.Dialect) ([]tok.Token, error) {
	tokens, err := tok.NewSqlTokenizer(sql, dialect).AllTokens()
	if err != nil {
		return nil, err
	}

	if len(tokens) > 0 && tokens[len(tokens)-1].Type == tok.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	tokens, err = processSemicolons(tokens)
	if err != nil {
		return nil, err
	}

	if isBlank(tokens) {
		return nil, sqlsegment.ErrEmptyStatement
	}

	if err := validateParentheses(tokens); err != nil {
		return nil, err
	}

	return tokens, nil
}

// processSemicolons drops a semicolon that only has spaces or comments
// after it. Any other semicolon separates statements and is rejected.
func processSemicolons(tokens []tok.Token) ([]tok.Token, error) {
	for i, t := range tokens {
		if t.Type != tok.SEMICOLON {
			continue
		}

		if !isSemicolonAtEnd(tokens, i) {
			return nil, fmt.Errorf("%w: %w at %s", sqlsegment.ErrMultipleStatements, ErrSemicolonNotAtEnd, t.Position.String())
		}

		result := make([]tok.Token, 0, len(tokens)-1)
		result = append(result, tokens[:i]...)

		return append(result, tokens[i+1:]...), nil
	}

	return tokens, nil
}

func isSemicolonAtEnd(tokens []tok.Token, semicolonIndex int) bool {
	for _, t := range tokens[semicolonIndex+1:] {
		if !t.IsSpace() && t.Type != tok.EOF {
			return false
		}
	}

	return true
}

func isBlank(tokens []tok.Token) bool {
	for _, t := range tokens {
		if !t.IsSpace() {
			return false
		}
	}

	return true
}

// validateParentheses checks that all parentheses are properly matched.
func validateParentheses(tokens []tok.Token) error {
	var stack []tok.Token

	for _, t := range tokens {
		switch t.Type {
		case tok.OPENED_PARENS:
			stack = append(stack, t)
		case tok.CLOSED_PARENS:
			if len(stack) == 0 {
				return fmt.Errorf("%w at %s", ErrUnmatchedCloseParenthesis, t.Position.String())
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		return fmt.Errorf("%w at %s", ErrUnmatchedOpenParenthesis, stack[len(stack)-1].Position.String())
	}

	return nil
}
