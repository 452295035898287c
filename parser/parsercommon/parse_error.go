package parsercommon

import (
	"errors"
	"strconv"
	"strings"
)

// ParseError aggregates multiple parsing errors.
type ParseError struct {
	Errors []error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if len(e.Errors) == 0 {
		return "no parse errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString("multiple parse errors:")
	for i, err := range e.Errors {
		sb.WriteString("\n  [")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString("] ")
		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	return e.Errors
}

// Add appends an error to the ParseError.
func (e *ParseError) Add(err error) {
	if err == nil {
		return
	}

	if perr, ok := err.(*ParseError); ok {
		e.Errors = append(e.Errors, perr.Errors...)
	} else {
		e.Errors = append(e.Errors, err)
	}
}

// HasErrors reports whether any error was added.
func (e *ParseError) HasErrors() bool {
	return len(e.Errors) > 0
}

// AsParseError is a helper to extract *ParseError from error using errors.As.
func AsParseError(err error) (*ParseError, bool) {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr, true
	}

	return nil, false
}
