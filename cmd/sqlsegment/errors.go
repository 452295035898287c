package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/shibukawa/sqlsegment/parser"
)

// Sentinel errors for command operations
var (
	ErrInputFileNotExist = errors.New("input file does not exist")
	ErrConflictingInput  = errors.New("--sql cannot be combined with input files")
	ErrUnknownFormat     = errors.New("unknown output format")
	ErrExtractionFailed  = errors.New("some inputs could not be extracted")
)

// errorLines splits a parse error into the problems it collected.
// Any other error is a single line.
func errorLines(err error) []string {
	perr, ok := parser.AsParseError(err)
	if !ok || len(perr.Errors) < 2 {
		return []string{err.Error()}
	}

	lines := make([]string, 0, len(perr.Errors))
	for _, e := range perr.Errors {
		lines = append(lines, e.Error())
	}

	return lines
}

// printError writes one "Error:" line per problem
func printError(w io.Writer, err error) {
	for _, line := range errorLines(err) {
		fmt.Fprintf(w, "Error: %s\n", line)
	}
}
