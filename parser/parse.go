package parser

import (
	"fmt"

	"github.com/shibukawa/sqlsegment"
	cmn "github.com/shibukawa/sqlsegment/parser/parsercommon"
	"github.com/shibukawa/sqlsegment/parser/parserstep1"
	"github.com/shibukawa/sqlsegment/parser/parserstep2"
	"github.com/shibukawa/sqlsegment/parser/parserstep3"
	"github.com/shibukawa/sqlsegment/parser/parserstep4"
	"github.com/shibukawa/sqlsegment/syntaxtree"
)

// Re-export common types for user convenience
type (
	ParseError = cmn.ParseError
)

var AsParseError = cmn.AsParseError

// Result is a parsed statement ready for the extractors.
type Result struct {
	Root         syntaxtree.Node
	Placeholders syntaxtree.PlaceholderIndex
}

// Parse parses one SELECT statement written in dialect.
//
// The steps are:
//  1. tokenize and check statement separators and parentheses
//  2. split into top-level clauses
//  3. validate clause order and presence
//  4. parse clause bodies and build the tree
//
// Steps 3 and 4 collect every problem they find into a *ParseError.
func Parse(sql string, dialect sqlsegment.Dialect) (*Result, error) {
	if !dialect.IsValid() {
		return nil, fmt.Errorf("%w: unknown dialect '%s'", sqlsegment.ErrInvalidSQL, dialect)
	}

	// Step 1: tokenize and validate separators / parentheses
	tokens, err := parserstep1.Execute(sql, dialect)
	if err != nil {
		return nil, fmt.Errorf("parserstep1 failed: %w", err)
	}

	// Step 2: split clauses
	clauses, err := parserstep2.Execute(tokens)
	if err != nil {
		return nil, fmt.Errorf("parserstep2 failed: %w", err)
	}

	// Step 3: clause level validation
	perr := &cmn.ParseError{}
	parserstep3.Execute(clauses, perr)
	if perr.HasErrors() {
		return nil, perr
	}

	// Step 4: clause contents
	root := parserstep4.Execute(clauses, dialect, perr)
	if perr.HasErrors() {
		return nil, perr
	}

	return &Result{
		Root:         root,
		Placeholders: IndexPlaceholders(root),
	}, nil
}

// IndexPlaceholders numbers every PARAMETER_MARKER of the tree from 0 in
// document order. Numbered markers such as $2 are counted by position too.
func IndexPlaceholders(root syntaxtree.Node) syntaxtree.PlaceholderIndex {
	index := syntaxtree.PlaceholderIndex{}
	syntaxtree.Walk(root, func(node syntaxtree.Node) bool {
		if node.Rule() == syntaxtree.PARAMETER_MARKER {
			index[node] = len(index)
		}
		return true
	})

	return index
}
