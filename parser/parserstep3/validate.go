// Package parserstep3 validates the clause layout produced by parserstep2.
package parserstep3

import (
	"fmt"

	"github.com/shibukawa/sqlsegment"
	cmn "github.com/shibukawa/sqlsegment/parser/parsercommon"
)

// Sentinel errors
var (
	ErrDuplicateClause      = fmt.Errorf("%w: duplicate clause detected", sqlsegment.ErrInvalidSQL)
	ErrClauseOrderViolation = fmt.Errorf("%w: clause order violation", sqlsegment.ErrInvalidSQL)
	ErrMissingSelectClause  = fmt.Errorf("%w: SELECT clause is required", sqlsegment.ErrInvalidSQL)
	ErrEmptyClause          = fmt.Errorf("%w: clause has no content", sqlsegment.ErrInvalidSQL)
)

// LIMIT and OFFSET share a rank since PostgreSQL accepts both orders.
var clauseOrder = map[cmn.ClauseKind]int{
	cmn.WITH_CLAUSE:     0,
	cmn.SELECT_CLAUSE:   1,
	cmn.FROM_CLAUSE:     2,
	cmn.WHERE_CLAUSE:    3,
	cmn.GROUP_BY_CLAUSE: 4,
	cmn.HAVING_CLAUSE:   5,
	cmn.ORDER_BY_CLAUSE: 6,
	cmn.LIMIT_CLAUSE:    7,
	cmn.OFFSET_CLAUSE:   7,
}

// Execute runs all clause checks and adds every problem found to perr.
func Execute(clauses []cmn.Clause, perr *cmn.ParseError) {
	ValidateClauseDuplicates(clauses, perr)
	perr.Add(ValidateClauseOrder(clauses))
	ValidateClausePresence(clauses, perr)
}

// ValidateClauseDuplicates checks for duplicate clauses in the clause list.
func ValidateClauseDuplicates(clauses []cmn.Clause, perr *cmn.ParseError) {
	seen := make(map[cmn.ClauseKind]bool)
	for _, clause := range clauses {
		if seen[clause.Kind] {
			perr.Add(fmt.Errorf("%w: %s at %s", ErrDuplicateClause, clause.Keyword(), clause.Position().String()))
			continue
		}
		seen[clause.Kind] = true
	}
}

// ValidateClauseOrder returns an error for the first clause written
// after a clause that must follow it.
func ValidateClauseOrder(clauses []cmn.Clause) error {
	prevOrder := -1

	var prev cmn.Clause
	for _, clause := range clauses {
		order, ok := clauseOrder[clause.Kind]
		if !ok {
			return fmt.Errorf("%w: unknown clause %s", ErrClauseOrderViolation, clause.Keyword())
		}
		if order < prevOrder {
			return fmt.Errorf("%w: %s at %s must come before %s",
				ErrClauseOrderViolation, clause.Keyword(), clause.Position().String(), prev.Keyword())
		}
		prevOrder = order
		prev = clause
	}

	return nil
}

// ValidateClausePresence checks that the statement has a SELECT clause
// and that every clause except SELECT has a body.
func ValidateClausePresence(clauses []cmn.Clause, perr *cmn.ParseError) {
	hasSelect := false
	for _, clause := range clauses {
		if clause.Kind == cmn.SELECT_CLAUSE {
			hasSelect = true
		}
		if len(cmn.FilterSpace(clause.Body)) == 0 {
			perr.Add(fmt.Errorf("%w: %s at %s", ErrEmptyClause, clause.Keyword(), clause.Position().String()))
		}
	}

	if !hasSelect {
		perr.Add(ErrMissingSelectClause)
	}
}
