package knapsack

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the knapsack solver.
var (
	// ErrInvalidInput indicates malformed weights, values or capacity.
	// The concrete error is an *InputError naming the offending argument.
	ErrInvalidInput = errors.New("knapsack: invalid input")

	// ErrNotRanked indicates that items handed to the Bound Calculator are not
	// ordered by descending value-to-weight ratio. The LP bound is only valid
	// on ranked items.
	ErrNotRanked = errors.New("knapsack: items not ranked by descending value/weight ratio")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("knapsack: invalid option supplied")

	// ErrTimeLimit is returned when the wall-clock budget was exhausted before
	// the frontier emptied. The accompanying Result holds the incumbent so far.
	ErrTimeLimit = errors.New("knapsack: time limit exceeded")

	// ErrExpansionLimit is returned when MaxExpansions nodes were expanded
	// before the frontier emptied. The accompanying Result holds the incumbent so far.
	ErrExpansionLimit = errors.New("knapsack: expansion limit exceeded")
)

// InputError reports which argument of a solve call is invalid.
// Index is the offending element for per-item failures, or -1.
type InputError struct {
	Argument string
	Index    int
	Reason   string
}

func (e *InputError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("knapsack: invalid input: %s[%d] %s", e.Argument, e.Index, e.Reason)
	}

	return fmt.Sprintf("knapsack: invalid input: %s %s", e.Argument, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match.
func (e *InputError) Unwrap() error { return ErrInvalidInput }
