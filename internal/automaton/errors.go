package automaton

import (
	"errors"
	"fmt"
)

// PreconditionError is the panic value for misuse of an automaton: an index
// outside the state range, Thompson's construction on ∅, complementing an
// automaton that is not complete.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("automaton: %s: %s", e.Op, e.Msg)
}

func precondition(op, format string, args ...any) {
	panic(&PreconditionError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// ErrStateBudget is returned by Determinize when the subset construction
// discovers more states than allowed by WithMaxStates.
var ErrStateBudget = errors.New("automaton: state budget exceeded")
