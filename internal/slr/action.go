package slr

import "fmt"

// ActionType is the kind of decision an ACTION table cell holds, numbered to
// match the stable JSON encoding in SPEC_FULL.md §6 (SHIFT=0, REDUCE=1,
// ACCEPT=2, ERROR=3).
type ActionType int

const (
	Shift ActionType = iota
	Reduce
	Accept
	Error
)

// Action is one ACTION table cell: a shift to a state, a reduce by a
// production, an accept, or (implicitly, by the cell's absence) an error.
type Action struct {
	Type  ActionType
	Value int // target state for Shift, production index for Reduce, unused otherwise
}

// Display renders the action the way original_source/src/slr_parser.hpp's
// Action::to_string does: "sN", "rN", "acc", or "err".
func (a Action) Display() string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("s%d", a.Value)
	case Reduce:
		return fmt.Sprintf("r%d", a.Value)
	case Accept:
		return "acc"
	default:
		return "err"
	}
}

func (a Action) Equal(o Action) bool {
	return a.Type == o.Type && a.Value == o.Value
}
