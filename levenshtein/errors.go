package levenshtein

import "errors"

var (
	// ErrInvalidMatrix indicates a distance matrix whose dimensions do not
	// match the supplied sequences, or whose cells contradict the unit-cost
	// recurrence during backtracking. A matrix that fails this check cannot
	// be trusted for any part of the backtrack, so Generate stops at once.
	ErrInvalidMatrix = errors.New("levenshtein: invalid distance matrix")

	// ErrInvalidScript indicates an edit script that does not fit the
	// sequence it is being applied to: a position out of range or an
	// unknown operation. Scripts produced by Generate for the same source
	// never trigger it.
	ErrInvalidScript = errors.New("levenshtein: invalid edit script")
)
