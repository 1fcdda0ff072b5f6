// Package levenshtein type definitions: engine options, edit operations
// and edit scripts.
package levenshtein

import "fmt"

// Mode selects which dynamic-programming engine Distance dispatches to.
// Both engines fill the same matrix and return identical results.
//
//   - ModeTabulation  — iterative bottom-up fill. Flat stack usage; the
//     recommended default for inputs of any length.
//   - ModeMemoization — recursive top-down fill, using the matrix itself
//     as the cache. Recursion depth grows with m+n, so keep it away from
//     very long inputs.
type Mode int

const (
	// ModeTabulation: bottom-up row-major fill, O(m·n) time and memory.
	ModeTabulation Mode = iota

	// ModeMemoization: top-down recursion with the matrix as cache,
	// O(m·n) time and memory plus O(m+n) recursion depth.
	ModeMemoization
)

// Options configures Distance.
//
// Fields:
//   - Mode              — which DP engine runs (Tabulation or Memoization).
//   - TrimCommonAffixes — strip the longest shared prefix and suffix and
//     run the DP only on the divergent middles. The returned distance and
//     the behavior of Generate are unaffected; skipped cells that the
//     backtracker can never reach are left Unset.
type Options struct {
	Mode              Mode
	TrimCommonAffixes bool
}

// DefaultOptions returns the recommended configuration: ModeTabulation
// with affix trimming enabled.
func DefaultOptions() Options {
	return Options{Mode: ModeTabulation, TrimCommonAffixes: true}
}

// Op tags an Edit with the operation it performs.
type Op uint8

const (
	// OpDelete removes the element at position Pos.
	OpDelete Op = iota

	// OpInsert places Value immediately after the first Pos elements
	// (Pos == 0 inserts at the very front).
	OpInsert

	// OpSubstitute replaces the element at position Pos with Value.
	OpSubstitute
)

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op {
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpSubstitute:
		return "substitute"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// Edit is a single step of an edit script. Pos is 1-based and addresses
// the evolving reconstruction, not a fixed offset into either original
// sequence; Apply relies on the script's ordering to keep every Pos valid
// without correction. Value is unused by OpDelete.
type Edit[T comparable] struct {
	Op    Op
	Pos   int
	Value T
}

// String implements fmt.Stringer.
func (e Edit[T]) String() string {
	if e.Op == OpDelete {
		return fmt.Sprintf("%s@%d", e.Op, e.Pos)
	}
	return fmt.Sprintf("%s@%d(%v)", e.Op, e.Pos, e.Value)
}

// Script is an ordered sequence of edits produced by Generate. The order
// is significant: backtracking runs from the end of the sequences toward
// the start, so edits near the end of the source come first. Apply
// processes the script in exactly this order; re-sorting it breaks
// reconstruction.
type Script[T comparable] []Edit[T]
