package levenshtein

import "slices"

// Apply replays an edit script against source and returns the
// reconstructed target sequence.
//
// Two phases, so that no edit ever needs its position corrected for the
// effect of another edit:
//  1. Walk the script in reverse of generation order (front of the
//     source toward the back). Substitutions overwrite their slot and
//     deletions tombstone theirs; neither changes the buffer length, so
//     recorded positions stay valid throughout. Insertions are deferred.
//  2. Replay the deferred insertions back-to-front, i.e. highest
//     recorded position first. An insertion only shifts the slots after
//     it, and every insertion replayed later lands at or before the
//     previous one, so recorded positions stay valid here too.
//
// The buffer is then compacted, dropping tombstoned slots.
//
// Apply cannot fail on a script Generate produced for the same source.
// A foreign script referencing positions out of range fails fast with
// ErrInvalidScript instead of silently truncating.
//
// Complexity: O(len(source) + k·len(source)) for k insertions.
func Apply[T comparable](source []T, edits Script[T]) ([]T, error) {
	type slot struct {
		value T
		dead  bool
	}

	buf := make([]slot, len(source))
	for i, v := range source {
		buf[i] = slot{value: v}
	}

	var pending Script[T]
	for k := len(edits) - 1; k >= 0; k-- {
		e := edits[k]
		switch e.Op {
		case OpSubstitute:
			if e.Pos < 1 || e.Pos > len(buf) {
				return nil, ErrInvalidScript
			}
			buf[e.Pos-1] = slot{value: e.Value}
		case OpDelete:
			if e.Pos < 1 || e.Pos > len(buf) {
				return nil, ErrInvalidScript
			}
			buf[e.Pos-1].dead = true
		case OpInsert:
			pending = append(pending, e)
		default:
			return nil, ErrInvalidScript
		}
	}

	// pending accumulated in ascending-position order; replay descending.
	for k := len(pending) - 1; k >= 0; k-- {
		e := pending[k]
		if e.Pos < 0 || e.Pos > len(buf) {
			return nil, ErrInvalidScript
		}
		buf = slices.Insert(buf, e.Pos, slot{value: e.Value})
	}

	target := make([]T, 0, len(buf))
	for _, s := range buf {
		if !s.dead {
			target = append(target, s.value)
		}
	}

	return target, nil
}
