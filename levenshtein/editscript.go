package levenshtein

// Generate backtracks mtx into a minimal edit script transforming source
// into target.
//
// Contracts:
//   - mtx must be (len(source)+1)×(len(target)+1); any other shape fails
//     with ErrInvalidMatrix before the backtrack starts.
//   - mtx must come from a Distance / Tabulation / Memoization call over
//     the same sequences. A foreign or tampered matrix fails with
//     ErrInvalidMatrix as soon as a cell contradicts the unit-cost
//     recurrence; a malformed matrix cannot be trusted for any prefix of
//     the backtrack, so there is no partial result.
//
// The script comes back in backtracking order — edits near the end of
// the source first — and positions are 1-based source indices at the
// moment of emission. Apply depends on exactly this order; never re-sort
// a Script.
//
// When several predecessors tie on cost, insert wins over delete and
// delete over substitute. The tie-break decides which of the equally
// minimal scripts is produced, so it is part of the contract.
//
// Complexity: O(m+n) steps over the matrix, one edit per unit of cost.
func Generate[T comparable](source, target []T, mtx Matrix) (Script[T], error) {
	i, j := len(source), len(target)
	if mtx.Rows() != i+1 || mtx.Cols() != j+1 {
		return nil, ErrInvalidMatrix
	}

	var script Script[T]
	for i != 0 || j != 0 {
		// Candidate predecessor values; Unset stands in for candidates
		// whose index would fall outside the matrix.
		var (
			cur        = mtx[i][j]
			substitute = Unset
			deletion   = Unset
			insertion  = Unset
		)
		if i > 0 && j > 0 {
			substitute = mtx[i-1][j-1]
		}
		if i > 0 {
			deletion = mtx[i-1][j]
		}
		if j > 0 {
			insertion = mtx[i][j-1]
		}
		best := min(substitute, deletion, insertion)

		switch {
		case best == cur && i > 0 && j > 0:
			// Zero-cost diagonal: the current elements matched.
			i--
			j--
		case best == cur-1 && insertion == best:
			script = append(script, Edit[T]{Op: OpInsert, Pos: i, Value: target[j-1]})
			j--
		case best == cur-1 && deletion == best:
			script = append(script, Edit[T]{Op: OpDelete, Pos: i})
			i--
		case best == cur-1 && substitute == best:
			script = append(script, Edit[T]{Op: OpSubstitute, Pos: i, Value: target[j-1]})
			i--
			j--
		default:
			return nil, ErrInvalidMatrix
		}
	}

	return script, nil
}
