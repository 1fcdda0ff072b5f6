package levenshtein

// Distance computes the edit distance between source and target and
// returns it together with the distance matrix consumed by Generate.
// A nil opts means DefaultOptions.
//
// The matrix is always dimensioned (len(source)+1)×(len(target)+1),
// whatever fast paths ran internally; hand it to Generate as-is.
//
// Complexity: O(m·n) time and memory (m, n are the lengths after affix
// trimming when that is enabled).
//
// Example:
//
//	dist, mtx := levenshtein.Distance([]byte("FLAW"), []byte("LAWN"), nil)
//	// dist == 2
func Distance[T comparable](source, target []T, opts *Options) (int, Matrix) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.TrimCommonAffixes {
		if dist, mtx, ok := trimmedDistance(source, target, o.Mode); ok {
			return dist, mtx
		}
	}
	return runEngine(o.Mode, source, target)
}

// runEngine routes to the requested DP variant.
func runEngine[T comparable](mode Mode, source, target []T) (int, Matrix) {
	if mode == ModeMemoization {
		return Memoization(source, target)
	}
	return Tabulation(source, target)
}

// Naive computes the edit distance by exhaustive recursion, with no
// caching and no matrix.
//
// It is ill-advised to use this function outside of tests: the time
// complexity is O(3^max(m,n)), so anything beyond a few dozen elements
// will effectively never finish. It exists as a correctness oracle for
// the DP engines.
func Naive[T comparable](source, target []T) int {
	if len(source) == 0 || len(target) == 0 {
		return max(len(source), len(target))
	}

	k := 1
	if source[len(source)-1] == target[len(target)-1] {
		k = 0
	}

	deletion := Naive(source[:len(source)-1], target) + 1
	insertion := Naive(source, target[:len(target)-1]) + 1
	substitution := Naive(source[:len(source)-1], target[:len(target)-1]) + k

	return min(deletion, insertion, substitution)
}

// Tabulation computes the edit distance bottom-up, filling the full
// matrix in row-major order. Every cell is derived from already-filled
// neighbors, so no recursion and no sentinel cells remain.
//
// Complexity: O(m·n) time, O(m·n) memory, O(1) stack.
func Tabulation[T comparable](source, target []T) (int, Matrix) {
	m, n := len(source), len(target)
	mtx := newMatrix(m, n)

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			k := 1
			if source[i-1] == target[j-1] {
				k = 0
			}
			mtx[i][j] = min(mtx[i-1][j]+1, mtx[i][j-1]+1, mtx[i-1][j-1]+k)
		}
	}

	return mtx[m][n], mtx
}

// Memoization computes the edit distance top-down with the same
// recurrence as Tabulation, using the matrix itself as the cache: cells
// start at Unset and are recursed into only while still Unset, so cache
// hits short-circuit the recursion.
//
// The cache is private to this call; the returned matrix is identical to
// the one Tabulation builds.
//
// Complexity: O(m·n) time, O(m·n) memory, O(m+n) recursion depth —
// prefer Tabulation for very long inputs.
func Memoization[T comparable](source, target []T) (int, Matrix) {
	mtx := newMatrix(len(source), len(target))
	return memoize(source, target, mtx), mtx
}

// memoize resolves the cell addressed by the current prefix lengths.
// Row 0 and column 0 are pre-filled by newMatrix, so the cache check also
// covers the empty-sequence base cases.
func memoize[T comparable](source, target []T, mtx Matrix) int {
	i, j := len(source), len(target)
	if mtx[i][j] != Unset {
		return mtx[i][j]
	}

	k := 1
	if source[i-1] == target[j-1] {
		k = 0
	}

	deletion := memoize(source[:i-1], target, mtx) + 1
	insertion := memoize(source, target[:j-1], mtx) + 1
	substitution := memoize(source[:i-1], target[:j-1], mtx) + k

	mtx[i][j] = min(deletion, insertion, substitution)

	return mtx[i][j]
}

// trimmedDistance strips the longest common prefix (length p) and suffix
// (length s), runs the DP on the divergent middles only, and re-inflates
// the result into a full (m+1)×(n+1) matrix. Reports ok=false when there
// is nothing to strip.
//
// Matching affixes contribute zero cost, so the distance is unchanged.
// The inflated matrix is exact everywhere the backtracker can step:
//   - prefix band (i ≤ p or j ≤ p): one prefix there is a prefix of the
//     other, so the distance is the length difference |i-j|;
//   - core block: the middle DP shifted by p, since a shared prefix adds
//     nothing to any core cell;
//   - suffix diagonal: trailing matches keep the final distance constant.
//
// Remaining suffix-band cells stay Unset; their true values are never
// needed, and Unset never wins a minimum.
func trimmedDistance[T comparable](source, target []T, mode Mode) (int, Matrix, bool) {
	m, n := len(source), len(target)

	p := 0
	for p < m && p < n && source[p] == target[p] {
		p++
	}
	s := 0
	for s < m-p && s < n-p && source[m-1-s] == target[n-1-s] {
		s++
	}
	if p == 0 && s == 0 {
		return 0, nil, false
	}

	dist, core := runEngine(mode, source[p:m-s], target[p:n-s])

	mtx := make(Matrix, m+1)
	for i := range mtx {
		mtx[i] = make([]int, n+1)
		for j := range mtx[i] {
			switch {
			case i <= p || j <= p:
				if i > j {
					mtx[i][j] = i - j
				} else {
					mtx[i][j] = j - i
				}
			default:
				mtx[i][j] = Unset
			}
		}
	}
	for i := range core {
		copy(mtx[p+i][p:n-s+1], core[i])
	}
	for k := 1; k <= s; k++ {
		mtx[m-s+k][n-s+k] = dist
	}

	return dist, mtx, true
}
