package levenshtein_test

import (
	"testing"

	"github.com/katalvlaran/levdiff/levenshtein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// knownPairs are fixed scenarios with hand-checked distances.
var knownPairs = []struct {
	source, target string
	dist           int
}{
	{"SATURDAY", "SUNDAY", 3},
	{"FLAW", "LAWN", 2},
	{"LAWN", "FFLAWANN", 4},
	{"FLOWER", "FOLLOWER", 2},
	{"kitten", "sitting", 3},
	{"", "ABC", 3},
	{"ABC", "", 3},
	{"", "", 0},
	{"ABC", "ABC", 0},
}

// allOptions enumerates every engine/fast-path combination Distance accepts.
func allOptions() []levenshtein.Options {
	return []levenshtein.Options{
		{Mode: levenshtein.ModeTabulation, TrimCommonAffixes: false},
		{Mode: levenshtein.ModeTabulation, TrimCommonAffixes: true},
		{Mode: levenshtein.ModeMemoization, TrimCommonAffixes: false},
		{Mode: levenshtein.ModeMemoization, TrimCommonAffixes: true},
	}
}

// TestDistance_KnownPairs verifies the fixed scenarios under every
// engine/fast-path combination, and against the naive oracle.
func TestDistance_KnownPairs(t *testing.T) {
	for _, tc := range knownPairs {
		src, dst := []byte(tc.source), []byte(tc.target)

		assert.Equal(t, tc.dist, levenshtein.Naive(src, dst),
			"Naive(%q,%q)", tc.source, tc.target)

		for _, opts := range allOptions() {
			got, mtx := levenshtein.Distance(src, dst, &opts)
			assert.Equal(t, tc.dist, got,
				"Distance(%q,%q,%+v)", tc.source, tc.target, opts)
			assert.Equal(t, len(src)+1, mtx.Rows(), "matrix rows")
			assert.Equal(t, len(dst)+1, mtx.Cols(), "matrix cols")
		}
	}
}

// TestDistance_Symmetry checks distance(a,b) == distance(b,a).
func TestDistance_Symmetry(t *testing.T) {
	for _, tc := range knownPairs {
		src, dst := []byte(tc.source), []byte(tc.target)
		forward, _ := levenshtein.Distance(src, dst, nil)
		backward, _ := levenshtein.Distance(dst, src, nil)
		assert.Equal(t, forward, backward, "distance(%q,%q) vs reverse", tc.source, tc.target)
	}
}

// TestDistance_UpperBound checks the all-delete/all-insert bound
// distance(a,b) ≤ len(a)+len(b).
func TestDistance_UpperBound(t *testing.T) {
	for _, tc := range knownPairs {
		src, dst := []byte(tc.source), []byte(tc.target)
		got, _ := levenshtein.Distance(src, dst, nil)
		assert.LessOrEqual(t, got, len(src)+len(dst),
			"distance(%q,%q)", tc.source, tc.target)
	}
}

// TestDistance_Identity checks distance(a,a) == 0.
func TestDistance_Identity(t *testing.T) {
	for _, s := range []string{"", "x", "identical", "a b c"} {
		got, _ := levenshtein.Distance([]byte(s), []byte(s), nil)
		assert.Zero(t, got, "distance(%q,%q)", s, s)
	}
}

// TestDistance_StringElements verifies the element type is truly generic:
// whole strings compare as single elements.
func TestDistance_StringElements(t *testing.T) {
	src := []string{"Hello", "World"}
	dst := []string{"World"}

	got, mtx := levenshtein.Distance(src, dst, nil)
	assert.Equal(t, 1, got, "one deletion turns [Hello World] into [World]")

	script, err := levenshtein.Generate(src, dst, mtx)
	require.NoError(t, err)
	require.Len(t, script, 1)
	assert.Equal(t, levenshtein.OpDelete, script[0].Op)
	assert.Equal(t, 1, script[0].Pos)
}

// TestDistance_MatrixBoundary checks Matrix[0][j] == j and Matrix[i][0] == i
// for every engine/fast-path combination.
func TestDistance_MatrixBoundary(t *testing.T) {
	src, dst := []byte("SATURDAY"), []byte("SUNDAY")
	for _, opts := range allOptions() {
		_, mtx := levenshtein.Distance(src, dst, &opts)
		for j := 0; j < mtx.Cols(); j++ {
			assert.Equal(t, j, mtx[0][j], "opts=%+v row 0, col %d", opts, j)
		}
		for i := 0; i < mtx.Rows(); i++ {
			assert.Equal(t, i, mtx[i][0], "opts=%+v row %d, col 0", opts, i)
		}
	}
}

// TestMemoization_MatchesTabulationMatrix checks that the top-down engine
// resolves every cell the bottom-up engine fills: the matrices are equal,
// not merely equal in their final cell.
func TestMemoization_MatchesTabulationMatrix(t *testing.T) {
	for _, tc := range knownPairs {
		src, dst := []byte(tc.source), []byte(tc.target)
		tabDist, tabMtx := levenshtein.Tabulation(src, dst)
		memDist, memMtx := levenshtein.Memoization(src, dst)
		assert.Equal(t, tabDist, memDist, "distance for %q/%q", tc.source, tc.target)
		assert.Equal(t, tabMtx, memMtx, "matrix for %q/%q", tc.source, tc.target)
	}
}

// TestDistance_TrimmedMatrixBacktracks verifies the fast-path matrix is a
// drop-in for the untrimmed one: Generate accepts it and the resulting
// script still reconstructs the target with the minimal number of edits.
func TestDistance_TrimmedMatrixBacktracks(t *testing.T) {
	trimmed := levenshtein.Options{Mode: levenshtein.ModeTabulation, TrimCommonAffixes: true}
	for _, tc := range knownPairs {
		src, dst := []byte(tc.source), []byte(tc.target)

		dist, mtx := levenshtein.Distance(src, dst, &trimmed)
		require.Equal(t, tc.dist, dist, "%q/%q", tc.source, tc.target)

		script, err := levenshtein.Generate(src, dst, mtx)
		require.NoError(t, err, "%q/%q", tc.source, tc.target)
		assert.Len(t, script, dist, "minimality for %q/%q", tc.source, tc.target)

		out, err := levenshtein.Apply(src, script)
		require.NoError(t, err)
		assert.Equal(t, tc.target, string(out), "round-trip for %q/%q", tc.source, tc.target)
	}
}
