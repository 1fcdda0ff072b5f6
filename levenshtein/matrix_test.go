package levenshtein_test

import (
	"testing"

	"github.com/katalvlaran/levdiff/levenshtein"
	"github.com/stretchr/testify/assert"
)

// TestMatrix_Dimensions checks Rows/Cols against the sequences the matrix
// was built from, including nil and degenerate shapes.
func TestMatrix_Dimensions(t *testing.T) {
	_, mtx := levenshtein.Tabulation([]byte("abcd"), []byte("xy"))
	assert.Equal(t, 5, mtx.Rows())
	assert.Equal(t, 3, mtx.Cols())

	_, empty := levenshtein.Tabulation([]byte(""), []byte(""))
	assert.Equal(t, 1, empty.Rows())
	assert.Equal(t, 1, empty.Cols())

	var none levenshtein.Matrix
	assert.Zero(t, none.Rows())
	assert.Zero(t, none.Cols())
}

// TestMatrix_String checks the debug rendering, including the dot marker
// for Unset cells.
func TestMatrix_String(t *testing.T) {
	mtx := levenshtein.Matrix{
		{0, 1, 2},
		{1, levenshtein.Unset, 1},
	}
	assert.Equal(t, "0 1 2\n1 . 1\n", mtx.String())
}

// TestMatrix_TabulationValues pins the full FLAW/LAWN table cell by cell.
func TestMatrix_TabulationValues(t *testing.T) {
	_, mtx := levenshtein.Tabulation([]byte("FLAW"), []byte("LAWN"))
	assert.Equal(t, levenshtein.Matrix{
		{0, 1, 2, 3, 4},
		{1, 1, 2, 3, 4},
		{2, 1, 2, 3, 4},
		{3, 2, 1, 2, 3},
		{4, 3, 2, 1, 2},
	}, mtx)
}
