package levenshtein

import (
	"math"
	"strconv"
	"strings"
)

// Unset marks a matrix cell whose distance has not been computed.
// Memoization uses it as its cache sentinel; the affix-trimming fast path
// leaves it in cells the backtracker can never reach.
const Unset = math.MaxInt

// Matrix is a dense (m+1)×(n+1) table of prefix-to-prefix edit distances:
// cell (i, j) holds the minimum number of unit-cost edits turning the
// first i elements of the source into the first j elements of the target.
//
// Row 0 and column 0 are always exact: Matrix[0][j] == j (insert j
// elements into an empty source) and Matrix[i][0] == i (delete i
// elements). Every other cell either satisfies
//
//	Matrix[i][j] = Matrix[i-1][j-1]                          source[i-1] == target[j-1]
//	Matrix[i][j] = 1 + min(delete, insert, substitute)       otherwise
//
// or holds Unset when the engine proved it irrelevant to the result.
//
// The engine call that builds a Matrix is its only writer; once returned,
// the caller owns it and it is read-only.
type Matrix [][]int

// Rows returns the number of rows, i.e. len(source)+1 for the sequences
// the matrix was built from.
func (mtx Matrix) Rows() int { return len(mtx) }

// Cols returns the number of columns, i.e. len(target)+1. A nil Matrix
// has zero columns.
func (mtx Matrix) Cols() int {
	if len(mtx) == 0 {
		return 0
	}
	return len(mtx[0])
}

// String renders the table row by row for debugging; Unset cells print
// as a dot.
func (mtx Matrix) String() string {
	var sb strings.Builder
	for _, row := range mtx {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if v == Unset {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// newMatrix returns a (m+1)×(n+1) matrix with row 0 set to 0..n, column 0
// set to 0..m, and every interior cell set to Unset.
func newMatrix(m, n int) Matrix {
	mtx := make(Matrix, m+1)
	for i := range mtx {
		mtx[i] = make([]int, n+1)
		if i == 0 {
			for j := 1; j <= n; j++ {
				mtx[0][j] = j
			}
			continue
		}
		mtx[i][0] = i
		for j := 1; j <= n; j++ {
			mtx[i][j] = Unset
		}
	}
	return mtx
}
