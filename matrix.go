package qrstyle

import (
	"github.com/pkg/errors"
)

// ErrNotSquare is returned by NewMatrix when rows differ in length from the
// number of rows.
var ErrNotSquare = errors.New("qrstyle: matrix is not square")

// Matrix is a square grid of QR modules, true meaning dark. The zero value is
// the empty matrix, which renders as a placeholder.
type Matrix struct {
	n    int
	bits []bool
}

// NewMatrix copies rows into a Matrix. rows[row][col] == true is a dark module.
func NewMatrix(rows [][]bool) (Matrix, error) {
	n := len(rows)
	bits := make([]bool, n*n)
	for r, line := range rows {
		if len(line) != n {
			return Matrix{}, errors.Wrapf(ErrNotSquare, "row %d has %d modules, want %d", r, len(line), n)
		}
		copy(bits[r*n:], line)
	}

	return Matrix{n: n, bits: bits}, nil
}

// Size returns the side length N.
func (m Matrix) Size() int {
	return m.n
}

// Empty reports whether there is nothing to draw.
func (m Matrix) Empty() bool {
	return m.n == 0
}

// Dark reports whether the module at (row, col) is dark. Coordinates outside
// the grid are light.
func (m Matrix) Dark(row, col int) bool {
	if row < 0 || col < 0 || row >= m.n || col >= m.n {
		return false
	}
	return m.bits[row*m.n+col]
}

// Rows returns a copy of the grid as rows.
func (m Matrix) Rows() [][]bool {
	rows := make([][]bool, m.n)
	for r := range rows {
		rows[r] = make([]bool, m.n)
		copy(rows[r], m.bits[r*m.n:(r+1)*m.n])
	}
	return rows
}

// DarkCount returns the number of dark modules.
func (m Matrix) DarkCount() int {
	count := 0
	for _, b := range m.bits {
		if b {
			count++
		}
	}
	return count
}
