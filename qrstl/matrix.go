package qrstl

import "strings"

// Matrix is a QR module bitmap indexed as m[y][x], y growing downward.
// Rows may differ in length.
type Matrix [][]bool

// Sample returns the module at column x, row y. Anything outside the
// matrix reads as false (background).
func (m Matrix) Sample(x, y int) bool {
	if x < 0 || y < 0 || y >= len(m) || x >= len(m[y]) {
		return false
	}
	return m[y][x]
}

// Extent is the side, in modules, of the square the matrix is placed in:
// the larger of the row count and the longest row.
func (m Matrix) Extent() int {
	n := len(m)
	for _, row := range m {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Cells counts all modules and the ones that are on.
func (m Matrix) Cells() (total, on int) {
	for _, row := range m {
		total += len(row)
		for _, v := range row {
			if v {
				on++
			}
		}
	}
	return total, on
}

// String renders the matrix in the text bitmap format read by ParseMatrix.
func (m Matrix) String() string {
	var sb strings.Builder
	for _, row := range m {
		for _, v := range row {
			if v {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
