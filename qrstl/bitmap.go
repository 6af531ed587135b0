package qrstl

import (
	"fmt"
	"strings"
)

// ParseMatrix reads a text bitmap, one row per line. '#', '1', 'X' and 'x'
// are on modules; '.', '0', ' ', '_' and '-' are off. Leading and trailing
// blank lines are dropped, rows may have different lengths.
func ParseMatrix(text string) (Matrix, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	m := make(Matrix, 0, len(lines))
	for i, line := range lines {
		row := make([]bool, 0, len(line))
		for j, r := range []rune(line) {
			switch r {
			case '#', '1', 'X', 'x':
				row = append(row, true)
			case '.', '0', ' ', '_', '-':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("bitmap line %d column %d: unexpected %q", i+1, j+1, r)
			}
		}
		m = append(m, row)
	}
	return m, nil
}
