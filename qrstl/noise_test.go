package qrstl

import (
	"math/rand"
	"testing"
)

func TestRandomMatrix(t *testing.T) {
	tests := []struct {
		rows, cols int
		percentage float64
		wantOn     int
	}{
		{10, 10, 0, 0},
		{10, 10, 100, 100},
		{10, 10, 37, 37},
		{3, 7, 50, 11}, // 10.5 rounds up
		{4, 4, -20, 0},
		{4, 4, 250, 16},
		{0, 5, 50, 0},
		{-2, 5, 50, 0},
	}
	for _, tt := range tests {
		m := RandomMatrix(tt.rows, tt.cols, tt.percentage, rand.New(rand.NewSource(99)))
		total, on := m.Cells()
		if on != tt.wantOn {
			t.Errorf("RandomMatrix(%d, %d, %v): %d on, want %d", tt.rows, tt.cols, tt.percentage, on, tt.wantOn)
		}
		if tt.rows > 0 && total != tt.rows*tt.cols {
			t.Errorf("RandomMatrix(%d, %d): %d cells", tt.rows, tt.cols, total)
		}
	}
}

func TestRandomMatrixSeeded(t *testing.T) {
	a := RandomMatrix(8, 8, 50, rand.New(rand.NewSource(1)))
	b := RandomMatrix(8, 8, 50, rand.New(rand.NewSource(1)))
	if a.String() != b.String() {
		t.Error("same seed gave different matrices")
	}
}
