package qrstl

import "math/rand"

// RandomMatrix returns a rows x cols matrix with the given percentage of
// modules switched on, chosen uniformly by r.
func RandomMatrix(rows, cols int, percentage float64, r *rand.Rand) Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	total := rows * cols
	want := int(float64(total)*(percentage/100.0) + 0.5)
	if want > total {
		want = total
	}

	// partial Fisher-Yates, only the first want slots are drawn
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < want; i++ {
		j := i + r.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	m := make(Matrix, rows)
	for y := range m {
		m[y] = make([]bool, cols)
	}
	for _, i := range idx[:want] {
		m[i/cols][i%cols] = true
	}
	return m
}
