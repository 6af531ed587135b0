package qrstl

import (
	"rsc.io/qr"
)

// Level is the error correction level every code is encoded at.
const Level = qr.L

// Encode turns input into a QR module matrix, without the quiet zone.
func Encode(input []byte) (Matrix, error) {
	code, err := qr.Encode(string(input), Level)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	return codeToMatrix(code), nil
}

func codeToMatrix(code *qr.Code) Matrix {
	m := make(Matrix, code.Size)
	for y := range m {
		m[y] = make([]bool, code.Size)
		for x := range m[y] {
			m[y][x] = code.Black(x, y)
		}
	}
	return m
}
