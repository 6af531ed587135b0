package qrstl

import (
	"errors"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		input string
		size  int
	}{
		{"hello", 21},
		{"https://example.com/some/longer/path?with=query", 29},
	}
	for _, tt := range tests {
		m, err := Encode([]byte(tt.input))
		if err != nil {
			t.Fatalf("Encode(%q) failed: %v", tt.input, err)
		}
		if len(m) != tt.size || m.Extent() != tt.size {
			t.Errorf("Encode(%q) is %dx%d, want %dx%d", tt.input, len(m), m.Extent(), tt.size, tt.size)
		}
		// finder pattern corners are always dark
		for _, p := range [][2]int{{0, 0}, {tt.size - 1, 0}, {0, tt.size - 1}} {
			if !m.Sample(p[0], p[1]) {
				t.Errorf("Encode(%q): module %v is light", tt.input, p)
			}
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := Encode([]byte("same input"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encode([]byte("same input"))
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("Encode is not deterministic")
	}
}

func TestEncodeTooLong(t *testing.T) {
	_, err := Encode([]byte(strings.Repeat("a,B;c", 1000)))
	if err == nil {
		t.Fatal("expected error for oversized input")
	}
	var eerr *EncodingError
	if !errors.As(err, &eerr) {
		t.Errorf("error %T is not an EncodingError", err)
	}
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("error %v does not match ErrEncoding", err)
	}
	if errors.Is(err, ErrSerialization) {
		t.Error("encoding error matches ErrSerialization")
	}
}
