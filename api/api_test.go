package api

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/voxelsplace/qrstl/qrstl"
)

func TestGenerate(t *testing.T) {
	out, err := Generate([]byte("hello"), 3, 5, 2.5)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	tris, err := qrstl.ReadSTLBytes(out)
	if err != nil {
		t.Fatalf("output is not a readable STL: %v", err)
	}

	// "hello" encodes as a 21x21 version 1 code
	st := qrstl.Measure(tris)
	total := float32(21*2.5 + 2*5)
	if want := (qrstl.Vec3{total, total, 3 + 2.5*qrstl.ThicknessRatio}); st.Max != want {
		t.Errorf("max corner %v, want %v", st.Max, want)
	}
	if st.Min != (qrstl.Vec3{}) {
		t.Errorf("min corner %v, want origin", st.Min)
	}
	for i, tri := range tris {
		if tri.Normal != (qrstl.Vec3{}) {
			t.Fatalf("triangle %d has normal %v", i, tri.Normal)
		}
	}
}

func TestGenerateMatchesLibrary(t *testing.T) {
	input := []byte("https://voxelsplace.com")
	out, err := Generate(input, 1, 2, 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	want, err := TextToSTL(input, qrstl.MeshOptions{PixelSize: 3, BaseSize: 2, BaseHeight: 1}, false)
	if err != nil {
		t.Fatalf("TextToSTL failed: %v", err)
	}
	if !bytes.Equal(out, want) {
		t.Error("Generate and TextToSTL disagree")
	}
}

func TestGenerateTooLong(t *testing.T) {
	out, err := Generate([]byte(strings.Repeat("x-y_z", 1000)), 3, 5, 2.5)
	if err == nil {
		t.Fatal("expected error")
	}
	if out != nil {
		t.Errorf("got %d bytes with an error", len(out))
	}
	if err.Error() != "encoding failed" {
		t.Errorf("error = %q, want %q", err, "encoding failed")
	}
	if !errors.Is(err, qrstl.ErrEncoding) {
		t.Errorf("error does not match ErrEncoding")
	}
}

func TestTextToGLB(t *testing.T) {
	out, err := TextToGLB([]byte("glb"), qrstl.DefaultMeshOptions())
	if err != nil {
		t.Fatalf("TextToGLB failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("glTF")) {
		t.Error("missing GLB magic")
	}
}

func TestBitmapToSTL(t *testing.T) {
	bitmap := `
#.#
.#.
#.#
`
	out, err := BitmapToSTL(bitmap, qrstl.MeshOptions{PixelSize: 1, BaseSize: 1, BaseHeight: 1}, true)
	if err != nil {
		t.Fatalf("BitmapToSTL failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("solid ")) {
		t.Error("ascii output does not start with \"solid \"")
	}
	tris, err := qrstl.ReadSTLBytes(out)
	if err != nil {
		t.Fatalf("ReadSTLBytes failed: %v", err)
	}
	// five isolated raised modules, four floor tiles, frame
	if want := 5*10 + 4*2 + 18; len(tris) != want {
		t.Errorf("got %d triangles, want %d", len(tris), want)
	}

	if _, err := BitmapToSTL("#?", qrstl.DefaultMeshOptions(), false); err == nil {
		t.Error("expected error for invalid bitmap")
	}
}
