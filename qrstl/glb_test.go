package qrstl

import (
	"bytes"
	"errors"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func TestWeld(t *testing.T) {
	// both halves of a flat square share the diagonal and face the same way
	r := Rect(Vec3{0, 0, 0}, Vec3{1, 1, 0})
	positions, normals, indices := weld(r[:])
	if len(positions) != 4 || len(normals) != 4 {
		t.Errorf("got %d positions, %d normals, want 4", len(positions), len(normals))
	}
	if len(indices) != 6 {
		t.Errorf("got %d indices, want 6", len(indices))
	}
	for i, n := range normals {
		if n != [3]float32{0, 0, 1} {
			t.Errorf("normal %d = %v", i, n)
		}
	}
}

func TestWriteGLB(t *testing.T) {
	tris := Build(Matrix{{true, false}, {true, true}}, DefaultMeshOptions())
	data, err := GLBBytes(tris)
	if err != nil {
		t.Fatalf("GLBBytes failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("glTF")) {
		t.Fatalf("missing GLB magic: %q", data[:4])
	}

	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("unexpected mesh layout: %d meshes", len(doc.Meshes))
	}
	prim := doc.Meshes[0].Primitives[0]
	if prim.Indices == nil {
		t.Fatal("primitive has no indices")
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		t.Fatalf("ReadIndices failed: %v", err)
	}
	if len(indices) != 3*len(tris) {
		t.Errorf("got %d indices, want %d", len(indices), 3*len(tris))
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[prim.Attributes[gltf.POSITION]], nil)
	if err != nil {
		t.Fatalf("ReadPosition failed: %v", err)
	}
	for i, idx := range indices {
		want := tris[i/3].Vertices[i%3]
		if got := Vec3(positions[idx]); got != want {
			t.Fatalf("index %d points at %v, want %v", i, got, want)
		}
	}
}

func TestWriteGLBEmpty(t *testing.T) {
	out, err := GLBBytes(nil)
	if err == nil {
		t.Fatalf("expected error for empty mesh, got %d bytes", len(out))
	}
	if !errors.Is(err, ErrSerialization) || !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("error %v does not match ErrSerialization and ErrEmptyMesh", err)
	}

	var buf bytes.Buffer
	if err := WriteMesh(&buf, nil, FormatGLB, CompNone); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("WriteMesh(glb, nil) error = %v, want ErrEmptyMesh", err)
	}
}
