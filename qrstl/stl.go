package qrstl

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hschendel/stl"
)

// SolidName names the solid in ASCII output and heads binary output.
const SolidName = "qrstl"

func toSolid(tris []Triangle, ascii bool) *stl.Solid {
	solid := &stl.Solid{
		Name:      SolidName,
		IsAscii:   ascii,
		Triangles: make([]stl.Triangle, len(tris)),
	}
	if !ascii {
		// a binary header must not start with "solid"
		solid.BinaryHeader = []byte("binary STL generated by " + SolidName)
	}
	for i, t := range tris {
		solid.Triangles[i] = stl.Triangle{
			Normal:   stl.Vec3(t.Normal),
			Vertices: [3]stl.Vec3{stl.Vec3(t.Vertices[0]), stl.Vec3(t.Vertices[1]), stl.Vec3(t.Vertices[2])},
		}
	}
	return solid
}

func fromSolid(solid *stl.Solid) []Triangle {
	tris := make([]Triangle, len(solid.Triangles))
	for i, t := range solid.Triangles {
		tris[i] = Triangle{
			Normal:   Vec3(t.Normal),
			Vertices: [3]Vec3{Vec3(t.Vertices[0]), Vec3(t.Vertices[1]), Vec3(t.Vertices[2])},
		}
	}
	return tris
}

// WriteSTL writes tris to w as a binary STL, or ASCII STL if ascii is set,
// in the order given.
func WriteSTL(w io.Writer, tris []Triangle, ascii bool) error {
	if err := toSolid(tris, ascii).WriteAll(w); err != nil {
		return &SerializationError{Err: err}
	}
	return nil
}

// STLBytes returns tris as an in-memory STL file.
func STLBytes(tris []Triangle, ascii bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, tris, ascii); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadSTL parses a binary or ASCII STL stream.
func ReadSTL(r io.ReadSeeker) ([]Triangle, error) {
	solid, err := stl.ReadAll(r)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return fromSolid(solid), nil
}

// ReadSTLBytes parses an in-memory STL file.
func ReadSTLBytes(data []byte) ([]Triangle, error) {
	return ReadSTL(bytes.NewReader(data))
}

func SaveSTL(tris []Triangle, filename string, ascii bool) error {
	f, err := os.Create(filename)
	if err != nil {
		return &SerializationError{Err: err}
	}
	if err := WriteSTL(f, tris, ascii); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &SerializationError{Err: fmt.Errorf("closing %s: %w", filename, err)}
	}
	return nil
}

func LoadSTL(filename string) ([]Triangle, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	defer f.Close()
	return ReadSTL(f)
}
