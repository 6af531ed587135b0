package qrstl

import (
	"fmt"
	"io"
	"strings"
)

// Format is an output mesh file format.
type Format uint8

const (
	FormatSTLBinary Format = iota
	FormatSTLASCII
	FormatGLB
)

func (f Format) String() string {
	switch f {
	case FormatSTLBinary:
		return "stl-binary"
	case FormatSTLASCII:
		return "stl-ascii"
	case FormatGLB:
		return "glb"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

func (f Format) Ext() string {
	if f == FormatGLB {
		return ".glb"
	}
	return ".stl"
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "stl", "stl-binary", "binary":
		return FormatSTLBinary, nil
	case "stl-ascii", "ascii":
		return FormatSTLASCII, nil
	case "glb", "gltf":
		return FormatGLB, nil
	}
	return FormatSTLBinary, fmt.Errorf("unsupported format: %q", s)
}

// WriteMesh serializes tris to w in format f, compressed with c.
func WriteMesh(w io.Writer, tris []Triangle, f Format, c Compression) error {
	cw, err := Compress(w, c)
	if err != nil {
		return &SerializationError{Err: err}
	}
	switch f {
	case FormatSTLBinary, FormatSTLASCII:
		err = WriteSTL(cw, tris, f == FormatSTLASCII)
	case FormatGLB:
		err = WriteGLB(cw, tris)
	default:
		err = &SerializationError{Err: fmt.Errorf("unsupported format: %d", f)}
	}
	if err != nil {
		cw.Close()
		return err
	}
	if err := cw.Close(); err != nil {
		return &SerializationError{Err: err}
	}
	return nil
}
