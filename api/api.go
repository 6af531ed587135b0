package api

import (
	"go.uber.org/zap"

	"github.com/voxelsplace/qrstl/logger"
	"github.com/voxelsplace/qrstl/qrstl"
)

// TextToMesh encodes input as a QR code and builds its solid.
func TextToMesh(input []byte, opts qrstl.MeshOptions) ([]qrstl.Triangle, error) {
	mat, err := qrstl.Encode(input)
	if err != nil {
		return nil, err
	}
	tris := qrstl.Build(mat, opts)
	logger.Debug("text meshed",
		zap.Int("input_bytes", len(input)),
		zap.Int("modules", mat.Extent()),
		zap.Int("triangles", len(tris)),
	)
	return tris, nil
}

// TextToSTL encodes input as a QR code and returns the STL file as bytes.
func TextToSTL(input []byte, opts qrstl.MeshOptions, ascii bool) ([]byte, error) {
	tris, err := TextToMesh(input, opts)
	if err != nil {
		return nil, err
	}
	return qrstl.STLBytes(tris, ascii)
}

// TextToGLB encodes input as a QR code and returns a .glb file as bytes.
func TextToGLB(input []byte, opts qrstl.MeshOptions) ([]byte, error) {
	tris, err := TextToMesh(input, opts)
	if err != nil {
		return nil, err
	}
	return qrstl.GLBBytes(tris)
}

// BitmapToSTL extrudes a text bitmap (see qrstl.ParseMatrix) and returns
// the STL file as bytes.
func BitmapToSTL(bitmap string, opts qrstl.MeshOptions, ascii bool) ([]byte, error) {
	mat, err := qrstl.ParseMatrix(bitmap)
	if err != nil {
		return nil, err
	}
	return qrstl.STLBytes(qrstl.Build(mat, opts), ascii)
}

// Generate is the embedding entry point: text in, binary STL out. Errors
// carry only "encoding failed" or "serialization failed".
func Generate(input []byte, baseHeight, baseSize, pixelSize float32) ([]byte, error) {
	opts := qrstl.MeshOptions{
		PixelSize:  pixelSize,
		BaseSize:   baseSize,
		BaseHeight: baseHeight,
	}
	tris, err := TextToMesh(input, opts)
	if err != nil {
		return nil, qrstl.ErrEncoding
	}
	out, err := qrstl.STLBytes(tris, false)
	if err != nil {
		return nil, qrstl.ErrSerialization
	}
	return out, nil
}
