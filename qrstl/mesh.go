// Package qrstl extrudes QR module matrices into closed triangle meshes
// ready for 3D printing.
package qrstl

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/voxelsplace/qrstl/logger"
)

// ErrInvalidOptions is wrapped by MeshOptions.Validate failures.
var ErrInvalidOptions = errors.New("invalid mesh options")

// MeshOptions sizes the generated solid, in model units.
type MeshOptions struct {
	PixelSize  float32 // edge of one module, > 0
	BaseSize   float32 // width of the border around the code, >= 0
	BaseHeight float32 // height of the base the relief stands on, >= 0

	// ComputeNormals fills in facet normals instead of leaving them zero.
	ComputeNormals bool
}

// DefaultMeshOptions matches the defaults of the command line tool.
func DefaultMeshOptions() MeshOptions {
	return MeshOptions{
		PixelSize:  2.5,
		BaseSize:   5.0,
		BaseHeight: 3.0,
	}
}

// Validate reports options that cannot describe a printable solid.
func (o MeshOptions) Validate() error {
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"pixel_size", o.PixelSize},
		{"base_size", o.BaseSize},
		{"base_height", o.BaseHeight},
	} {
		if math.IsNaN(float64(f.v)) || math.IsInf(float64(f.v), 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidOptions, f.name)
		}
		if f.v < 0 {
			return fmt.Errorf("%w: %s is negative (%g)", ErrInvalidOptions, f.name, f.v)
		}
	}
	if o.PixelSize == 0 {
		return fmt.Errorf("%w: pixel_size must be positive", ErrInvalidOptions)
	}
	return nil
}

// Thickness is the height of the relief above the base.
func (o MeshOptions) Thickness() float32 {
	return o.PixelSize * ThicknessRatio
}

// Inner is the far edge of the frame opening for m: the relief's last
// column and row, offset by the border. It matches the tile coordinates
// bit for bit.
func (o MeshOptions) Inner(m Matrix) float32 {
	return float32(m.Extent())*o.PixelSize + o.BaseSize
}

// Total is the side length of the square footprint for m.
func (o MeshOptions) Total(m Matrix) float32 {
	return o.Inner(m) + o.BaseSize
}

// Build turns m into a closed triangle mesh: the extruded modules, lifted
// onto the base and inset by the border, followed by the frame.
// An empty matrix yields the frame alone.
func Build(m Matrix, opts MeshOptions) []Triangle {
	tris := MatrixToTriangles(m, opts.PixelSize)
	OffsetTriangles(tris, Vec3{opts.BaseSize, opts.BaseSize, opts.BaseHeight})

	inner := opts.Inner(m)
	tris = append(tris, FrameTriangles(opts.BaseSize, inner, opts.BaseHeight)...)

	if opts.ComputeNormals {
		FillNormals(tris)
	}

	logger.Debug("mesh built",
		zap.Int("modules", m.Extent()),
		zap.Float32("total", inner+opts.BaseSize),
		zap.Int("triangles", len(tris)),
	)
	return tris
}

// FillNormals sets each triangle's normal from its vertex order.
// Degenerate triangles keep a zero normal.
func FillNormals(tris []Triangle) {
	for i := range tris {
		tris[i].Normal = FaceNormal(tris[i])
	}
}
