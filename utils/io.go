package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/voxelsplace/qrstl/config"
	"github.com/voxelsplace/qrstl/logger"
	"github.com/voxelsplace/qrstl/qrstl"
)

// readInput reads a whole file, or stdin when path is "" or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeMeshFile serializes tris according to cfg and writes them to
// outPath, or stdout when outPath is "-".
func writeMeshFile(tris []qrstl.Triangle, outPath string, cfg *config.Config) error {
	format := cfg.Format()
	comp := cfg.Compression()

	var buf bytes.Buffer
	if err := qrstl.WriteMesh(&buf, tris, format, comp); err != nil {
		return err
	}

	if outPath == "-" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			return &qrstl.SerializationError{Err: err}
		}
	} else if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return &qrstl.SerializationError{Err: err}
	}

	logger.Info("mesh written",
		zap.String("path", outPath),
		zap.Stringer("format", format),
		zap.Stringer("compression", comp),
		zap.Int("triangles", len(tris)),
		zap.Int("bytes", buf.Len()),
		zap.String("fingerprint", fmt.Sprintf("%016x", qrstl.Fingerprint(tris))),
	)
	return nil
}

// warnIfOpen logs when m does not fill its square footprint. The frame
// opening is extent x extent, so missing cells leave holes in the floor.
func warnIfOpen(m qrstl.Matrix) {
	total, _ := m.Cells()
	if ext := m.Extent(); total != ext*ext {
		logger.Warn("bitmap is not square, the mesh will not be closed",
			zap.Int("cells", total),
			zap.Int("extent", ext),
		)
	}
}

// compressionFromName guesses the codec from a file suffix.
func compressionFromName(path string) qrstl.Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return qrstl.CompGzip
	case ".zst":
		return qrstl.CompZstd
	}
	return qrstl.CompNone
}
