package utils

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/voxelsplace/qrstl/config"
	"github.com/voxelsplace/qrstl/logger"
	"github.com/voxelsplace/qrstl/qrstl"
)

// RunGenerate encodes the contents of inPath (stdin if empty) as a QR code
// and writes its solid to outPath.
func RunGenerate(inPath, outPath string, cfg *config.Config) error {
	input, err := readInput(inPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	logger.Info("generating triangles", zap.Int("input_bytes", len(input)))

	mat, err := qrstl.Encode(input)
	if err != nil {
		return err
	}
	return writeMeshFile(qrstl.Build(mat, cfg.MeshOptions()), outPath, cfg)
}

// RunMatrix prints the QR matrix for the contents of inPath as a text
// bitmap, suitable as input for RunBitmap.
func RunMatrix(inPath string, w io.Writer) error {
	input, err := readInput(inPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	mat, err := qrstl.Encode(input)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, mat.String())
	return err
}
