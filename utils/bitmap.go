package utils

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/voxelsplace/qrstl/config"
	"github.com/voxelsplace/qrstl/logger"
	"github.com/voxelsplace/qrstl/qrstl"
)

// RunBitmap extrudes a text bitmap file instead of encoding text.
func RunBitmap(inPath, outPath string, cfg *config.Config) error {
	data, err := readInput(inPath)
	if err != nil {
		return fmt.Errorf("failed to read bitmap: %w", err)
	}
	mat, err := qrstl.ParseMatrix(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse bitmap: %w", err)
	}
	total, on := mat.Cells()
	logger.Info("bitmap loaded", zap.Int("cells", total), zap.Int("on", on))
	warnIfOpen(mat)

	return writeMeshFile(qrstl.Build(mat, cfg.MeshOptions()), outPath, cfg)
}
