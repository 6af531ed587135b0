package utils

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/voxelsplace/qrstl/config"
	"github.com/voxelsplace/qrstl/logger"
	"github.com/voxelsplace/qrstl/qrstl"
)

// RunNoise writes the solid of a random rows x cols bitmap with the given
// fill percentage. A zero seed picks one from the clock; the seed used is
// logged so a print can be reproduced.
func RunNoise(rows, cols int, percentage float64, seed int64, outPath string, cfg *config.Config) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("noise size must be positive, got %dx%d", rows, cols)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	mat := qrstl.RandomMatrix(rows, cols, percentage, r)

	_, on := mat.Cells()
	logger.Info("noise bitmap",
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Int("on", on),
		zap.Int64("seed", seed),
	)
	warnIfOpen(mat)
	return writeMeshFile(qrstl.Build(mat, cfg.MeshOptions()), outPath, cfg)
}
