package engine

import (
	"context"
	"errors"
	"os"

	"github.com/31d4r/Raven/internal/logger"
)

// removeTemp removes a temporary file, logs warning if fails
func removeTemp(ctx context.Context, log logger.Logger, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		log.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
