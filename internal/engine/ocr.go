package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/31d4r/Raven/internal/config"
	"github.com/31d4r/Raven/internal/logger"
	"github.com/31d4r/Raven/pkg/executor"
)

type implTesseract struct {
	cfg      config.OCRConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewTesseract creates a Recognizer backed by the tesseract CLI.
func NewTesseract(cfg config.OCRConfig, exec executor.Executor, log logger.Logger) Recognizer {
	return &implTesseract{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

func (t *implTesseract) Recognize(ctx context.Context, imagePath string) ([]string, error) {
	if _, err := t.executor.LookPath(t.cfg.BinaryPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// --oem 1: LSTM engine only (most accurate)
	// --psm 3: fully automatic page segmentation
	// stdout: print recognized text instead of writing a file
	args := []string{
		imagePath,
		"stdout",
		"-l", t.cfg.Languages,
		"--oem", "1",
		"--psm", "3",
	}

	out, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...)
	if err != nil {
		return nil, fmt.Errorf("tesseract recognize: %w", err)
	}

	var regions []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "\f", ""))
		if line != "" {
			regions = append(regions, line)
		}
	}

	t.logger.Debug(ctx, "OCR found %d text region(s) in %s", len(regions), imagePath)
	return regions, nil
}
