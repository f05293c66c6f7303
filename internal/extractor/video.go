package extractor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/31d4r/Raven/internal/engine"
	"github.com/31d4r/Raven/internal/logger"
)

type videoExtractor struct {
	demux   engine.Demuxer
	audio   Extractor
	tempDir string
	logger  logger.Logger
}

// NewVideo creates an Extractor that exports a video's audio track to a temporary
// file under tempDir and hands it to audio.
func NewVideo(demux engine.Demuxer, audio Extractor, tempDir string, log logger.Logger) Extractor {
	return &videoExtractor{
		demux:   demux,
		audio:   audio,
		tempDir: tempDir,
		logger:  log,
	}
}

func (e *videoExtractor) Extract(ctx context.Context, path string) (string, error) {
	duration, err := e.demux.Duration(ctx, path)
	if errors.Is(err, engine.ErrUnavailable) {
		return "", fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if err := os.MkdirAll(e.tempDir, 0755); err != nil {
		return "", fmt.Errorf("%w: create temp dir: %v", ErrExport, err)
	}
	tmp := filepath.Join(e.tempDir, "extracted_audio_"+uuid.NewString()+".m4a")

	if err := e.demux.ExportAudio(ctx, path, tmp, duration); err != nil {
		// ffmpeg may leave a partial file behind.
		e.cleanupTempFile(ctx, tmp)
		if errors.Is(err, engine.ErrUnavailable) {
			return "", fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
		}
		return "", fmt.Errorf("%w: %v", ErrExport, err)
	}

	// Runs even when ctx is cancelled mid-transcription.
	defer e.cleanupTempFile(context.WithoutCancel(ctx), tmp)

	return e.audio.Extract(ctx, tmp)
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (e *videoExtractor) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		e.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		e.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
