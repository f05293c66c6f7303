package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/31d4r/Raven/internal/config"
	"github.com/31d4r/Raven/internal/logger"
	"github.com/31d4r/Raven/pkg/executor"
)

type implFFmpeg struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewFFmpeg creates a Demuxer backed by ffprobe and ffmpeg.
func NewFFmpeg(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Demuxer {
	return &implFFmpeg{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

func (f *implFFmpeg) Duration(ctx context.Context, videoPath string) (time.Duration, error) {
	if _, err := f.executor.LookPath(f.cfg.ProbePath); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath,
	}

	out, err := f.executor.Execute(ctx, f.cfg.ProbePath, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)
	}
	if seconds <= 0 {
		return 0, fmt.Errorf("asset has no duration")
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// ExportAudio writes the first duration of the video's audio track to dstPath, re-encoded with the configured codec.
func (f *implFFmpeg) ExportAudio(ctx context.Context, videoPath, dstPath string, duration time.Duration) error {
	if _, err := f.executor.LookPath(f.cfg.BinaryPath); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	args := []string{
		"-i", videoPath,
		"-vn",
		"-t", strconv.FormatFloat(duration.Seconds(), 'f', 3, 64),
		"-c:a", f.cfg.AudioCodec,
		"-b:a", f.cfg.AudioBitrate,
		"-y",
		dstPath,
	}

	f.logger.Debug(ctx, "Exporting audio track: %s -> %s", videoPath, dstPath)

	if _, err := f.executor.Execute(ctx, f.cfg.BinaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg export audio: %w", err)
	}
	return nil
}
