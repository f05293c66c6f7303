package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/31d4r/Raven/internal/config"
	"github.com/31d4r/Raven/internal/logger"
	"github.com/31d4r/Raven/pkg/executor"
)

type implWhisper struct {
	cfg      config.SpeechConfig
	ffmpeg   config.FFmpegConfig
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisper creates a Transcriber backed by the whisper.cpp CLI.
// Input audio is resampled with ffmpeg into tempDir first.
func NewWhisper(cfg config.SpeechConfig, ff config.FFmpegConfig, tempDir string, exec executor.Executor, log logger.Logger) Transcriber {
	return &implWhisper{
		cfg:      cfg,
		ffmpeg:   ff,
		tempDir:  tempDir,
		executor: exec,
		logger:   log,
	}
}

func (w *implWhisper) Available() error {
	if _, err := w.executor.LookPath(w.cfg.BinaryPath); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if _, err := w.executor.LookPath(w.ffmpeg.BinaryPath); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if w.cfg.ModelPath == "" {
		return fmt.Errorf("%w: speech.model_path is not set", ErrUnavailable)
	}
	if _, err := os.Stat(w.cfg.ModelPath); err != nil {
		return fmt.Errorf("%w: model: %v", ErrUnavailable, err)
	}
	return nil
}

func (w *implWhisper) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := os.MkdirAll(w.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	prefix := filepath.Join(w.tempDir, "speech_"+uuid.NewString())
	wavPath := prefix + ".wav"
	txtPath := prefix + ".txt"

	if err := w.resample(ctx, audioPath, wavPath); err != nil {
		removeTemp(ctx, w.logger, wavPath)
		return "", err
	}
	defer removeTemp(ctx, w.logger, wavPath)
	// whisper may leave partial output behind when it fails
	defer removeTemp(ctx, w.logger, txtPath)

	// -otxt: plain text output written to <prefix>.txt
	// -np: no progress or system prints
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-np",
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"--output-file", prefix,
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	w.logger.Info(ctx, "Transcribing %s with %d threads", filepath.Base(audioPath), w.cfg.Threads)

	if _, err := w.executor.ExecuteInDir(ctx, w.tempDir, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	return formatTranscript(string(data)), nil
}

// resample converts any input into 16kHz mono PCM WAV, the format whisper.cpp expects.
func (w *implWhisper) resample(ctx context.Context, src, dst string) error {
	args := []string{
		"-i", src,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		dst,
	}

	if _, err := w.executor.Execute(ctx, w.ffmpeg.BinaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg resample: %w", err)
	}
	return nil
}

// formatTranscript joins whisper's per-segment lines into running text.
func formatTranscript(raw string) string {
	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
