package extractor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/31d4r/Raven/internal/engine"
	"github.com/31d4r/Raven/internal/logger"
)

type audioExtractor struct {
	auth        engine.Authorizer
	transcriber engine.Transcriber
	logger      logger.Logger
}

// NewAudio creates an Extractor that transcribes audio once speech recognition is authorized.
func NewAudio(auth engine.Authorizer, transcriber engine.Transcriber, log logger.Logger) Extractor {
	return &audioExtractor{
		auth:        auth,
		transcriber: transcriber,
		logger:      log,
	}
}

func (e *audioExtractor) Extract(ctx context.Context, path string) (string, error) {
	status := e.auth.Status()
	if status == engine.AuthNotDetermined {
		var err error
		if status, err = e.auth.Request(ctx); err != nil {
			return "", fmt.Errorf("%w: %v", ErrNotAuthorized, err)
		}
	}
	if status != engine.AuthGranted {
		return "", ErrNotAuthorized
	}

	if err := e.transcriber.Available(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	text, err := e.transcriber.Transcribe(ctx, path)
	if errors.Is(err, engine.ErrUnavailable) {
		return "", fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEngineFailed, err)
	}

	return strings.TrimSpace(text), nil
}
