package completion

import (
	"context"
	"errors"
)

// Completer sends one prompt to a language model and returns its reply.
type Completer interface {
	Respond(ctx context.Context, prompt string) (string, error)
}

var (
	ErrNoAPIKey      = errors.New("no API key configured")
	ErrKeysExhausted = errors.New("all API keys exhausted")
	ErrEmptyResponse = errors.New("empty response from model")
)
