package engine

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable means the engine binary or model is missing on this host.
var ErrUnavailable = errors.New("engine unavailable")

// Recognizer runs OCR over an image and returns the text of each detected region in detection order.
type Recognizer interface {
	Recognize(ctx context.Context, imagePath string) ([]string, error)
}

// Transcriber turns a whole audio file into its final transcript.
type Transcriber interface {
	// Available reports ErrUnavailable when transcription cannot run on this host.
	Available() error
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Demuxer reads video assets and exports their audio track.
type Demuxer interface {
	Duration(ctx context.Context, videoPath string) (time.Duration, error)
	ExportAudio(ctx context.Context, videoPath, dstPath string, duration time.Duration) error
}

// AuthStatus is the speech-recognition authorization state.
type AuthStatus int

const (
	AuthNotDetermined AuthStatus = iota
	AuthGranted
	AuthDenied
)

func (s AuthStatus) String() string {
	switch s {
	case AuthGranted:
		return "granted"
	case AuthDenied:
		return "denied"
	default:
		return "not determined"
	}
}

// Authorizer gates speech recognition behind a one-time user decision.
type Authorizer interface {
	Status() AuthStatus
	// Request asks for authorization if it has not been decided yet and blocks until it is.
	Request(ctx context.Context) (AuthStatus, error)
}
