package extractor

import "errors"

var (
	ErrDecode            = errors.New("cannot decode file")
	ErrEngineUnavailable = errors.New("engine unavailable")
	ErrEngineFailed      = errors.New("engine failed")
	ErrNotAuthorized     = errors.New("speech recognition not authorized")
	ErrExport            = errors.New("audio export failed")
)
