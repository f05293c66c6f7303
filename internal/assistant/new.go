package assistant

import (
	"github.com/31d4r/Raven/internal/completion"
	"github.com/31d4r/Raven/internal/logger"
	"github.com/31d4r/Raven/internal/pipeline"
)

type implAssistant struct {
	files         ProjectFiles
	orchestrator  pipeline.Orchestrator
	completer     completion.Completer
	surfaceErrors bool
	logger        logger.Logger
}

// New creates an Assistant. With surfaceErrors set, extraction failures are returned as Answer.Warnings.
func New(files ProjectFiles, orch pipeline.Orchestrator, completer completion.Completer, surfaceErrors bool, log logger.Logger) Assistant {
	return &implAssistant{
		files:         files,
		orchestrator:  orch,
		completer:     completer,
		surfaceErrors: surfaceErrors,
		logger:        log,
	}
}
