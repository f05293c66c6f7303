package pipeline

import (
	"context"
	"time"

	"github.com/31d4r/Raven/internal/model"
)

// Orchestrator extracts text from a project's files and joins it into one context blob.
type Orchestrator interface {
	// Run never fails: per-file problems end up in Report.Failures.
	Run(ctx context.Context, files []model.FileRecord) Report
}

// Recorder receives one observation per dispatched file.
type Recorder interface {
	ObserveExtraction(kind, outcome string, elapsed time.Duration)
}

// Extraction outcomes reported to the Recorder.
const (
	OutcomeOK     = "ok"
	OutcomeEmpty  = "empty"
	OutcomeFailed = "failed"
	OutcomeCached = "cached"
)
