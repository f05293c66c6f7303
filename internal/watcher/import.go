package watcher

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/31d4r/Raven/internal/logger"
	"github.com/31d4r/Raven/internal/media"
	"github.com/31d4r/Raven/internal/model"
)

// FileAdder is the store operation the importer needs.
type FileAdder interface {
	AddFiles(ctx context.Context, projectID int64, paths []string) ([]model.FileRecord, error)
}

// ImportRecorder counts import outcomes. May be nil.
type ImportRecorder interface {
	ObserveImport(outcome string)
}

const (
	ImportOK     = "imported"
	ImportFailed = "failed"
)

// SupportedMedia accepts files whose extension maps to a known media kind.
func SupportedMedia(filePath string) bool {
	return media.Supported(strings.TrimPrefix(filepath.Ext(filePath), "."))
}

// ImportInto returns an EventHandler that copies each new file into a project.
func ImportInto(store FileAdder, projectID int64, recorder ImportRecorder, log logger.Logger) EventHandler {
	return func(ctx context.Context, filePath string) error {
		records, err := store.AddFiles(ctx, projectID, []string{filePath})
		if err != nil {
			observe(recorder, ImportFailed)
			return err
		}

		observe(recorder, ImportOK)
		for _, r := range records {
			log.Info(ctx, "Imported %s into project %d as %s", filepath.Base(filePath), projectID, r.Name)
		}
		return nil
	}
}

func observe(recorder ImportRecorder, outcome string) {
	if recorder != nil {
		recorder.ObserveImport(outcome)
	}
}
