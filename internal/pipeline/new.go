package pipeline

import (
	"github.com/31d4r/Raven/internal/extractor"
	"github.com/31d4r/Raven/internal/logger"
	"github.com/31d4r/Raven/internal/media"
)

// Options tune an Orchestrator.
type Options struct {
	MaxConcurrent int // files extracted at once; 0 or less means 1
	CacheSize     int // LRU entries; 0 disables the cache
	Recorder      Recorder
}

type implOrchestrator struct {
	extractors    map[media.Kind]extractor.Extractor
	maxConcurrent int
	cache         *textCache
	recorder      Recorder
	logger        logger.Logger
}

// New creates an Orchestrator routing each media kind to its extractor.
// Kinds without an extractor are skipped like unsupported files.
func New(extractors map[media.Kind]extractor.Extractor, opts Options, log logger.Logger) (Orchestrator, error) {
	o := &implOrchestrator{
		extractors:    extractors,
		maxConcurrent: opts.MaxConcurrent,
		recorder:      opts.Recorder,
		logger:        log,
	}
	if o.maxConcurrent <= 0 {
		o.maxConcurrent = 1
	}

	if opts.CacheSize > 0 {
		c, err := newTextCache(opts.CacheSize, log)
		if err != nil {
			return nil, err
		}
		o.cache = c
	}

	return o, nil
}
