package pipeline

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/31d4r/Raven/internal/extractor"
	"github.com/31d4r/Raven/internal/media"
	"github.com/31d4r/Raven/internal/model"
)

// result is what one file produced. At most one of segment and failure is set.
type result struct {
	segment *Segment
	failure *Failure
	skipped bool
}

func (o *implOrchestrator) Run(ctx context.Context, files []model.FileRecord) Report {
	results := make([]result, len(files))

	var g errgroup.Group
	g.SetLimit(o.maxConcurrent)

	for i, file := range files {
		kind := media.Classify(file.FileType)
		ext, ok := o.extractors[kind]
		if kind == media.KindUnsupported || !ok {
			o.logger.Debug(ctx, "Skipping unsupported file %s (%s)", file.Name, file.FileType)
			results[i] = result{skipped: true}
			continue
		}

		g.Go(func() error {
			results[i] = o.extractOne(ctx, file, kind, ext)
			return nil
		})
	}

	// Every goroutine returns nil; Wait only joins.
	_ = g.Wait()

	var report Report
	for i, r := range results {
		switch {
		case r.skipped:
			report.Skipped = append(report.Skipped, files[i].Name)
		case r.failure != nil:
			report.Failures = append(report.Failures, *r.failure)
		case r.segment != nil:
			report.Segments = append(report.Segments, *r.segment)
		}
	}
	report.Context = Join(report.Segments)

	o.logger.Info(ctx, "Extraction finished: %d file(s), %d segment(s), %d failure(s), %d skipped",
		len(files), len(report.Segments), len(report.Failures), len(report.Skipped))
	return report
}

func (o *implOrchestrator) extractOne(ctx context.Context, file model.FileRecord, kind media.Kind, ext extractor.Extractor) (res result) {
	start := time.Now()
	outcome := OutcomeFailed

	defer func() {
		if r := recover(); r != nil {
			res = o.fail(ctx, file, kind, fmt.Errorf("panic: %v", r))
			outcome = OutcomeFailed
		}
		o.observe(kind, outcome, time.Since(start))
	}()

	var key cacheKey
	cacheable := false
	if o.cache != nil {
		key, cacheable = o.cache.key(file.PublicPath)
		if cacheable {
			if text, hit := o.cache.get(key); hit {
				outcome = OutcomeCached
				o.logger.Debug(ctx, "Extraction cache hit: %s", file.Name)
				return o.succeed(file, kind, text)
			}
		}
	}

	text, err := ext.Extract(ctx, file.PublicPath)
	if err != nil {
		return o.fail(ctx, file, kind, err)
	}

	if cacheable {
		o.cache.add(key, text)
	}

	outcome = OutcomeOK
	if text == "" {
		outcome = OutcomeEmpty
		o.logger.Debug(ctx, "No text found in %s", file.Name)
	}
	return o.succeed(file, kind, text)
}

func (o *implOrchestrator) succeed(file model.FileRecord, kind media.Kind, text string) result {
	if text == "" {
		return result{}
	}
	return result{segment: &Segment{Name: file.Name, Kind: kind, Text: text}}
}

func (o *implOrchestrator) fail(ctx context.Context, file model.FileRecord, kind media.Kind, err error) result {
	o.logger.Warn(ctx, "Extraction failed for %s: %v", file.Name, err)
	return result{failure: &Failure{Name: file.Name, Kind: kind, Err: err}}
}

func (o *implOrchestrator) observe(kind media.Kind, outcome string, elapsed time.Duration) {
	if o.recorder != nil {
		o.recorder.ObserveExtraction(string(kind), outcome, elapsed)
	}
}
