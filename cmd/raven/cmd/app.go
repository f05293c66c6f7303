package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/31d4r/Raven/internal/assistant"
	"github.com/31d4r/Raven/internal/completion"
	"github.com/31d4r/Raven/internal/config"
	"github.com/31d4r/Raven/internal/engine"
	"github.com/31d4r/Raven/internal/extractor"
	"github.com/31d4r/Raven/internal/logger"
	"github.com/31d4r/Raven/internal/media"
	"github.com/31d4r/Raven/internal/pipeline"
	"github.com/31d4r/Raven/internal/store"
	"github.com/31d4r/Raven/pkg/executor"
)

// Options are the flags shared by every subcommand.
type Options struct {
	ConfigPath string
}

// app holds what a subcommand needs once config is loaded.
type app struct {
	cfg   *config.Config
	log   logger.Logger
	db    *sqlx.DB
	store store.Store

	closeLog func()
}

func openApp(opts *Options) (*app, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	log, closeLog := logger.Build(logger.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		File:      cfg.Logging.File,
		SentryDSN: cfg.Logging.SentryDSN,
		Output:    os.Stderr,
	})

	db, err := store.OpenDB(cfg.Database.Driver, cfg.Database.Path)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		db:       db,
		store:    store.New(db, cfg.Paths.Projects, nil, log),
		closeLog: closeLog,
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "Failed to close database: %v", err)
	}
	a.closeLog()
}

// orchestrator wires the engines and extractors for every media kind.
func (a *app) orchestrator(recorder pipeline.Recorder) (pipeline.Orchestrator, error) {
	exec := executor.New()

	auth := engine.NewConsentGate(a.cfg.Speech.Consent, a.cfg.Speech.ConsentFile,
		engine.NewTerminalPrompter(os.Stdin, os.Stderr), a.log)
	transcriber := engine.NewWhisper(a.cfg.Speech, a.cfg.FFmpeg, a.cfg.Paths.Temp, exec, a.log)
	audio := extractor.NewAudio(auth, transcriber, a.log)

	extractors := map[media.Kind]extractor.Extractor{
		media.KindImage: extractor.NewImage(engine.NewTesseract(a.cfg.OCR, exec, a.log), a.log),
		media.KindPDF:   extractor.NewPDF(a.log),
		media.KindAudio: audio,
		media.KindVideo: extractor.NewVideo(engine.NewFFmpeg(a.cfg.FFmpeg, exec, a.log), audio, a.cfg.Paths.Temp, a.log),
	}

	return pipeline.New(extractors, pipeline.Options{
		MaxConcurrent: a.cfg.Extraction.MaxConcurrent,
		CacheSize:     a.cfg.Extraction.CacheSize,
		Recorder:      recorder,
	}, a.log)
}

func (a *app) assistant(withCompleter bool) (assistant.Assistant, error) {
	orch, err := a.orchestrator(nil)
	if err != nil {
		return nil, err
	}

	var completer completion.Completer
	if withCompleter {
		if completer, err = completion.New(a.cfg.Completion, a.log); err != nil {
			return nil, err
		}
	}

	return assistant.New(a.store, orch, completer, a.cfg.Extraction.SurfaceEngineErrors, a.log), nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
