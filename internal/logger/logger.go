package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

const sentryFlushTimeout = 2 * time.Second

// Options selects where log records go.
type Options struct {
	Level     string
	Format    string // "text" or "json"
	File      string // optional JSON log file
	SentryDSN string // optional, errors only
	Output    io.Writer
}

type implLogger struct {
	logger *slog.Logger
	level  string
}

// Build creates a Logger that fans out to stdout, an optional file and optional Sentry.
// The returned function flushes Sentry and closes the log file.
func Build(opts Options) (Logger, func()) {
	level := strings.ToLower(opts.Level)
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: slogLevel(level)}

	var handlers []slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		handlers = append(handlers, slog.NewJSONHandler(out, handlerOpts))
	} else {
		handlers = append(handlers, slog.NewTextHandler(out, handlerOpts))
	}

	var file *os.File
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			file = f
			handlers = append(handlers, slog.NewJSONHandler(f, handlerOpts))
		} else {
			fmt.Fprintf(os.Stderr, "open log file %s: %v\n", opts.File, err)
		}
	}

	sentryOn := false
	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{Dsn: opts.SentryDSN})
		if err == nil {
			sentryOn = true
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	closeFn := func() {
		if sentryOn {
			sentry.Flush(sentryFlushTimeout)
		}
		if file != nil {
			_ = file.Close()
		}
	}

	return &implLogger{logger: slog.New(handler), level: level}, closeFn
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.logger.DebugContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}
