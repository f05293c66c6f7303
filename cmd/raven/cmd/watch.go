package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/31d4r/Raven/internal/metrics"
	"github.com/31d4r/Raven/internal/model"
	"github.com/31d4r/Raven/internal/pipeline"
	"github.com/31d4r/Raven/internal/watcher"
)

func WatchCmd(opts *Options) *cobra.Command {
	var (
		projectID int64
		dir       string
		extract   bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Import media dropped into a folder into a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			project, err := a.store.Project(ctx, projectID)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			m := metrics.New(reg)

			if addr := a.cfg.Metrics.Addr; addr != "" {
				srv := &http.Server{Addr: addr, Handler: metricsMux(reg), ReadHeaderTimeout: 5 * time.Second}
				go func() {
					a.log.Info(ctx, "Metrics listening on %s/metrics", addr)
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						a.log.Error(ctx, "Metrics server: %v", err)
					}
				}()
				defer func() {
					shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
					defer stop()
					_ = srv.Shutdown(shutdownCtx)
				}()
			}

			handler := watcher.ImportInto(a.store, project.ID, m, a.log)
			if extract {
				orch, err := a.orchestrator(m)
				if err != nil {
					return err
				}
				handler = extractAfterImport(a, orch, project.ID, handler)
			}

			w, err := watcher.New(watcher.Options{
				Dir:           dir,
				MaxConcurrent: a.cfg.Watcher.MaxConcurrent,
				SettleDelay:   a.cfg.Watcher.SettleDelay,
				Filter:        watcher.SupportedMedia,
			}, handler, a.log)
			if err != nil {
				return err
			}
			defer w.Stop()

			a.log.Info(ctx, "Importing new media from %s into project %s. Press Ctrl+C to stop", dir, project.Name)

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			a.log.Info(context.Background(), "Watcher stopped")
			return nil
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project id")
	cmd.Flags().StringVarP(&dir, "dir", "d", "inbox", "folder to watch")
	cmd.Flags().BoolVar(&extract, "extract", false, "extract text right after import to report unreadable files early")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func metricsMux(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	return mux
}

// extractAfterImport runs the pipeline over a file right after it is imported.
func extractAfterImport(a *app, orch pipeline.Orchestrator, projectID int64, next watcher.EventHandler) watcher.EventHandler {
	return func(ctx context.Context, filePath string) error {
		if err := next(ctx, filePath); err != nil {
			return err
		}

		files, err := a.store.Files(ctx, projectID)
		if err != nil {
			return err
		}

		// Newest first, so the first match is the copy just made.
		var imported []model.FileRecord
		for _, f := range files {
			if f.OriginalPath == filePath {
				imported = append(imported, f)
				break
			}
		}

		report := orch.Run(ctx, imported)
		for _, f := range report.Failures {
			a.log.Warn(ctx, "Imported file is unreadable: %s", f.Error())
		}
		return nil
	}
}
