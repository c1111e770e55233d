package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/metro3d/assetkit"
	"github.com/metro3d/assetkit/pkg/adapters/fswatch"
	"github.com/metro3d/assetkit/pkg/core"
)

var (
	watchDebounce time.Duration
	watchSidecar  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [scene]",
	Short: "Watch a scene file and re-read its metadata on change",
	Long: `Watch re-ingests the scene's embedded metadata every time the file
changes on disk (debounced), logging what mapped. With --sidecar the
.metro.json export is regenerated after each change. Useful while an
external tool keeps rewriting the asset. Stops on SIGINT/SIGTERM.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenePath := args[0]

		// Fail early if the scene is unreadable.
		if _, err := openSession(scenePath, assetkit.WithAutoExtract(false)); err != nil {
			fatal("Failed to open scene", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		w := fswatch.NewWatcher(fswatch.Config{
			Paths:    []string{scenePath},
			Debounce: watchDebounce,
			Logger:   slog.Default(),
			ErrorHandler: func(err error) {
				fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
			},
		})
		if err := w.Start(ctx); err != nil {
			fatal("Failed to start watcher", err)
		}
		defer w.Stop(ctx)

		fmt.Printf("watching %s\n", scenePath)
		for {
			select {
			case <-ctx.Done():
				fmt.Println("stopped")
				return
			case e, ok := <-w.Events():
				if !ok {
					return
				}
				if e.Type == core.EventRemoved {
					slog.Warn("scene removed", "path", e.Path)
					continue
				}
				reportChange(scenePath, e)
			}
		}
	},
}

func reportChange(scenePath string, e assetkit.Event) {
	s, err := openSession(scenePath, assetkit.WithAutoExtract(false))
	if err != nil {
		slog.Error("reopen failed", "path", scenePath, "error", err)
		return
	}
	report, err := s.Service().ReadBack()
	if err != nil {
		slog.Error("read back failed", "path", scenePath, "error", err)
		return
	}
	slog.Info("scene changed",
		"event", e.String(),
		"mapped", len(report.Mapped),
		"unrecognized", len(report.Raw))

	if watchSidecar {
		written, err := s.ExportSidecar()
		if err != nil {
			slog.Error("sidecar export failed", "path", scenePath, "error", err)
			return
		}
		slog.Info("sidecar refreshed", "path", written)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "Debounce window for change events")
	watchCmd.Flags().BoolVar(&watchSidecar, "sidecar", false, "Re-export the sidecar after each change")
}
