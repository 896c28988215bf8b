package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload the ontology whenever the input file changes",
		Long: `Watch loads the ontology, then keeps watching the input file and
reloads it after each change. Every successful reload prints the term
count and version, so a broken edit to the source document surfaces
immediately. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}
			path, err := app.resolveInput()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watchFile(ctx, app, path, cmd.OutOrStdout())
		},
	}
}

func watchFile(ctx context.Context, app *appContext, path string, out io.Writer) error {
	reload := func() {
		ont, err := app.loadOntology()
		if err != nil {
			app.logger.Error("Reload failed", slog.String("path", path), slog.String("error", err.Error()))
			return
		}
		version, _ := ont.Version()
		fmt.Fprintf(out, "%s: %d terms (version %s)\n", path, ont.Len(), version)
	}
	reload()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save and
	// the old inode's watch dies with it.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	app.logger.Info("Watching for changes", slog.String("path", path))

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	target, _ := filepath.Abs(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			eventPath, _ := filepath.Abs(event.Name)
			if eventPath != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			// Debounce: editors fire several events per save.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(app.cfg.Watch.Debounce, reload)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			app.logger.Warn("Watcher error", slog.String("error", err.Error()))
		}
	}
}
