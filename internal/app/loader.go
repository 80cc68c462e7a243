package app

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"github.com/philipparndt/geomeasure/internal/measurement"
	"github.com/philipparndt/geomeasure/pkg/watcher"
	"go.uber.org/zap"
)

// setupFileWatcher reloads the options file when it changes
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(500*time.Millisecond, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		opts, err := measurement.LoadOptions(changedFile)
		if err != nil {
			app.logger.Warn("failed to reload options", zap.Error(err))
			return
		}
		fyne.Do(func() {
			app.applyOptions(opts)
		})
	}

	if err := fw.Watch([]string{app.FileWatch.configPath}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go fw.Run(ctx)

	app.FileWatch.fileWatcher = fw
	app.FileWatch.stop = cancel
	app.logger.Info("watching options file", zap.String("path", app.FileWatch.configPath))

	return nil
}

// applyOptions keeps the projection and applies the rest from the next measurement on
func (app *App) applyOptions(opts measurement.Options) {
	previous := app.tool.Options()
	app.tool.Configure(opts)
	current := app.tool.Options()

	app.logger.Info("options reloaded",
		zap.Float64("sphere", current.Sphere),
		zap.Bool("geodesic", current.Geodesic),
		zap.Stringer("language", current.Language))
	if previous.LayerName != current.LayerName {
		app.logger.Info("new measurements go to another layer",
			zap.String("from", previous.LayerName),
			zap.String("to", current.LayerName))
	}

	app.updateStatus()
	if app.view != nil {
		app.view.Refresh()
	}
}

func (app *App) closeFileWatcher() {
	if app.FileWatch.stop != nil {
		app.FileWatch.stop()
	}
	if app.FileWatch.fileWatcher != nil {
		app.FileWatch.fileWatcher.Close()
	}
}
