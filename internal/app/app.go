package app

import (
	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"github.com/philipparndt/geomeasure/internal/host"
	"github.com/philipparndt/geomeasure/internal/measurement"
	"github.com/philipparndt/geomeasure/pkg/viewer"
	"go.uber.org/zap"
)

// App is the interactive map window
type App struct {
	window fyne.Window
	logger *zap.Logger

	m    *host.Map
	tool *measurement.Tool
	view *viewer.MapView

	Tool      ToolState
	FileWatch FileWatchState
	UI        UIState
}

// Run opens the window and blocks until it is closed
func Run(cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := fyneapp.New()
	w := a.NewWindow("geomeasure")

	app := &App{
		window:    w,
		logger:    logger,
		FileWatch: FileWatchState{configPath: cfg.ConfigPath},
	}

	// The render hook runs before the view exists; it only refreshes once set
	app.m = host.New(
		host.WithProjection(cfg.Projection),
		host.WithScheduler(viewer.Scheduler{}),
		host.WithRenderHook(func() {
			if app.view != nil {
				app.view.Refresh()
				app.updateStatus()
			}
		}),
	)
	app.tool = measurement.New(app.m.Host(), cfg.Options, measurement.WithLogger(logger))
	app.m.AddInteraction(app.tool)
	app.tool.OnMeasureEnd(app.handleMeasureEnd)

	app.view = viewer.NewMapView(app.m, app.tool, viewer.NewCamera(cfg.Center, defaultResolution))

	if cfg.ConfigPath != "" {
		if err := app.setupFileWatcher(); err != nil {
			logger.Warn("options file will not be reloaded", zap.Error(err))
		}
		defer app.closeFileWatcher()
	}

	w.SetContent(container.NewBorder(app.setupToolbar(), app.setupStatusBar(), nil, nil, app.view))
	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
	return nil
}

// selectTool arms the measure tool with the toolbar selection
func (app *App) selectTool(key string) {
	app.Tool.key = key
	app.tool.SetTool(key != "", key, app.Tool.freehand)
	app.updateStatus()
	app.view.Refresh()
}

func (app *App) handleMeasureEnd(ev measurement.MeasureEnd) {
	app.UI.results = append(app.UI.results, ev)
	app.Tool.key = ""
	app.updateStatus()
}

// clearAll removes every completed measurement
func (app *App) clearAll() {
	for _, ev := range app.UI.results {
		app.tool.Remove(ev.SessionID)
	}
	app.UI.results = nil
	app.updateStatus()
}
