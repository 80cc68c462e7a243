package app

import (
	"github.com/paulmach/orb"
	"github.com/philipparndt/geomeasure/internal/measurement"
	"github.com/philipparndt/geomeasure/pkg/projection"
	"github.com/philipparndt/geomeasure/pkg/watcher"
	"go.uber.org/zap"
)

// defaultResolution shows a few kilometers across a typical window
const defaultResolution = 10.0

// Config holds everything needed to start the GUI
type Config struct {
	ConfigPath string // options file to watch; optional
	Options    measurement.Options
	Projection projection.Projection
	Center     orb.Point // map coordinates
	Logger     *zap.Logger
}

// ToolState holds the measure tool selection made in the toolbar
type ToolState struct {
	key      string
	freehand bool
}

// FileWatchState holds options file reload state
type FileWatchState struct {
	configPath  string
	fileWatcher *watcher.FileWatcher
	stop        func()
}
