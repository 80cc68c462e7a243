package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/geomeasure/internal/measurement"
)

// UIState holds toolbar and status widgets
type UIState struct {
	statusLabel *widget.Label
	resultLabel *widget.Label
	results     []measurement.MeasureEnd
}

func (app *App) setupToolbar() fyne.CanvasObject {
	lengthButton := widget.NewButton("Length", func() {
		app.selectTool(measurement.KindLength.String())
	})
	areaButton := widget.NewButton("Area", func() {
		app.selectTool(measurement.KindArea.String())
	})
	circleButton := widget.NewButton("Circle", func() {
		app.selectTool(measurement.KindCircle.String())
	})
	stopButton := widget.NewButton("Stop", func() {
		app.selectTool("")
	})

	freehandCheck := widget.NewCheck("Freehand", func(checked bool) {
		app.Tool.freehand = checked
		if app.Tool.key != "" {
			app.selectTool(app.Tool.key)
		}
	})

	clearButton := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), app.clearAll)

	return container.NewHBox(
		lengthButton,
		areaButton,
		circleButton,
		stopButton,
		freehandCheck,
		layout.NewSpacer(),
		clearButton,
	)
}

func (app *App) setupStatusBar() fyne.CanvasObject {
	app.UI.statusLabel = widget.NewLabel("")
	app.UI.resultLabel = widget.NewLabel("")
	app.UI.resultLabel.TextStyle = fyne.TextStyle{Bold: true}
	app.updateStatus()

	return container.NewHBox(app.UI.statusLabel, layout.NewSpacer(), app.UI.resultLabel)
}

func (app *App) updateStatus() {
	if app.UI.statusLabel == nil {
		return
	}
	status, result := app.statusText()
	app.UI.statusLabel.SetText(status)
	app.UI.resultLabel.SetText(result)
}

func (app *App) statusText() (status, result string) {
	status = "Drag to pan, scroll to zoom"
	if s := app.tool.Session(); s != nil {
		status = fmt.Sprintf("Measuring %s (%s)", s.Kind, s.State)
		if s.Freehand {
			status += ", freehand"
		}
	}

	opts := app.tool.Options()
	mode := "geodesic"
	if !opts.Geodesic {
		mode = "planar"
	}
	status += fmt.Sprintf(" | %s, layer %s", mode, opts.LayerName)

	if n := len(app.UI.results); n > 0 {
		result = fmt.Sprintf("%d measurement(s), last: %s", n, app.UI.results[n-1].Result)
	}
	return status, result
}
