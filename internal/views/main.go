package views

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"iss-tracker/internal/views/components"
)

// MainView assembles the window content: map pane in the center, status
// panel on the right.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	mapPane       *components.MapPane
	statusPanel   *components.StatusPanel
}

// NewMainView creates the main view for the given window.
func NewMainView(window fyne.Window, mapWidth, mapHeight float32, interval time.Duration) *MainView {
	view := &MainView{
		window:      window,
		mapPane:     components.NewMapPane(mapWidth, mapHeight),
		statusPanel: components.NewStatusPanel(interval),
	}

	view.buildLayout()
	return view
}

// buildLayout constructs the main layout.
func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		nil,                           // top
		nil,                           // bottom
		nil,                           // left
		mv.statusPanel.GetContainer(), // right
		mv.mapPane.GetContainer(),     // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// Show displays the main window.
func (mv *MainView) Show() {
	mv.window.Show()
}

// MapPane returns the map display component.
func (mv *MainView) MapPane() *components.MapPane {
	return mv.mapPane
}

// StatusPanel returns the status panel component.
func (mv *MainView) StatusPanel() *components.StatusPanel {
	return mv.statusPanel
}
