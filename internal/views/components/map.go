package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// MapPane displays the rendered map frame. The actual compositing happens in
// the render package; this component only swaps the backing image.
type MapPane struct {
	container *fyne.Container
	image     *canvas.Image
}

// NewMapPane creates the map display with the given minimum on-screen size.
func NewMapPane(minWidth, minHeight float32) *MapPane {
	mp := &MapPane{}

	mp.image = canvas.NewImageFromImage(nil)
	mp.image.FillMode = canvas.ImageFillContain
	mp.image.ScaleMode = canvas.ImageScaleSmooth
	mp.image.SetMinSize(fyne.NewSize(minWidth, minHeight))

	mp.container = container.NewStack(mp.image)
	return mp
}

// SetFrame swaps in a freshly rendered frame.
func (mp *MapPane) SetFrame(frame image.Image) {
	fyne.Do(func() {
		mp.image.Image = frame
		mp.image.Refresh()
	})
}

// GetContainer returns the map pane container.
func (mp *MapPane) GetContainer() *fyne.Container {
	return mp.container
}
