package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// dieImage shows the current face and rolls when tapped.
type dieImage struct {
	widget.BaseWidget
	image    *canvas.Image
	onTapped func()
}

func newDieImage(res fyne.Resource, size float32, onTapped func()) *dieImage {
	d := &dieImage{
		image:    canvas.NewImageFromResource(res),
		onTapped: onTapped,
	}
	d.image.FillMode = canvas.ImageFillContain
	d.image.SetMinSize(fyne.NewSize(size, size))
	d.ExtendBaseWidget(d)
	return d
}

// CreateRenderer is a mandatory method for a Fyne widget.
func (d *dieImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.image)
}

// Tapped is called when the die is tapped or clicked.
func (d *dieImage) Tapped(_ *fyne.PointEvent) {
	if d.onTapped != nil {
		d.onTapped()
	}
}

// SetResource swaps the face image.
func (d *dieImage) SetResource(res fyne.Resource) {
	d.image.Resource = res
	canvas.Refresh(d.image)
}

// Resource returns the face image currently shown.
func (d *dieImage) Resource() fyne.Resource {
	return d.image.Resource
}
