package display

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/bodgit/ppmview/scale"
)

// Background fills the container, the image is scaled and centered and any
// text is placed at the readout position
type imageLayout struct {
	width, height float64
	maxScale      float64
	minSize       fyne.Size

	result scale.Result
}

func (l *imageLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return l.minSize
}

func (l *imageLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	l.result = scale.Fit(l.width, l.height, float64(size.Width), float64(size.Height), l.maxScale)

	for _, o := range objects {
		switch o := o.(type) {
		case *canvas.Image:
			r := l.result.Rect
			o.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
			o.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
		case *canvas.Text:
			o.Text = l.result.String()
			o.Move(readoutPos)
			o.Resize(o.MinSize())
			o.Refresh()
		default:
			o.Move(fyne.NewPos(0, 0))
			o.Resize(size)
		}
	}
}
