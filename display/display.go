/*
Package display shows a decoded image in a window.

In fixed mode the window is sized to the image and cannot be resized so the
image is drawn 1:1. In resizable mode the image is scaled to fit the window
on every layout pass, capped at a maximum zoom and centered, with the current
scale factor drawn in the top left corner.
*/
package display

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/bodgit/ppmview/scale"
)

const (
	defaultTitle  = "Image Viewer"
	defaultWidth  = 800
	defaultHeight = 600
)

var (
	background  = color.NRGBA{0xf5, 0xf5, 0xf5, 0xff}
	readoutText = color.NRGBA{0x50, 0x50, 0x50, 0xff}
	readoutPos  = fyne.NewPos(10, 10)
)

// Options controls how the window is created.
type Options struct {
	Title     string
	Resizable bool
	// MaxScale caps the zoom when the window is larger than the image.
	MaxScale float64
	// Width and Height are the initial size of a resizable window.
	Width, Height float32
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = defaultTitle
	}
	if o.MaxScale <= 0 {
		o.MaxScale = scale.DefaultMaxScale
	}
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	return o
}

// Show opens a window displaying m and blocks until it is closed.
func Show(m image.Image, opts Options) {
	w := newWindow(app.New(), m, opts)
	w.ShowAndRun()
}

func newContent(m image.Image, opts Options) (*fyne.Container, *imageLayout) {
	b := m.Bounds()

	img := canvas.NewImageFromImage(m)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels

	l := &imageLayout{
		width:    float64(b.Dx()),
		height:   float64(b.Dy()),
		maxScale: opts.MaxScale,
	}

	objects := []fyne.CanvasObject{canvas.NewRectangle(background), img}
	if opts.Resizable {
		objects = append(objects, canvas.NewText("", readoutText))
	} else {
		l.minSize = fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
	}

	return container.New(l, objects...), l
}

func newWindow(a fyne.App, m image.Image, opts Options) fyne.Window {
	opts = opts.withDefaults()

	content, _ := newContent(m, opts)

	w := a.NewWindow(opts.Title)
	w.SetPadded(false)
	w.SetContent(content)

	if opts.Resizable {
		w.Resize(fyne.NewSize(opts.Width, opts.Height))
	} else {
		b := m.Bounds()
		w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
		w.SetFixedSize(true)
	}

	return w
}
