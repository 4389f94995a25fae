/*
Package ppmview is a library for viewing and converting binary PPM (P6)
images.
*/
package ppmview

import (
	"image"
	"log"

	"github.com/bodgit/ppmview/display"
	"github.com/bodgit/ppmview/ppm"
)

type Viewer struct {
	decoder ppm.Decoder
	logger  *log.Logger

	// show blocks while the image is on screen
	show func(image.Image, display.Options)
}

// New returns a Viewer that refuses images with more than maxPixels pixels,
// zero meaning no limit.
func New(maxPixels int, logger *log.Logger) *Viewer {
	return &Viewer{
		decoder: ppm.Decoder{MaxPixels: maxPixels},
		logger:  logger,
		show:    display.Show,
	}
}

// Load decodes the image in file.
func (v *Viewer) Load(file string) (*image.RGBA, error) {
	m, err := v.decoder.DecodeFile(file)
	if err != nil {
		return nil, err
	}
	v.logger.Printf("Decoded \"%s\", %dx%d\n", file, m.Bounds().Dx(), m.Bounds().Dy())
	return m, nil
}

// Info reads only the header of file.
func (v *Viewer) Info(file string) (image.Config, error) {
	return v.decoder.DecodeConfigFile(file)
}

// View decodes file and shows it in a window until the window is closed. No
// window is created if decoding fails.
func (v *Viewer) View(file string, opts display.Options) error {
	m, err := v.Load(file)
	if err != nil {
		return err
	}

	v.logger.Printf("Opening window, resizable: %t\n", opts.Resizable)
	v.show(m, opts)
	v.logger.Println("Window closed")

	return nil
}
