package ppmview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/ppmview/ppm"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/nfnt/resize"
)

const gifColors = 256

// Formats lists the output formats understood by Convert, keyed by file
// extension.
var Formats = []string{"gif", "jpeg", "jpg", "png", "ppm"}

func formatFromFile(file string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))
	for _, f := range Formats {
		if f == ext {
			return ext, nil
		}
	}
	return "", fmt.Errorf("unsupported output format \"%s\"", ext)
}

func paletted(m image.Image) *image.Paletted {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, gifColors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

func encode(w io.Writer, m image.Image, format string) error {
	switch format {
	case "gif":
		return gif.Encode(w, paletted(m), nil)
	case "jpeg", "jpg":
		return jpeg.Encode(w, m, nil)
	case "png":
		return png.Encode(w, m)
	case "ppm":
		return ppm.Encode(w, m)
	default:
		return fmt.Errorf("unsupported output format \"%s\"", format)
	}
}

// thumbnail shrinks m so neither side exceeds max, preserving the aspect
// ratio. A max of zero returns m unchanged.
func thumbnail(m image.Image, max uint) image.Image {
	if max == 0 {
		return m
	}
	return resize.Thumbnail(max, max, m, resize.NearestNeighbor)
}

func (v *Viewer) convert(src, dst, format string, max uint) (err error) {
	m, err := v.Load(src)
	if err != nil {
		return err
	}

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err = encode(f, thumbnail(m, max), format); err != nil {
		return err
	}

	v.logger.Printf("Wrote \"%s\"\n", dst)

	return nil
}

// Convert decodes the P6 image src and writes it to dst in the format
// implied by the extension of dst. If max is non-zero the image is first
// shrunk so that neither side exceeds max pixels.
func (v *Viewer) Convert(src, dst string, max uint) error {
	format, err := formatFromFile(dst)
	if err != nil {
		return err
	}
	return v.convert(src, dst, format, max)
}
