package ppm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) writeHeader(b image.Rectangle) error {
	_, err := fmt.Fprintf(e.w, "%s\n%d %d\n%d\n", magic, b.Dx(), b.Dy(), maxColorValue)
	return err
}

func (e *encoder) encode(m image.Image) error {
	b := m.Bounds()

	if err := e.writeHeader(b); err != nil {
		return err
	}

	row := make([]byte, b.Dx()*channels)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if rgba, ok := m.(*image.RGBA); ok {
			// Copy R, G, B and skip alpha
			src := rgba.Pix[rgba.PixOffset(b.Min.X, y):]
			for x := 0; x < b.Dx(); x++ {
				copy(row[x*channels:x*channels+channels], src[x*bytesPerPixel:])
			}
		} else {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
				i := (x - b.Min.X) * channels
				row[i+0], row[i+1], row[i+2] = c.R, c.G, c.B
			}
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}

	return e.w.Flush()
}

// Encode writes the Image m to w in P6 format. The alpha channel is
// discarded.
func Encode(w io.Writer, m image.Image) error {
	e := encoder{w: bufio.NewWriter(w)}
	return e.encode(m)
}
