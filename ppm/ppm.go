/*
Package ppm implements a decoder and encoder for binary PPM (P6) images.

Only the simplest form of the format is supported; three header lines
followed by raw pixel data:

	P6
	<width> <height>
	255
	<width * height * 3 bytes of interleaved R, G, B samples>

Lines beginning with '#' are comments and may appear wherever a header line
is expected. They are never interpreted inside the pixel data. The ASCII
variants (P1 to P3), the bitmap and graymap variants (P4, P5) and any maximum
color value other than 255 are rejected.

Decoded images are returned as *image.RGBA with every alpha sample set to
0xff as the format carries no transparency.
*/
package ppm

import "image"

const (
	magic         = "P6"
	maxColorValue = 255
	channels      = 3
	bytesPerPixel = 4
	opaque        = 0xff
)

func init() {
	image.RegisterFormat("ppm", magic, Decode, DecodeConfig)
}
