package ppm

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	m, err := DecodeRGBA(bytes.NewReader(testFile("P6\n4 2\n255\n", testPixels)))
	require.NoError(t, err)

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	assert.Equal(t, testFile("P6\n4 2\n255\n", testPixels), b.Bytes())
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for _, size := range []image.Point{{1, 1}, {3, 7}, {64, 40}, {0, 3}} {
		m := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
		for i := range m.Pix {
			if i%4 == 3 {
				m.Pix[i] = 0xff
			} else {
				m.Pix[i] = byte(r.Intn(256))
			}
		}

		b := new(bytes.Buffer)
		require.NoError(t, Encode(b, m))
		assert.Equal(t, size.X*size.Y*3, b.Len()-len(headerFor(size)))

		d, err := DecodeRGBA(b)
		require.NoError(t, err)
		assert.Equal(t, m.Pix, d.Pix, "size %v", size)
	}
}

func headerFor(size image.Point) string {
	return fmt.Sprintf("P6\n%d %d\n255\n", size.X, size.Y)
}

func TestEncodeSubImage(t *testing.T) {
	// Non-RGBA image whose bounds do not start at the origin
	m := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	m.SetNRGBA(10, 20, color.NRGBA{1, 2, 3, 0xff})
	m.SetNRGBA(11, 20, color.NRGBA{4, 5, 6, 0x80})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))
	assert.Equal(t, "P6\n2 1\n255\n\x01\x02\x03\x04\x05\x06", b.String())

	sub := image.NewRGBA(image.Rect(0, 0, 4, 4))
	sub.SetRGBA(2, 2, color.RGBA{7, 8, 9, 0xff})
	b.Reset()
	require.NoError(t, Encode(b, sub.SubImage(image.Rect(2, 2, 3, 3))))
	assert.Equal(t, "P6\n1 1\n255\n\x07\x08\x09", b.String())
}
