package ppm

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
)

const maxInt = int(^uint(0) >> 1)

// A Decoder decodes P6 images subject to an optional size limit. The zero
// value imposes no limit beyond available memory.
type Decoder struct {
	// MaxPixels, when positive, is the largest width * height accepted.
	MaxPixels int
}

type decoder struct {
	r *bufio.Reader

	maxPixels int

	width, height int

	image *image.RGBA
}

// readLine returns the next header line, skipping comments. A final line
// without a terminator is returned as is.
func (d *decoder) readLine() (string, error) {
	for {
		line, err := d.r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return "", err
			}
			if line == "" {
				return "", ErrUnexpectedEOF
			}
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
}

func (d *decoder) readMagic() error {
	line, err := d.readLine()
	if err != nil {
		return err
	}
	if line != magic+"\n" {
		return fmt.Errorf("%w: %q", ErrInvalidFormatTag, line)
	}
	return nil
}

func (d *decoder) readDimensions() error {
	line, err := d.readLine()
	if err != nil {
		return err
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("%w: %q", ErrDimensionParse, line)
	}

	var dims [2]int
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 31)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrDimensionParse, line)
		}
		dims[i] = int(v)
	}
	d.width, d.height = dims[0], dims[1]

	return nil
}

func (d *decoder) readMaxColor() error {
	line, err := d.readLine()
	if err != nil {
		return err
	}

	fields := strings.Fields(line)
	if len(fields) != 1 {
		return fmt.Errorf("%w: %q", ErrUnsupportedMaxColor, line)
	}
	if v, err := strconv.Atoi(fields[0]); err != nil || v != maxColorValue {
		return fmt.Errorf("%w: %q", ErrUnsupportedMaxColor, fields[0])
	}

	return nil
}

func (d *decoder) checkSize() error {
	// Both dimensions fit in 31 bits so this cannot overflow
	pixels := uint64(d.width) * uint64(d.height)
	if pixels > uint64(maxInt/bytesPerPixel) {
		return fmt.Errorf("%w: %dx%d overflows", ErrAllocation, d.width, d.height)
	}
	if d.maxPixels > 0 && pixels > uint64(d.maxPixels) {
		return fmt.Errorf("%w: %dx%d exceeds limit of %d pixels", ErrAllocation, d.width, d.height, d.maxPixels)
	}
	return nil
}

// readPixels buffers the raw payload as it arrives and only allocates the
// image once all width * height * 3 bytes are present.
func (d *decoder) readPixels() error {
	size := int64(d.width) * int64(d.height) * channels

	raw := new(bytes.Buffer)
	if _, err := raw.ReadFrom(io.LimitReader(d.r, size)); err != nil {
		return err
	}
	if int64(raw.Len()) < size {
		return fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedPixelData, raw.Len(), size)
	}

	d.image = image.NewRGBA(image.Rect(0, 0, d.width, d.height))

	src := raw.Bytes()
	for y := 0; y < d.height; y++ {
		row := src[y*d.width*channels : (y+1)*d.width*channels]
		dst := d.image.Pix[y*d.image.Stride : y*d.image.Stride+d.width*bytesPerPixel]
		for x := 0; x < d.width; x++ {
			dst[x*bytesPerPixel+0] = row[x*channels+0]
			dst[x*bytesPerPixel+1] = row[x*channels+1]
			dst[x*bytesPerPixel+2] = row[x*channels+2]
			dst[x*bytesPerPixel+3] = opaque
		}
	}
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	if br, ok := r.(*bufio.Reader); ok {
		d.r = br
	} else {
		d.r = bufio.NewReader(r)
	}

	if err := d.readMagic(); err != nil {
		return err
	}

	if err := d.readDimensions(); err != nil {
		return err
	}

	if err := d.readMaxColor(); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	if err := d.checkSize(); err != nil {
		return err
	}

	return d.readPixels()
}

// DecodeRGBA reads a P6 image from r.
func (dec Decoder) DecodeRGBA(r io.Reader) (*image.RGBA, error) {
	d := decoder{maxPixels: dec.MaxPixels}
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeFile opens and decodes the P6 image at path.
func (dec Decoder) DecodeFile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	return dec.DecodeRGBA(f)
}

// Decode reads a P6 image from r and returns it as an image.Image. The
// concrete type is *image.RGBA.
func Decode(r io.Reader) (image.Image, error) {
	m, err := Decoder{}.DecodeRGBA(r)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeRGBA reads a P6 image from r without a size limit.
func DecodeRGBA(r io.Reader) (*image.RGBA, error) {
	return Decoder{}.DecodeRGBA(r)
}

// DecodeFile opens and decodes the P6 image at path without a size limit.
func DecodeFile(path string) (*image.RGBA, error) {
	return Decoder{}.DecodeFile(path)
}

// DecodeConfigFile opens the P6 image at path and reads only its header.
func (dec Decoder) DecodeConfigFile(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfigFile opens the P6 image at path and reads only its header.
func DecodeConfigFile(path string) (image.Config, error) {
	return Decoder{}.DecodeConfigFile(path)
}

// DecodeConfig returns the color model and dimensions of a P6 image without
// decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      d.width,
		Height:     d.height,
	}, nil
}
