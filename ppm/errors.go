package ppm

import (
	"errors"
	"fmt"
)

var (
	// ErrFileOpen is matched by any failure to open the source file.
	ErrFileOpen = errors.New("ppm: cannot open file")
	// ErrUnexpectedEOF is returned when the input ends while a header line
	// is still expected.
	ErrUnexpectedEOF = errors.New("ppm: unexpected EOF in header")
	// ErrInvalidFormatTag is returned when the first header line is not
	// exactly "P6".
	ErrInvalidFormatTag = errors.New("ppm: invalid format tag")
	// ErrDimensionParse is returned when the second header line is not
	// exactly two unsigned integers.
	ErrDimensionParse = errors.New("ppm: cannot parse dimensions")
	// ErrUnsupportedMaxColor is returned for any maximum color value other
	// than 255.
	ErrUnsupportedMaxColor = errors.New("ppm: unsupported max color value")
	// ErrTruncatedPixelData is returned when fewer than width * height * 3
	// bytes follow the header.
	ErrTruncatedPixelData = errors.New("ppm: truncated pixel data")
	// ErrAllocation is returned when the pixel buffer cannot be allocated,
	// either because its size overflows or exceeds the decoder's limit.
	ErrAllocation = errors.New("ppm: cannot allocate pixel buffer")
)

// OpenError records a failure to open a PPM file.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("ppm: cannot open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFileOpen.
func (e *OpenError) Is(target error) bool {
	return target == ErrFileOpen
}
