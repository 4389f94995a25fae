/*
Package scale computes where an image is drawn inside a viewport.

The image is scaled uniformly so that it fits the viewport, capped at a
maximum zoom, and centered in both axes. There is no lower bound on the
scale factor so a viewport smaller than the image always shrinks it.
*/
package scale

import (
	"fmt"
	"math"
)

// DefaultMaxScale is the zoom cap used by the viewer.
const DefaultMaxScale = 3.0

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Result is the placement of an image for a single frame.
type Result struct {
	Factor float64
	Rect   Rect
}

func (r Result) String() string {
	return fmt.Sprintf("Scale: %.2fx", r.Factor)
}

// Fit returns the scale factor and centered destination rectangle for an
// image of imageWidth by imageHeight drawn into a viewport of viewWidth by
// viewHeight. The factor is the largest that keeps the image inside the
// viewport but never more than maxScale.
//
// Zero-sized images or viewports are not errors; the resulting rectangle is
// zero-sized or, when both are zero, undefined.
func Fit(imageWidth, imageHeight, viewWidth, viewHeight, maxScale float64) Result {
	factor := math.Min(maxScale, math.Min(viewWidth/imageWidth, viewHeight/imageHeight))

	width := imageWidth * factor
	height := imageHeight * factor

	return Result{
		Factor: factor,
		Rect: Rect{
			X:      (viewWidth - width) / 2,
			Y:      (viewHeight - height) / 2,
			Width:  width,
			Height: height,
		},
	}
}
