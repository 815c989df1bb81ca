/*
Package calib converts pixel coordinates into operator calibrated ground
truth coordinates.

The operator marks a rectangle on the video frame and supplies the real
world coordinates of its two opposite corners.  From those two point pairs
a per axis affine transform is derived which maps any pixel coordinate to
its ground truth equivalent.  The transform is strictly per axis, there is
no rotation or shear, so it assumes the capture plane is parallel to the
tracked plane.
*/
package calib

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDegenerateRect is returned when the two calibration corners describe a
// rectangle with zero width or height on either axis
var ErrDegenerateRect = errors.New("calibration rectangle has zero width or height")

// Transform holds the reference point pair and per axis scale factor used
// to map pixel coordinates to ground truth coordinates with
// truth = (pixel - refPixel) * scale + refTruth
type Transform struct {
	// refPixel is the pixel coordinate of the calibration reference corner
	refPixel r2.Vec
	// refTruth is the ground truth coordinate of the reference corner
	refTruth r2.Vec
	// scale maps a one pixel delta to a ground truth delta per axis
	scale r2.Vec
}

// NewTransform returns a Transform with identity defaults, the reference
// corner is (0,0) in both spaces and the scale is 1:1
func NewTransform() *Transform {
	return &Transform{
		scale: r2.Vec{X: 1, Y: 1},
	}
}

// Apply maps a pixel coordinate to its ground truth coordinate.  Each axis
// is computed independently and the input is never modified
func (t *Transform) Apply(px r2.Vec) r2.Vec {
	return r2.Vec{
		X: (px.X-t.refPixel.X)*t.scale.X + t.refTruth.X,
		Y: (px.Y-t.refPixel.Y)*t.scale.Y + t.refTruth.Y,
	}
}

// Scale returns the current per axis pixel to ground truth ratio
func (t *Transform) Scale() r2.Vec {
	return t.scale
}

// Configure replaces the transform from two corner point pairs.  aPixel and
// bPixel are opposite corners of the operator drawn calibration rectangle in
// pixel space, aTruth and bTruth the ground truth coordinates the operator
// reported for them.  Corners given in reverse order are normalised per axis
// by swapping the pixel and truth values of that axis together, so the
// derived scale is the same whichever way the rectangle was drawn.  A
// rectangle with zero width or height returns ErrDegenerateRect and leaves
// the existing transform untouched
func (t *Transform) Configure(aPixel, aTruth, bPixel, bTruth r2.Vec) error {

	// normalise corner order so a is the pixel space minimum on both axis
	if bPixel.X < aPixel.X {
		aPixel.X, bPixel.X = bPixel.X, aPixel.X
		aTruth.X, bTruth.X = bTruth.X, aTruth.X
	}

	if bPixel.Y < aPixel.Y {
		aPixel.Y, bPixel.Y = bPixel.Y, aPixel.Y
		aTruth.Y, bTruth.Y = bTruth.Y, aTruth.Y
	}

	width := bPixel.X - aPixel.X
	height := bPixel.Y - aPixel.Y

	if width == 0 || height == 0 {
		return ErrDegenerateRect
	}

	t.refPixel = aPixel
	t.refTruth = aTruth
	t.scale = r2.Vec{
		X: (bTruth.X - aTruth.X) / width,
		Y: (bTruth.Y - aTruth.Y) / height,
	}

	return nil
}
