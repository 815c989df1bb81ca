package track

import (
	"fmt"
	"image"
)

// Rect represents an axis aligned bounding box in pixel coordinates stored
// in Tlwh (top left x, top left y, width, height) form.  Coordinates are
// integers as the underlying OpenCV trackers report whole pixel rectangles
type Rect struct {
	X, Y, W, H int
}

// NewRect creates a new Rect with given top left corner and dimensions
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromImage creates a Rect from the stdlib image rectangle form used
// by gocv
func RectFromImage(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// ToImage converts the Rect to the stdlib image rectangle form
func (r Rect) ToImage() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// TLX returns the top left x coordinate of the rectangle
func (r Rect) TLX() int {
	return r.X
}

// TLY returns the top left y coordinate of the rectangle
func (r Rect) TLY() int {
	return r.Y
}

// BRX returns the bottom right x coordinate of the rectangle
func (r Rect) BRX() int {
	return r.X + r.W
}

// BRY returns the bottom right y coordinate of the rectangle
func (r Rect) BRY() int {
	return r.Y + r.H
}

// Center returns the midpoint of the box.  Width and height are halved
// using integer floor division
func (r Rect) Center() image.Point {
	return image.Pt(r.X+r.W/2, r.Y+r.H/2)
}

// Empty reports whether the box has zero area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// String implements the Stringer interface
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}
