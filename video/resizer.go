package video

import (
	"image"

	"gocv.io/x/gocv"
)

// Resizer scales incoming frames down to a fixed display width whilst
// maintaining the source aspect ratio
type Resizer struct {
	// srcWidth is the width of the source frames
	srcWidth int
	// srcHeight is the height of the source frames
	srcHeight int
	// destWidth is the display width to scale to
	destWidth int
	// destHeight is derived from destWidth and the source aspect ratio
	destHeight int
}

// NewResizer returns a resizer scaling srcWidth x srcHeight frames to the
// given display width
func NewResizer(srcWidth, srcHeight, destWidth int) *Resizer {
	r := &Resizer{
		srcWidth:  srcWidth,
		srcHeight: srcHeight,
		destWidth: destWidth,
	}

	// precalculate scaling dimensions
	r.preCalc()

	return r
}

// preCalc the destination height preserving the source aspect ratio
func (r *Resizer) preCalc() {
	scale := float64(r.destWidth) / float64(r.srcWidth)
	r.destHeight = int(float64(r.srcHeight) * scale)
}

// Resize scales the source frame into dest at display size
func (r *Resizer) Resize(src gocv.Mat, dest *gocv.Mat) {
	gocv.Resize(src, dest, image.Pt(r.destWidth, r.destHeight),
		0, 0, gocv.InterpolationArea)
}

// Width returns the display width frames are scaled to
func (r *Resizer) Width() int {
	return r.destWidth
}

// Height returns the display height frames are scaled to
func (r *Resizer) Height() int {
	return r.destHeight
}
