// Package render draws the tracking overlays on video frames.  It is pure
// presentation, nothing here feeds back into tracking or calibration.
package render

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/swdee/go-mocap/track"
)

// TrackBoxes renders the bounding box, center point and id label for every
// tracked object.  Boxes are given in track insertion order so the slice
// index is the track id
func TrackBoxes(img *gocv.Mat, boxes []track.Rect, font Font, lineThickness int) {

	for id, box := range boxes {

		useClr := TrackColor(id)

		gocv.Rectangle(img, box.ToImage(), useClr, lineThickness)
		gocv.Circle(img, box.Center(), 2, useClr, 2)

		// id label sits just outside the bottom right corner of the box
		labelPos := image.Pt(box.BRX()+font.Margin, box.BRY()+font.Margin)

		gocv.PutText(img, fmt.Sprintf("%d", id), labelPos,
			font.Face, font.Scale, font.Color, font.Thickness)
	}
}

// CalibrationBox renders the operator drawn calibration rectangle
func CalibrationBox(img *gocv.Mat, box track.Rect, lineThickness int) {
	gocv.Rectangle(img, box.ToImage(), Red, lineThickness)
}

// CornerLabel renders a calibration corner label such as "X_0" at the given
// anchor point, used while prompting the operator for that corner's ground
// truth value
func CornerLabel(img *gocv.Mat, label string, anchor image.Point, font Font) {
	gocv.PutText(img, label, anchor, font.Face, font.Scale, font.Color,
		font.Thickness+1)
}
