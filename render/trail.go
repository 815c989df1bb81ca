package render

import (
	"image/color"

	"gocv.io/x/gocv"

	"github.com/swdee/go-mocap/track"
)

// TrailStyle defines the parameters used for rendering the trail lines
type TrailStyle struct {
	// LineSame defines if the color of the trail line should be the same
	// color as that of the bounding box.  If set to false then use the
	// color specified at LineColor
	LineSame      bool
	LineColor     color.RGBA
	LineThickness int
}

// DefaultTrailStyle returns default trail style settings
func DefaultTrailStyle() TrailStyle {
	return TrailStyle{
		LineSame:      true,
		LineColor:     Yellow,
		LineThickness: 1,
	}
}

// Trails draws the center point history of every tracked object as a
// polyline on the source image
func Trails(img *gocv.Mat, trail *track.Trail, count int, style TrailStyle) {

	for id := 0; id < count; id++ {

		points := trail.Points(id)

		if len(points) < 2 {
			continue
		}

		lineClr := TrackColor(id)

		if !style.LineSame {
			lineClr = style.LineColor
		}

		for i := 1; i < len(points); i++ {
			gocv.Line(img, points[i-1], points[i], lineClr,
				style.LineThickness)
		}
	}
}
