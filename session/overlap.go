package session

import (
	"math"

	clipper "github.com/ctessum/go.clipper"

	"github.com/swdee/go-mocap/track"
)

// overlaps computes the pairwise bounding box intersections of the tracked
// boxes.  Pairs with a positive intersection area are reported so the
// display layer can flag objects occluding each other
func overlaps(boxes []track.Rect) []Overlap {

	var out []Overlap

	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {

			area := intersectionArea(boxes[i], boxes[j])

			if area > 0 {
				out = append(out, Overlap{I: i, J: j, Area: area})
			}
		}
	}

	return out
}

// boxPath converts a bounding box to a closed clipper polygon
func boxPath(b track.Rect) clipper.Path {
	return clipper.Path{
		&clipper.IntPoint{X: clipper.CInt(b.TLX()), Y: clipper.CInt(b.TLY())},
		&clipper.IntPoint{X: clipper.CInt(b.BRX()), Y: clipper.CInt(b.TLY())},
		&clipper.IntPoint{X: clipper.CInt(b.BRX()), Y: clipper.CInt(b.BRY())},
		&clipper.IntPoint{X: clipper.CInt(b.TLX()), Y: clipper.CInt(b.BRY())},
	}
}

// intersectionArea clips box a against box b and returns the area of the
// resulting intersection polygon in pixels
func intersectionArea(a, b track.Rect) float64 {

	if a.Empty() || b.Empty() {
		return 0
	}

	c := clipper.NewClipper(clipper.IoNone)
	c.AddPath(boxPath(a), clipper.PtSubject, true)
	c.AddPath(boxPath(b), clipper.PtClip, true)

	solution, ok := c.Execute1(clipper.CtIntersection, clipper.PftNonZero,
		clipper.PftNonZero)

	if !ok {
		return 0
	}

	area := float64(0)

	for _, path := range solution {
		area += math.Abs(clipper.Area(path))
	}

	return area
}
