package session

import (
	"github.com/swdee/go-mocap/track"
	"gonum.org/v1/gonum/spatial/r2"
)

// Position is the calibrated ground truth location of one tracked object
type Position struct {
	// TrackID is the stable id of the tracked object
	TrackID int
	// Truth is the calibrated coordinate of the bounding box center
	Truth r2.Vec
}

// Pair carries the signed per axis delta between the calibrated positions
// of two tracked objects.  I < J always holds and Delta is position I minus
// position J, so the delta for (j,i) is the negation of the one reported
type Pair struct {
	I, J  int
	Delta r2.Vec
}

// Overlap flags two tracked objects whose bounding boxes intersect on this
// frame, indicating possible occlusion
type Overlap struct {
	I, J int
	// Area is the intersection area in pixels
	Area float64
}

// Report is the structured per frame output of the processing pipeline.
// It is rebuilt from scratch every frame and never persisted
type Report struct {
	// Positions of all tracked objects in track insertion order
	Positions []Position
	// Distances between every unordered pair of objects, ascending i then j
	Distances []Pair
	// Overlaps between tracked bounding boxes, empty when nothing occludes
	Overlaps []Overlap
	// Boxes are the raw pixel bounding boxes for overlay rendering, in the
	// same order as Positions
	Boxes []track.Rect
	// AllTracked is true only if every tracker reported a successful update
	AllTracked bool
}
