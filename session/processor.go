package session

import (
	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/swdee/go-mocap/calib"
	"github.com/swdee/go-mocap/track"
)

// Process runs one frame through the tracking pipeline.  It advances every
// track, converts the updated box centers to calibrated ground truth
// coordinates and computes the pairwise distances between all objects.
// The function has no side effects beyond the registry's own box updates
func Process(frame gocv.Mat, reg *track.Registry, cal *calib.Transform) Report {

	allTracked, boxes := reg.UpdateAll(frame)
	tracks := reg.Tracks()

	rep := Report{
		Positions:  make([]Position, 0, len(boxes)),
		Boxes:      boxes,
		AllTracked: allTracked,
	}

	for i, box := range boxes {

		center := box.Center()

		truth := cal.Apply(r2.Vec{
			X: float64(center.X),
			Y: float64(center.Y),
		})

		rep.Positions = append(rep.Positions, Position{
			TrackID: tracks[i].ID(),
			Truth:   truth,
		})
	}

	// all unordered pairs (i,j) with i < j, ascending i then ascending j
	for i := 0; i < len(rep.Positions); i++ {
		for j := i + 1; j < len(rep.Positions); j++ {
			rep.Distances = append(rep.Distances, Pair{
				I:     rep.Positions[i].TrackID,
				J:     rep.Positions[j].TrackID,
				Delta: rep.Positions[i].Truth.Sub(rep.Positions[j].Truth),
			})
		}
	}

	rep.Overlaps = overlaps(boxes)

	return rep
}
