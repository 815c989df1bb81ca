package track

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
	"gocv.io/x/gocv/contrib"
)

// Capability is a single visual tracking algorithm instance bound to one
// tracked region.  It is seeded once with the frame and initial bounding
// box, then advanced one frame at a time
type Capability interface {
	// Seed initialises the algorithm with the region of the frame to follow
	Seed(frame gocv.Mat, box Rect) error
	// Update advances the algorithm by one frame and returns the updated
	// bounding box.  The bool reports whether the tracker considers the
	// update successful, on failure the returned box may be stale or
	// degraded
	Update(frame gocv.Mat) (Rect, bool)
	// Close frees resources held by the algorithm
	Close() error
}

// CapabilityFactory constructs a new Capability instance for each added
// track
type CapabilityFactory func() Capability

// algorithms maps tracking algorithm names to their gocv constructors
var algorithms = map[string]func() gocv.Tracker{
	"mil":  func() gocv.Tracker { return gocv.NewTrackerMIL() },
	"kcf":  func() gocv.Tracker { return contrib.NewTrackerKCF() },
	"csrt": func() gocv.Tracker { return contrib.NewTrackerCSRT() },
}

// Algorithms returns the sorted names of the available tracking algorithms
func Algorithms() []string {

	names := make([]string, 0, len(algorithms))

	for name := range algorithms {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// NewCapabilityFactory resolves a tracking algorithm by name.  The lookup
// happens once at session start, each call of the returned factory creates
// an independent tracker instance
func NewCapabilityFactory(name string) (CapabilityFactory, error) {

	create, ok := algorithms[strings.ToLower(name)]

	if !ok {
		return nil, errors.Errorf("unknown tracking algorithm %q, choose one of: %s",
			name, strings.Join(Algorithms(), ", "))
	}

	return func() Capability {
		return &cvCapability{tracker: create()}
	}, nil
}

// cvCapability adapts a gocv.Tracker to the Capability interface
type cvCapability struct {
	tracker gocv.Tracker
}

// Seed initialises the underlying OpenCV tracker with the region to follow
func (c *cvCapability) Seed(frame gocv.Mat, box Rect) error {

	if !c.tracker.Init(frame, box.ToImage()) {
		return errors.Errorf("tracker failed to initialise with region %v", box)
	}

	return nil
}

// Update advances the underlying OpenCV tracker by one frame
func (c *cvCapability) Update(frame gocv.Mat) (Rect, bool) {
	rect, ok := c.tracker.Update(frame)
	return RectFromImage(rect), ok
}

// Close frees the underlying OpenCV tracker
func (c *cvCapability) Close() error {
	return c.tracker.Close()
}
