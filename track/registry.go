/*
Package track manages the set of objects tracked across video frames.

Each tracked object is a Track owning its bounding box and one instance of
the selected visual tracking algorithm.  Tracks are held by a Registry in
insertion order, the insertion index doubles as the stable track id since
tracks are never removed during a session.
*/
package track

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Track is one tracked object.  Its bounding box is owned exclusively by
// the Track and overwritten every frame by the tracking capability
type Track struct {
	// id is assigned at creation in monotonically increasing order
	// starting at 0 and is never reused within a session
	id int
	// box is the current bounding box in pixel coordinates
	box Rect
	// capability is the tracking algorithm instance seeded for this track
	capability Capability
}

// ID returns the stable id of the track, equal to its insertion order
func (t *Track) ID() int {
	return t.id
}

// Box returns the bounding box from the most recent update.  It is only
// valid for the current frame after Registry.UpdateAll has been called
func (t *Track) Box() Rect {
	return t.box
}

// Registry owns the set of tracked objects.  The collection grows and
// never shrinks, there is no removal operation
type Registry struct {
	factory CapabilityFactory
	tracks  []*Track
}

// NewRegistry returns an empty Registry.  factory constructs the tracking
// capability for each added track and is resolved once at session start
func NewRegistry(factory CapabilityFactory) *Registry {
	return &Registry{
		factory: factory,
	}
}

// Add creates a new Track seeded on the given frame with the initial
// bounding box and assigns it the next sequential id.  A zero area box is
// rejected
func (g *Registry) Add(frame gocv.Mat, box Rect) (*Track, error) {

	if box.Empty() {
		return nil, errors.Errorf("initial region %v has zero area", box)
	}

	capability := g.factory()

	if err := capability.Seed(frame, box); err != nil {
		return nil, errors.Wrap(err, "seeding track")
	}

	t := &Track{
		id:         len(g.tracks),
		box:        box,
		capability: capability,
	}

	g.tracks = append(g.tracks, t)

	return t, nil
}

// UpdateAll advances every track by one frame in insertion order and
// returns the updated bounding boxes in the same order.  The bool is the
// logical AND of every individual tracker success flag.  A failed tracker
// does not halt or remove other tracks, its last known box is carried
// forward so a box is always returned for every track.  With zero tracks
// the result is vacuous success and an empty sequence
func (g *Registry) UpdateAll(frame gocv.Mat) (bool, []Rect) {

	allTracked := true
	boxes := make([]Rect, 0, len(g.tracks))

	for _, t := range g.tracks {

		box, ok := t.capability.Update(frame)

		if ok {
			t.box = box
		} else {
			// keep the stale box from the last successful update
			allTracked = false
		}

		boxes = append(boxes, t.box)
	}

	return allTracked, boxes
}

// Len returns the number of tracked objects
func (g *Registry) Len() int {
	return len(g.tracks)
}

// Tracks returns the tracked objects in insertion order
func (g *Registry) Tracks() []*Track {
	return g.tracks
}

// Close frees the tracking capability of every track
func (g *Registry) Close() error {

	var firstErr error

	for _, t := range g.tracks {
		if err := t.capability.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
