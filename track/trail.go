package track

import "image"

// history holds the recent center points of one track
type history struct {
	points []image.Point
}

// Trail keeps a bounded history of bounding box center points per track id,
// used for drawing the path an object has moved along
type Trail struct {
	// size is the maximum number of most recent points to keep per track
	size int
	// history of tracked center points keyed by track id
	history map[int]*history
}

// NewTrail returns a new trail history instance.  Size is the maximum
// length of trail to maintain per track
func NewTrail(size int) *Trail {
	return &Trail{
		size:    size,
		history: make(map[int]*history),
	}
}

// Reset clears all history
func (t *Trail) Reset() {
	t.history = make(map[int]*history)
}

// Add records the center point of a track's bounding box for this frame
func (t *Trail) Add(id int, point image.Point) {

	if _, exists := t.history[id]; !exists {
		t.history[id] = &history{}
	}

	h := t.history[id]
	h.points = append(h.points, point)

	// drop oldest point once history is exceeded
	if len(h.points) > t.size {
		h.points = h.points[1:]
	}
}

// Points gets the center point history for a specific track id
func (t *Trail) Points(id int) []image.Point {

	if h, exists := t.history[id]; exists {
		return h.points
	}

	// no history yet
	return nil
}
