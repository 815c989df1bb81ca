package session

import "time"

// Meter measures an informational frames per second estimate, frames
// processed since the last reset divided by elapsed wall time.  It has no
// influence on tracking or calibration
type Meter struct {
	start  time.Time
	frames int
}

// NewMeter returns a stopped Meter, Start must be called before use
func NewMeter() *Meter {
	return &Meter{}
}

// Start begins a fresh measurement, discarding any previous one
func (m *Meter) Start() {
	m.start = time.Now()
	m.frames = 0
}

// Update records one processed frame
func (m *Meter) Update() {
	m.frames++
}

// Frames returns the number of frames recorded since the last Start
func (m *Meter) Frames() int {
	return m.frames
}

// FPS returns the current frames per second estimate.  It is zero before
// the first Start or before any time has elapsed
func (m *Meter) FPS() float64 {

	if m.start.IsZero() {
		return 0
	}

	elapsed := time.Since(m.start).Seconds()

	if elapsed <= 0 {
		return 0
	}

	return float64(m.frames) / elapsed
}
