package session

import (
	"fmt"
	"io"
)

// Reporter consumes the per frame report for display or printing
type Reporter interface {
	Report(rep Report)
}

// ConsoleReporter prints each frame report as text, one line per object
// and one line per object pair
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter returns a Reporter writing to w
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// Report prints the calibrated positions and pairwise distances
func (c *ConsoleReporter) Report(rep Report) {

	fmt.Fprintln(c.w)

	for _, p := range rep.Positions {
		fmt.Fprintf(c.w, "Object %d, (%.4f, %.4f)\n", p.TrackID, p.Truth.X, p.Truth.Y)
	}

	for _, d := range rep.Distances {
		fmt.Fprintf(c.w, "Distance %d to %d, (%.4f, %.4f)\n", d.I, d.J, d.Delta.X, d.Delta.Y)
	}
}
