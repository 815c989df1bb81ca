/*
Package session ties the tracking pipeline together.  It owns the
calibration transform and track registry, drives one frame at a time
through the processor and interprets operator commands.

Everything runs single threaded, one frame is fully acquired, tracked,
calibrated, reported and displayed before the next is acquired.
*/
package session

import (
	"fmt"
	"image"
	"log"

	"github.com/google/uuid"
	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/swdee/go-mocap/calib"
	"github.com/swdee/go-mocap/render"
	"github.com/swdee/go-mocap/track"
	"github.com/swdee/go-mocap/video"
)

// operator command keys, checked once per frame after display
const (
	keyAddRegion = 's'
	keyCalibrate = 'c'
	keyQuit      = 'q'
	keyEscape    = 27
)

// Config holds the session settings
type Config struct {
	// TrackerName is the tracking algorithm selected at startup
	TrackerName string
	// DisplayWidth frames are resized to before tracking and display
	DisplayWidth int
	// TrailLength is the number of center points kept per track for
	// drawing trails, 0 disables trails
	TrailLength int
	// WindowTitle of the display window
	WindowTitle string
}

// DefaultConfig returns default session settings
func DefaultConfig() Config {
	return Config{
		TrackerName:  "kcf",
		DisplayWidth: 500,
		TrailLength:  48,
		WindowTitle:  "Frame",
	}
}

// Controller drives the tracking session.  It starts idle, passing frames
// through untouched, and switches to tracking once the operator marks the
// first region of interest.  Tracks are never removed so there is no way
// back to idle
type Controller struct {
	cfg      Config
	id       uuid.UUID
	source   *video.Source
	registry *track.Registry
	cal      *calib.Transform
	meter    *Meter
	trail    *track.Trail
	reporter Reporter
	prompter Prompter
	window   *gocv.Window
	resizer  *video.Resizer
	font     render.Font
	tracking bool
}

// NewController returns a Controller reading frames from source.  factory
// is the tracking algorithm resolved at startup, reporter receives the per
// frame reports and prompter gathers calibration input from the operator
func NewController(cfg Config, source *video.Source,
	factory track.CapabilityFactory, reporter Reporter,
	prompter Prompter) *Controller {

	return &Controller{
		cfg:      cfg,
		id:       uuid.New(),
		source:   source,
		registry: track.NewRegistry(factory),
		cal:      calib.NewTransform(),
		meter:    NewMeter(),
		trail:    track.NewTrail(cfg.TrailLength),
		reporter: reporter,
		prompter: prompter,
		font:     render.DefaultFont(),
	}
}

// Run executes the session loop until the operator quits or the frame
// source reaches the end of stream.  End of stream is the expected
// termination condition and returns nil
func (c *Controller) Run() error {

	log.Printf("Starting capture session %s, tracker %s", c.id,
		c.cfg.TrackerName)

	c.window = gocv.NewWindow(c.cfg.WindowTitle)
	defer c.window.Close()
	defer c.registry.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	display := gocv.NewMat()
	defer display.Close()

	for {
		if !c.source.NextFrame(&frame) {
			// end of stream, terminate normally
			return nil
		}

		// create the resizer once the source frame size is known
		if c.resizer == nil {
			c.resizer = video.NewResizer(frame.Cols(), frame.Rows(),
				c.cfg.DisplayWidth)
		}

		c.resizer.Resize(frame, &display)

		if c.tracking {
			rep := Process(display, c.registry, c.cal)
			c.reporter.Report(rep)
			c.annotate(&display, rep)
			c.meter.Update()
		}

		c.window.IMShow(display)

		switch key := c.window.WaitKey(1); key {
		case keyAddRegion:
			c.addRegion(display)

		case keyCalibrate:
			c.calibrate(display)

		case keyQuit, keyEscape:
			return nil
		}
	}
}

// annotate draws the tracking overlays on the display frame
func (c *Controller) annotate(img *gocv.Mat, rep Report) {

	render.TrackBoxes(img, rep.Boxes, c.font, 2)

	if c.cfg.TrailLength > 0 {
		for id, box := range rep.Boxes {
			c.trail.Add(id, box.Center())
		}

		render.Trails(img, c.trail, len(rep.Boxes), render.DefaultTrailStyle())
	}

	success := "Yes"
	if !rep.AllTracked {
		success = "No"
	}

	info := []render.InfoLine{
		{Key: "Tracker", Value: c.cfg.TrackerName},
		{Key: "Success", Value: success},
		{Key: "FPS", Value: fmt.Sprintf("%.2f", c.meter.FPS())},
	}

	if len(rep.Overlaps) > 0 {
		info = append(info, render.InfoLine{
			Key:   "Occlusions",
			Value: fmt.Sprintf("%d", len(rep.Overlaps)),
		})
	}

	render.Info(img, info, render.InfoFont())
}

// addRegion lets the operator mark a new region of interest to track
func (c *Controller) addRegion(frame gocv.Mat) {

	roi := c.window.SelectROI(frame)
	box := track.RectFromImage(roi)

	if box.Empty() {
		log.Printf("Empty region selection ignored")
		return
	}

	tr, err := c.registry.Add(frame, box)

	if err != nil {
		log.Printf("Error adding track: %v", err)
		return
	}

	log.Printf("Tracking object %d at %v", tr.ID(), box)

	// the first track transitions the session into tracking and starts
	// the FPS measurement
	if !c.tracking {
		c.tracking = true
		c.meter.Start()
	}
}

// calibrate runs the operator calibration gesture, marking a reference
// rectangle and supplying the ground truth coordinates of its two opposite
// corners.  A degenerate rectangle or invalid numeric input aborts the
// attempt and leaves the previous calibration untouched
func (c *Controller) calibrate(frame gocv.Mat) {

	roi := c.window.SelectROI(frame)
	box := track.RectFromImage(roi)

	if box.Empty() {
		log.Printf("Degenerate calibration rectangle, calibration aborted")
		return
	}

	render.CalibrationBox(&frame, box, 2)

	aTruth, bTruth, err := c.gatherTruthCorners(frame, box)

	if err != nil {
		log.Printf("Calibration aborted: %v", err)
		return
	}

	err = c.cal.Configure(
		r2.Vec{X: float64(box.TLX()), Y: float64(box.TLY())}, aTruth,
		r2.Vec{X: float64(box.BRX()), Y: float64(box.BRY())}, bTruth,
	)

	if err != nil {
		log.Printf("Calibration aborted: %v", err)
		return
	}

	scale := c.cal.Scale()
	log.Printf("Calibrated, scale (%.6f, %.6f)", scale.X, scale.Y)

	c.meter.Start()
}

// cornerPrompt describes one of the four ground truth values gathered
// during calibration
type cornerPrompt struct {
	label       string
	prompt      string
	bottomRight bool
}

var cornerPrompts = [4]cornerPrompt{
	{"X_0", "Enter x coordinate of marked corner: ", false},
	{"Y_0", "Enter y coordinate of marked corner: ", false},
	{"X_1", "Enter x coordinate of marked corner: ", true},
	{"Y_1", "Enter y coordinate of marked corner: ", true},
}

// gatherTruthCorners prompts the operator for the ground truth coordinates
// of the calibration rectangle's two opposite corners.  Each value's corner
// label is shown overlaid on the current frame before the value is
// requested
func (c *Controller) gatherTruthCorners(frame gocv.Mat,
	box track.Rect) (aTruth, bTruth r2.Vec, err error) {

	var values [4]float64

	for i, p := range cornerPrompts {

		anchor := image.Pt(box.TLX()-c.font.Margin, box.TLY()-c.font.Margin)

		if p.bottomRight {
			anchor = image.Pt(box.BRX()+c.font.Margin, box.BRY()+c.font.Margin)
		}

		overlay := frame.Clone()
		render.CornerLabel(&overlay, p.label, anchor, c.font)
		c.window.IMShow(overlay)
		c.window.WaitKey(1)
		overlay.Close()

		values[i], err = c.prompter.Float(p.prompt)

		if err != nil {
			return aTruth, bTruth, err
		}
	}

	aTruth = r2.Vec{X: values[0], Y: values[1]}
	bTruth = r2.Vec{X: values[2], Y: values[3]}

	return aTruth, bTruth, nil
}
