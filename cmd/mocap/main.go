/*
mocap performs live 2D motion capture on a video stream.

The operator marks regions of interest to track, optionally calibrates the
pixel to real world mapping by drawing a reference rectangle and entering
the coordinates of its corners, and receives per frame object positions
and pairwise distances on stdout.
*/
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/swdee/go-mocap/session"
	"github.com/swdee/go-mocap/track"
	"github.com/swdee/go-mocap/video"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	vidSrc := flag.String("v", "0", "Path to input video file or webcam ID")
	trackerName := flag.String("t", "kcf",
		"Object tracker type, one of: "+strings.Join(track.Algorithms(), ", "))
	width := flag.Int("w", 500, "Display width video frames are resized to")
	trailLen := flag.Int("trail", 48,
		"Number of center points kept for drawing track trails, 0 disables")

	flag.Parse()

	factory, err := track.NewCapabilityFactory(*trackerName)

	if err != nil {
		log.Fatalf("Error selecting tracker: %v", err)
	}

	log.Println("Loading video...")

	source, err := video.Open(*vidSrc)

	if err != nil {
		log.Fatalf("Error opening video source: %v", err)
	}

	defer source.Close()

	log.Println("- Press C to calibrate coordinates")
	log.Println("- Press S to add an object ROI")
	log.Println("- Press Q to quit")

	cfg := session.DefaultConfig()
	cfg.TrackerName = strings.ToLower(*trackerName)
	cfg.DisplayWidth = *width
	cfg.TrailLength = *trailLen

	ctrl := session.NewController(cfg, source, factory,
		session.NewConsoleReporter(os.Stdout),
		session.NewConsolePrompter(os.Stdin, os.Stdout))

	if err := ctrl.Run(); err != nil {
		log.Fatalf("Session error: %v", err)
	}
}
