/*
Package video acquires frames from a camera or video file and scales them
to the session's display size.
*/
package video

import (
	"strconv"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Source wraps a capture device or video file and yields sequential raster
// frames until the end of stream
type Source struct {
	capture *gocv.VideoCapture
	desc    string
}

// Open opens a video source.  src is either a webcam device id such as "0"
// or the path to a video file
func Open(src string) (*Source, error) {

	var capture *gocv.VideoCapture
	var err error

	if id, convErr := strconv.Atoi(src); convErr == nil {
		capture, err = gocv.VideoCaptureDevice(id)
	} else {
		capture, err = gocv.VideoCaptureFile(src)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "opening video source %q", src)
	}

	return &Source{
		capture: capture,
		desc:    src,
	}, nil
}

// NextFrame reads the next frame into dst.  It returns false at the end of
// the stream, which is the expected termination condition and not an error
func (s *Source) NextFrame(dst *gocv.Mat) bool {

	if ok := s.capture.Read(dst); !ok {
		return false
	}

	return !dst.Empty()
}

// String returns the source description given to Open
func (s *Source) String() string {
	return s.desc
}

// Close releases the capture device
func (s *Source) Close() error {
	return s.capture.Close()
}
