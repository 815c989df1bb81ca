package video

import (
	"testing"
)

func TestResizerDimensions(t *testing.T) {

	tests := []struct {
		srcWidth       int
		srcHeight      int
		destWidth      int
		expectedHeight int
	}{
		{1000, 800, 500, 400},
		{1920, 1080, 500, 281},
		{640, 480, 500, 375},
		// upscaling a smaller source is allowed
		{320, 240, 500, 375},
	}

	for _, tc := range tests {
		resizer := NewResizer(tc.srcWidth, tc.srcHeight, tc.destWidth)

		if resizer.Width() != tc.destWidth {
			t.Errorf("src (%d, %d): expected width %d, got %d",
				tc.srcWidth, tc.srcHeight, tc.destWidth, resizer.Width())
		}

		if resizer.Height() != tc.expectedHeight {
			t.Errorf("src (%d, %d): expected height %d, got %d",
				tc.srcWidth, tc.srcHeight, tc.expectedHeight, resizer.Height())
		}
	}
}
