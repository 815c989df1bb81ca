package render

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// InfoLine is one key/value entry of the session info overlay
type InfoLine struct {
	Key   string
	Value string
}

// Info renders the session info lines stacked up from the bottom left
// corner of the frame
func Info(img *gocv.Mat, lines []InfoLine, font Font) {

	height := img.Rows()

	for i, line := range lines {

		text := fmt.Sprintf("%s: %s", line.Key, line.Value)
		pos := image.Pt(10, height-((i*20)+20))

		gocv.PutText(img, text, pos, font.Face, font.Scale, font.Color,
			font.Thickness)
	}
}
