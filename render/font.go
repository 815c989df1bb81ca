package render

import (
	"gocv.io/x/gocv"
	"image/color"
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Margin is the padding in pixels placed between text and the box
	// corner it labels
	Margin int
}

// DefaultFont returns default font settings for track id and corner labels
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     Red,
		Thickness: 1,
		LineType:  gocv.LineAA,
		Margin:    4,
	}
}

// InfoFont returns the larger font used for the session info overlay
func InfoFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.6,
		Color:     Red,
		Thickness: 2,
		LineType:  gocv.LineAA,
		Margin:    4,
	}
}
