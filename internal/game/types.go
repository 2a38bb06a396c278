package game

import "image/color"

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Palette holds the colors used to draw the chain.
type Palette struct {
	Background color.RGBA
	Body       color.RGBA
	Outline    color.RGBA
	Node       color.RGBA
	Left       color.RGBA
	Right      color.RGBA
	Head       color.RGBA
	Highlight  color.RGBA
}

// DefaultPalette returns the standard viewer colors.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{16, 18, 24, 255},
		Body:       color.RGBA{60, 120, 70, 180},
		Outline:    color.RGBA{140, 200, 140, 255},
		Node:       color.RGBA{90, 90, 110, 255},
		Left:       color.RGBA{240, 200, 80, 255},
		Right:      color.RGBA{80, 180, 240, 255},
		Head:       color.RGBA{255, 255, 100, 255},
		Highlight:  color.RGBA{120, 220, 120, 220},
	}
}
