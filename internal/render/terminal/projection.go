// Package terminal is a full-screen text viewer for the chain built on
// tcell. World coordinates are scaled onto the character grid, so the whole
// world fits the terminal regardless of its size.
package terminal

import (
	"math"

	"chosenoffset.com/serpent/internal/core/geometry"
)

// Projection maps world coordinates onto terminal cells.
type Projection struct {
	Cols, Rows int
	MaxX, MaxY int
}

// NewProjection maps a maxX by maxY world onto a cols by rows grid.
func NewProjection(cols, rows, maxX, maxY int) Projection {
	return Projection{Cols: cols, Rows: rows, MaxX: maxX, MaxY: maxY}
}

// Cell returns the cell containing p. ok is false when p falls outside the
// grid.
func (p Projection) Cell(pt geometry.Point) (x, y int, ok bool) {
	if p.Cols <= 0 || p.Rows <= 0 || p.MaxX <= 0 || p.MaxY <= 0 {
		return 0, 0, false
	}

	fx := math.Floor(pt.X / float64(p.MaxX) * float64(p.Cols))
	fy := math.Floor(pt.Y / float64(p.MaxY) * float64(p.Rows))
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return 0, 0, false
	}
	if fx < 0 || fy < 0 || fx >= float64(p.Cols) || fy >= float64(p.Rows) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}
