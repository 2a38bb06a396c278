// Package geometry provides the 2D primitives the chain simulation is built on:
// points, the leash constraint, the heading estimator and side offsets.
package geometry

import "math"

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// MovePoint keeps mover on a leash of length radius around anchor.
// When mover is already within radius, ok is false and mover stays where it is.
// Otherwise the returned point lies on the segment anchor->mover at exactly
// radius from anchor. The leash only ever shortens, it never pushes mover away.
func MovePoint(anchor, mover Point, radius float64) (Point, bool) {
	dx := mover.X - anchor.X
	dy := mover.Y - anchor.Y

	distance := math.Sqrt(dx*dx + dy*dy)

	// Already inside the leash (this also covers anchor == mover)
	if distance <= radius {
		return Point{}, false
	}

	ratio := radius / distance

	return Point{
		X: anchor.X + dx*ratio,
		Y: anchor.Y + dy*ratio,
	}, true
}

// PointHeading estimates the heading of mover relative to anchor as
// atan(dy/dx). This is a ratio arctangent rather than atan2, so the result
// is only defined up to a half turn and is ±π/2 when dx is zero.
func PointHeading(anchor, mover Point) float64 {
	dx := anchor.X - mover.X
	dy := anchor.Y - mover.Y

	return math.Atan(dy / dx)
}

// NewSides computes the outline points of a segment centered on origin,
// radial away from it on either side of heading.
func NewSides(origin Point, radial, heading float64) Sides {
	left := heading - math.Pi/2
	right := heading + math.Pi/2

	return Sides{
		Left: Point{
			X: origin.X + radial*math.Cos(left),
			Y: origin.Y + radial*math.Sin(left),
		},
		Right: Point{
			X: origin.X + radial*math.Cos(right),
			Y: origin.Y + radial*math.Sin(right),
		},
	}
}

// BoundingRect returns the axis-aligned square around a circle of the given
// radius as [minX, minY, maxX, maxY].
func BoundingRect(p Point, radius float64) [4]float64 {
	return [4]float64{
		p.X - radius,
		p.Y - radius,
		p.X + radius,
		p.Y + radius,
	}
}

// PointInPolygon tests if a point is inside a polygon using ray casting algorithm
func PointInPolygon(point Point, polygon []Point) bool {
	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y

		if ((yi > point.Y) != (yj > point.Y)) &&
			(point.X < (xj-xi)*(point.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}
