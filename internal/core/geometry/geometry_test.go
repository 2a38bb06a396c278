package geometry

import (
	"fmt"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestMovePointAlongX(t *testing.T) {
	anchor := Point{X: 10, Y: 0}
	mover := Point{X: 3, Y: 0}

	result, ok := MovePoint(anchor, mover, 5)
	if !ok {
		t.Fatal("Expected mover to be pulled")
	}
	if result.X != 5 || result.Y != 0 {
		t.Errorf("Expected (5, 0), got %v", result)
	}
}

func TestMovePointAlongY(t *testing.T) {
	anchor := Point{X: 0, Y: 10}
	mover := Point{X: 0, Y: 3}

	result, ok := MovePoint(anchor, mover, 5)
	if !ok {
		t.Fatal("Expected mover to be pulled")
	}
	if result.X != 0 || result.Y != 5 {
		t.Errorf("Expected (0, 5), got %v", result)
	}
}

func TestMovePointAtAngle(t *testing.T) {
	anchor := Point{X: 3, Y: 3}
	mover := Point{X: 0, Y: 5}

	result, ok := MovePoint(anchor, mover, 1.8)
	if !ok {
		t.Fatal("Expected mover to be pulled")
	}
	if got := fmt.Sprintf("%.3f", result.X); got != "1.502" {
		t.Errorf("Expected x 1.502, got %s", got)
	}
	if got := fmt.Sprintf("%.3f", result.Y); got != "3.998" {
		t.Errorf("Expected y 3.998, got %s", got)
	}
}

func TestMovePointWithinRadius(t *testing.T) {
	cases := []struct {
		anchor, mover Point
		radius        float64
	}{
		{Point{3, 3}, Point{0, 5}, 100},
		{Point{0, 0}, Point{3, 4}, 5}, // exactly on the leash
		{Point{1, 1}, Point{1, 1}, 0}, // coincident points
		{Point{-2, 7}, Point{-2, 7}, 32},
	}

	for _, c := range cases {
		if p, ok := MovePoint(c.anchor, c.mover, c.radius); ok {
			t.Errorf("Expected no movement for %v -> %v (r=%g), got %v", c.anchor, c.mover, c.radius, p)
		}
	}
}

func TestMovePointLandsOnLeash(t *testing.T) {
	anchors := []Point{{0, 0}, {10, -4}, {-3.5, 12}, {100, 100}}
	movers := []Point{{50, 0}, {-20, 33}, {7, -7}, {0.25, 99}}
	radii := []float64{0.5, 4, 32, 1.8}

	for _, a := range anchors {
		for _, m := range movers {
			for _, r := range radii {
				before := Distance(a, m)
				result, ok := MovePoint(a, m, r)
				if before <= r {
					if ok {
						t.Errorf("Expected no movement for %v -> %v (r=%g)", a, m, r)
					}
					continue
				}
				if !ok {
					t.Fatalf("Expected movement for %v -> %v (r=%g)", a, m, r)
				}

				if d := Distance(a, result); math.Abs(d-r) > epsilon {
					t.Errorf("Expected distance %g from anchor, got %g", r, d)
				}

				// Collinear and strictly between anchor and mover
				if d := Distance(a, result) + Distance(result, m); math.Abs(d-before) > 1e-7 {
					t.Errorf("Expected %v to lie on segment %v -> %v", result, a, m)
				}
				if Distance(result, m) <= 0 || Distance(a, result) >= before {
					t.Errorf("Expected %v strictly between %v and %v", result, a, m)
				}
			}
		}
	}
}

func TestPointHeading(t *testing.T) {
	// Heading from mover towards anchor on the x axis
	if h := PointHeading(Point{10, 0}, Point{0, 0}); h != 0 {
		t.Errorf("Expected heading 0, got %g", h)
	}

	// 45 degrees
	if h := PointHeading(Point{1, 1}, Point{0, 0}); math.Abs(h-math.Pi/4) > epsilon {
		t.Errorf("Expected heading π/4, got %g", h)
	}

	// The ratio arctangent cannot tell opposite directions apart
	forward := PointHeading(Point{1, 1}, Point{0, 0})
	backward := PointHeading(Point{-1, -1}, Point{0, 0})
	if forward != backward {
		t.Errorf("Expected opposite directions to share a heading, got %g and %g", forward, backward)
	}

	// Vertical alignment degenerates to ±π/2
	if h := PointHeading(Point{0, 5}, Point{0, 0}); math.Abs(h-math.Pi/2) > epsilon {
		t.Errorf("Expected heading π/2, got %g", h)
	}
	if h := PointHeading(Point{0, -5}, Point{0, 0}); math.Abs(h+math.Pi/2) > epsilon {
		t.Errorf("Expected heading -π/2, got %g", h)
	}
}

func TestNewSidesArePerpendicular(t *testing.T) {
	origin := Point{X: 40, Y: -12}
	for _, heading := range []float64{0, math.Pi / 6, math.Pi / 2, 2.5, -1} {
		sides := NewSides(origin, 8, heading)

		if d := Distance(origin, sides.Left); math.Abs(d-8) > epsilon {
			t.Errorf("Expected left side 8 from origin, got %g", d)
		}
		if d := Distance(origin, sides.Right); math.Abs(d-8) > epsilon {
			t.Errorf("Expected right side 8 from origin, got %g", d)
		}

		// Left/right are mirrored through the origin
		mid := sides.Left.Add(sides.Right).Scale(0.5)
		if Distance(mid, origin) > epsilon {
			t.Errorf("Expected sides centered on %v, got midpoint %v", origin, mid)
		}

		// And orthogonal to the heading
		offset := sides.Right.Sub(origin)
		dot := offset.X*math.Cos(heading) + offset.Y*math.Sin(heading)
		if math.Abs(dot) > epsilon {
			t.Errorf("Expected side offset orthogonal to heading %g, dot=%g", heading, dot)
		}
	}
}

func TestNewSidesZeroHeading(t *testing.T) {
	sides := NewSides(Point{0, 0}, 2, 0)
	if math.Abs(sides.Left.X) > epsilon || math.Abs(sides.Left.Y+2) > epsilon {
		t.Errorf("Expected left (0, -2), got %v", sides.Left)
	}
	if math.Abs(sides.Right.X) > epsilon || math.Abs(sides.Right.Y-2) > epsilon {
		t.Errorf("Expected right (0, 2), got %v", sides.Right)
	}
}

func TestBoundingRect(t *testing.T) {
	rect := BoundingRect(Point{X: 10, Y: 20}, 4)
	want := [4]float64{6, 16, 14, 24}
	if rect != want {
		t.Errorf("Expected %v, got %v", want, rect)
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	if !PointInPolygon(Point{5, 5}, square) {
		t.Error("Expected center to be inside square")
	}
	if PointInPolygon(Point{15, 5}, square) {
		t.Error("Expected point to the right to be outside square")
	}
	if PointInPolygon(Point{5, 5}, nil) {
		t.Error("Expected empty polygon to contain nothing")
	}
}

func TestPointString(t *testing.T) {
	if got := (Point{X: 1.5, Y: -2}).String(); got != "(1.5, -2)" {
		t.Errorf("Expected (1.5, -2), got %s", got)
	}
}
