// Package chain simulates a segmented body whose head travels under its own
// heading and speed while every trailing node is kept on a fixed-length leash
// behind the one in front of it.
//
// The package is deterministic and single-threaded: a Chain is owned by one
// driver which calls Travel once per tick and reads state between ticks.
package chain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"chosenoffset.com/serpent/internal/core/geometry"
)

// SegmentCount is the number of trailing nodes every chain has.
const SegmentCount = 10

var (
	// ErrSegmentCount is returned when the radial list is not SegmentCount long.
	ErrSegmentCount = errors.New("wrong number of node radials")
	// ErrSpacing is returned for a non-positive or non-finite node distancing.
	ErrSpacing = errors.New("node distancing must be positive and finite")
	// ErrRadial is returned for a negative or non-finite node radial.
	ErrRadial = errors.New("node radial must be non-negative and finite")
	// ErrStart is returned for a non-finite head start position.
	ErrStart = errors.New("start position must be finite")
	// ErrMotion is returned for non-finite motion values or a negative head radius.
	ErrMotion = errors.New("motion values must be finite")
)

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Chain is the aggregate root of the simulation.
type Chain struct {
	head           *Head
	nodeDistancing float64
	maxX, maxY     int
	ticks          int
}

// Create builds a chain with DefaultMotion. See CreateWithMotion.
func Create(x, y, nodeDistancing float64, nodeRadials []float64, maxX, maxY int) (*Chain, error) {
	return CreateWithMotion(x, y, nodeDistancing, nodeRadials, maxX, maxY, DefaultMotion())
}

// CreateWithMotion builds a chain whose head starts at (x, y).
//
// nodeRadials must hold exactly SegmentCount values. Node i is seeded
// (i+1)*nodeDistancing behind the head along its heading, then the chain
// takes one tick so the leash holds before anyone reads it.
func CreateWithMotion(x, y, nodeDistancing float64, nodeRadials []float64, maxX, maxY int, m Motion) (*Chain, error) {
	if len(nodeRadials) != SegmentCount {
		return nil, fmt.Errorf("got %d, want %d: %w", len(nodeRadials), SegmentCount, ErrSegmentCount)
	}
	if !finite(x) || !finite(y) {
		return nil, fmt.Errorf("start (%g, %g): %w", x, y, ErrStart)
	}
	if !finite(m.Heading) || !finite(m.Speed) || !finite(m.TurnRate) {
		return nil, fmt.Errorf("heading %g, speed %g, turn rate %g: %w", m.Heading, m.Speed, m.TurnRate, ErrMotion)
	}
	if !(m.HeadRadius >= 0) || math.IsInf(m.HeadRadius, 0) {
		return nil, fmt.Errorf("head radius %g: %w", m.HeadRadius, ErrMotion)
	}
	if !(nodeDistancing > 0) || math.IsInf(nodeDistancing, 0) {
		return nil, fmt.Errorf("node distancing %g: %w", nodeDistancing, ErrSpacing)
	}
	for i, r := range nodeRadials {
		if !(r >= 0) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("node %d radial %g: %w", i, r, ErrRadial)
		}
	}

	head := &Head{
		point:    geometry.Point{X: x, Y: y},
		theta:    m.Heading,
		speed:    m.Speed,
		turnRate: m.TurnRate,
		radius:   m.HeadRadius,
		children: make([]Node, SegmentCount),
	}

	// Lay the body out straight behind the head
	back := geometry.Point{X: -math.Cos(m.Heading), Y: -math.Sin(m.Heading)}
	for i, radial := range nodeRadials {
		pos := head.point.Add(back.Scale(float64(i+1) * nodeDistancing))
		head.children[i] = NewNode(pos, radial, m.Heading)
	}

	c := &Chain{
		head:           head,
		nodeDistancing: nodeDistancing,
		maxX:           maxX,
		maxY:           maxY,
	}

	c.head.MoveChain(c.nodeDistancing)

	return c, nil
}

// Travel advances the simulation by exactly one tick.
func (c *Chain) Travel() {
	c.head.MoveChain(c.nodeDistancing)
	c.ticks++
}

// Head returns the chain's head.
func (c *Chain) Head() *Head {
	return c.head
}

// NodeDistancing returns the leash length between consecutive points.
func (c *Chain) NodeDistancing() float64 {
	return c.nodeDistancing
}

// Bounds returns the world size the chain was created with.
func (c *Chain) Bounds() (maxX, maxY int) {
	return c.maxX, c.maxY
}

// Contains reports whether p lies inside the world bounds.
// Bounds are informational; the chain is never clamped to them.
func (c *Chain) Contains(p geometry.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= float64(c.maxX) && p.Y <= float64(c.maxY)
}

// Ticks returns the number of Travel calls so far.
func (c *Chain) Ticks() int {
	return c.ticks
}

// Outline returns the body silhouette as a closed polygon: the left sides
// from front to back followed by the right sides from back to front.
func (c *Chain) Outline() []geometry.Point {
	nodes := c.head.children
	outline := make([]geometry.Point, 0, 2*len(nodes))
	for _, n := range nodes {
		outline = append(outline, n.sides.Left)
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		outline = append(outline, nodes[i].sides.Right)
	}
	return outline
}

// Covers reports whether p falls inside the body silhouette.
func (c *Chain) Covers(p geometry.Point) bool {
	return geometry.PointInPolygon(p, c.Outline())
}

func (c *Chain) String() string {
	var b strings.Builder
	h := c.head
	fmt.Fprintf(&b, "Chain (tick %d)\n", c.ticks)
	fmt.Fprintf(&b, "  Head - pos: %v, theta: %g, speed: %g\n", h.point, h.theta, h.speed)
	b.WriteString("  Children:\n")
	for _, n := range h.children {
		fmt.Fprintf(&b, "    %v r=%g theta=%g\n", n.point, n.radial, n.theta)
	}
	return b.String()
}
