package chain

import (
	"math"

	"chosenoffset.com/serpent/internal/core/geometry"
)

// Motion holds the head's kinematic parameters.
type Motion struct {
	Heading    float64 // initial heading in radians
	Speed      float64 // distance travelled per tick
	TurnRate   float64 // heading added every tick
	HeadRadius float64 // radius of the head's bounding circle
}

// DefaultMotion returns the motion every chain built by Create uses.
func DefaultMotion() Motion {
	return Motion{
		Heading:    math.Pi / 2,
		Speed:      4,
		TurnRate:   math.Pi / 90,
		HeadRadius: 16,
	}
}

// Head is the lead point of the chain. It owns the trailing nodes.
type Head struct {
	point    geometry.Point
	theta    float64
	speed    float64
	turnRate float64
	radius   float64
	children []Node
}

// MoveChain advances the head one tick and drags every node after it.
//
// The head moves speed along its current heading and then turns by its
// turn rate. Nodes are pulled front to back: node 0 toward the head, node i
// toward the already updated node i-1. The new node slice replaces the old
// one only once every node has been pulled.
func (h *Head) MoveChain(spacing float64) {
	h.point = h.point.Add(geometry.Point{
		X: h.speed * math.Cos(h.theta),
		Y: h.speed * math.Sin(h.theta),
	})
	h.theta += h.turnRate

	next := make([]Node, len(h.children))
	anchor := h.point
	for i, node := range h.children {
		next[i] = PullNodeOnPoint(anchor, node, spacing)
		anchor = next[i].point
	}

	h.children = next
}

// Point returns the head's position.
func (h *Head) Point() geometry.Point {
	return h.point
}

// Theta returns the head's heading in radians.
func (h *Head) Theta() float64 {
	return h.theta
}

// Speed returns the distance the head covers per tick.
func (h *Head) Speed() float64 {
	return h.speed
}

// TurnRate returns the heading change applied each tick.
func (h *Head) TurnRate() float64 {
	return h.turnRate
}

// Radius returns the radius of the head's bounding circle.
func (h *Head) Radius() float64 {
	return h.radius
}

// BoundingRect returns the square around the head's bounding circle.
func (h *Head) BoundingRect() [4]float64 {
	return geometry.BoundingRect(h.point, h.radius)
}

// Nodes returns a copy of the trailing nodes, front to back.
func (h *Head) Nodes() []Node {
	nodes := make([]Node, len(h.children))
	copy(nodes, h.children)
	return nodes
}

// Len returns the number of trailing nodes.
func (h *Head) Len() int {
	return len(h.children)
}

// Node returns the i-th trailing node.
func (h *Head) Node(i int) Node {
	return h.children[i]
}
