package chain

import (
	"chosenoffset.com/serpent/internal/core/geometry"
)

// Node is one body segment trailing behind the head.
type Node struct {
	point  geometry.Point
	radial float64 // half-width of the body at this segment, fixed at creation
	theta  float64 // heading in radians
	sides  geometry.Sides
}

// NewNode creates a node at point facing theta, with its sides already derived.
func NewNode(point geometry.Point, radial, theta float64) Node {
	n := Node{
		point:  point,
		radial: radial,
		theta:  theta,
	}
	n.updateSides()
	return n
}

// Point returns the node's center.
func (n Node) Point() geometry.Point {
	return n.point
}

// Radial returns the body half-width at this node.
func (n Node) Radial() float64 {
	return n.radial
}

// Theta returns the node's heading in radians.
func (n Node) Theta() float64 {
	return n.theta
}

// Sides returns the left/right outline points of this node.
func (n Node) Sides() geometry.Sides {
	return n.sides
}

// BoundingRect returns the square around the node's body-width circle.
func (n Node) BoundingRect() [4]float64 {
	return geometry.BoundingRect(n.point, n.radial)
}

func (n *Node) updateSides() {
	n.sides = geometry.NewSides(n.point, n.radial, n.theta)
}

// PullNodeOnPoint drags node onto a leash of length radius around anchor.
// A node that had to move gets a fresh heading and sides. A node already
// within the leash is returned untouched, heading and sides included.
func PullNodeOnPoint(anchor geometry.Point, node Node, radius float64) Node {
	newPos, moved := geometry.MovePoint(anchor, node.point, radius)
	if !moved {
		return node
	}

	node.point = newPos
	node.theta = geometry.PointHeading(anchor, node.point)
	node.updateSides()

	return node
}
