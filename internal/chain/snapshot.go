package chain

import "chosenoffset.com/serpent/internal/core/geometry"

// HeadState is a copy of the head's observable state.
type HeadState struct {
	Point  geometry.Point
	Theta  float64
	Speed  float64
	Radius float64
}

// Snapshot is a copy of the whole chain at one tick. It shares no memory
// with the chain, so it stays valid after further Travel calls.
type Snapshot struct {
	Tick  int
	Head  HeadState
	Nodes []Node
}

// Snapshot captures the chain's current state.
func (c *Chain) Snapshot() Snapshot {
	return Snapshot{
		Tick: c.ticks,
		Head: HeadState{
			Point:  c.head.point,
			Theta:  c.head.theta,
			Speed:  c.head.speed,
			Radius: c.head.radius,
		},
		Nodes: c.head.Nodes(),
	}
}
