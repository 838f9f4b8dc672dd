package engine

import "github.com/vovakirdan/tui-asteroids/internal/core"

// farMargin is how far past an edge an entity may drift before it is
// force-deactivated.
const farMargin = 200

// WrapResult reports the direction an entity wrapped on each axis.
// -1 means it left through the low edge, 1 through the high edge.
type WrapResult struct {
	X, Y int
}

// Wrapped reports whether either axis wrapped.
func (w WrapResult) Wrapped() bool {
	return w.X != 0 || w.Y != 0
}

// Viewport is the fixed play field. It is passed by value and never mutated.
type Viewport struct {
	W, H float64
}

// NewViewport creates a play field of the given size.
func NewViewport(w, h float64) Viewport {
	return Viewport{W: w, H: h}
}

// Wrap relocates an entity that has fully left the field to the opposite
// edge.
func (v Viewport) Wrap(pos *core.Vec, size core.Size) WrapResult {
	var res WrapResult

	if pos.X+size.W < 0 {
		pos.X = v.W
		res.X = -1
	} else if pos.X > v.W {
		pos.X = -size.W
		res.X = 1
	}

	if pos.Y+size.H < 0 {
		pos.Y = v.H
		res.Y = -1
	} else if pos.Y > v.H {
		pos.Y = -size.H
		res.Y = 1
	}
	return res
}

// IsOutOfScreen reports whether the box lies entirely outside the field.
func (v Viewport) IsOutOfScreen(b core.Box) bool {
	return v.outside(b, 0)
}

// IsVeryOutOfScreen reports whether the box is more than 200 units past an edge.
func (v Viewport) IsVeryOutOfScreen(b core.Box) bool {
	return v.outside(b, farMargin)
}

func (v Viewport) outside(b core.Box, margin float64) bool {
	return b.Right() < -margin || b.Pos.X > v.W+margin ||
		b.Bottom() < -margin || b.Pos.Y > v.H+margin
}
