// Package core provides the value types shared by the simulation engine and
// the terminal platform. It has no dependency on Bubble Tea so that game
// logic stays pure and testable.
package core

import "math"

// Vec is a 2D position or direction in play-field units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// FromAngle returns a vector of the given magnitude pointing along deg degrees.
// 0 points right and 90 points down (screen coordinates).
func FromAngle(deg, magnitude float64) Vec {
	rad := deg * math.Pi / 180
	return Vec{X: math.Cos(rad) * magnitude, Y: math.Sin(rad) * magnitude}
}

// Size is a width/height pair in play-field units.
type Size struct {
	W, H float64
}

// Box is an axis-aligned bounding box in play-field units.
type Box struct {
	Pos  Vec
	Size Size
}

// NewBox creates a box from its top-left corner and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{Pos: Vec{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Pos.X + b.Size.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Pos.Y + b.Size.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{X: b.Pos.X + b.Size.W/2, Y: b.Pos.Y + b.Size.H/2}
}

// Overlaps reports whether two boxes intersect.
// Both axes use strict inequality, so edge-touching boxes do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Pos.X < o.Right() && b.Right() > o.Pos.X &&
		b.Pos.Y < o.Bottom() && b.Bottom() > o.Pos.Y
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
