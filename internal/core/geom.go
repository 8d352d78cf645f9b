// Package core provides fundamental types and utilities for the space garbage
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Box is an axis-aligned bounding box in playfield coordinates.
// Rows grow downward, columns grow to the right. Positions are fractional
// because entities move at sub-cell speeds.
type Box struct {
	Row, Col      float64 // Top-left corner position
	Height, Width float64
}

// NewBox creates a box with the given top-left corner and dimensions.
func NewBox(row, col, height, width float64) Box {
	return Box{Row: row, Col: col, Height: height, Width: width}
}

// Bottom returns the row just below the box (exclusive edge).
func (b Box) Bottom() float64 {
	return b.Row + b.Height
}

// Right returns the column just right of the box (exclusive edge).
func (b Box) Right() float64 {
	return b.Col + b.Width
}

// Contains reports whether the point (row, col) lies inside the box.
// Top and left edges are inclusive, bottom and right are exclusive.
func (b Box) Contains(row, col float64) bool {
	return row >= b.Row && row < b.Bottom() && col >= b.Col && col < b.Right()
}

// Intersects reports whether this box overlaps another.
// Boxes that only touch along an edge do not overlap.
func (b Box) Intersects(other Box) bool {
	if b.Col >= other.Right() || other.Col >= b.Right() {
		return false
	}
	if b.Row >= other.Bottom() || other.Row >= b.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.Row + b.Height/2, b.Col + b.Width/2
}

// CellOf converts a fractional coordinate to the screen cell it is drawn in.
func CellOf(v float64) int {
	return int(math.Round(v))
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
