// Package core provides fundamental types and utilities for the dungeon
// simulation. It contains no external dependencies (especially no Bubble
// Tea) to keep simulation logic pure and testable.
package core

// Point represents a cell on the dungeon grid.
type Point struct {
	X, Y int
}

// Add returns the point offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Chebyshev returns the chessboard distance to another point: the number
// of king moves between them.
func (p Point) Chebyshev(other Point) int {
	return Max(Abs(p.X-other.X), Abs(p.Y-other.Y))
}

// StepToward returns the point one king move closer to the target.
// Returns p unchanged when already there.
func (p Point) StepToward(target Point) Point {
	step := p
	if target.X > p.X {
		step.X++
	} else if target.X < p.X {
		step.X--
	}
	if target.Y > p.Y {
		step.Y++
	} else if target.Y < p.Y {
		step.Y--
	}
	return step
}

// Neighbors returns the eight surrounding points in reading order.
func (p Point) Neighbors() []Point {
	return []Point{
		{p.X - 1, p.Y - 1}, {p.X, p.Y - 1}, {p.X + 1, p.Y - 1},
		{p.X - 1, p.Y}, {p.X + 1, p.Y},
		{p.X - 1, p.Y + 1}, {p.X, p.Y + 1}, {p.X + 1, p.Y + 1},
	}
}

// Rect represents an axis-aligned region of the grid.
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

// Contains returns true if the point is inside this rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
