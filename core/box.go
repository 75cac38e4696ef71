package core

// Point is an integer pixel coordinate
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale multiplies both components by s
func (p Point) Scale(s int) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Vec2 is a sub-pixel offset used by scroll animation
type Vec2 struct {
	X, Y float64
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Box is an axis-aligned rectangle with a top-left origin and a size
type Box struct {
	X, Y int // Top-left corner in pixels
	W, H int // Size in pixels
}

// NewBox creates a box at (x, y) with size (w, h)
func NewBox(x, y, w, h int) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Center returns the pixel under the middle of the box
func (b Box) Center() Point {
	return Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Translate returns the box moved by (dx, dy)
func (b Box) Translate(dx, dy int) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Offset returns the box moved by p
func (b Box) Offset(p Point) Box {
	return b.Translate(p.X, p.Y)
}

// BoxesOverlap reports whether the half-open intervals of a and b intersect on both axes
// Touching edges do not count as overlap
func BoxesOverlap(a, b Box) bool {
	return a.X < b.X+b.W &&
		b.X < a.X+a.W &&
		a.Y < b.Y+b.H &&
		b.Y < a.Y+a.H
}
