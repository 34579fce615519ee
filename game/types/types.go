package types

// Point is a single grid cell. Two points are equal when both coordinates match.
type Point struct {
	X, Y int
}

// Unit directions. A direction is a Point with |X|+|Y| == 1.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Add returns the component-wise sum of p and d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Opposite returns the reverse direction.
func (p Point) Opposite() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsDirection reports whether p is one of the four unit directions.
func (p Point) IsDirection() bool {
	return abs(p.X)+abs(p.Y) == 1
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps p onto the torus: a coordinate leaving one edge re-enters
// from the opposite one.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Clamp pins p to the grid edges without wrapping.
func (g Grid) Clamp(p Point) Point {
	return Point{X: clamp(p.X, 0, g.Width-1), Y: clamp(p.Y, 0, g.Height-1)}
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
