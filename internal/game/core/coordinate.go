package core

import "fmt"

// Square represents a cell on the arena grid.
// X grows along a rank (width), Y along a file (height).
type Square struct {
	X, Y int
}

// NewSquare creates a new square with the given x and y values
func NewSquare(x, y int) Square {
	return Square{X: x, Y: y}
}

// FromIndex creates a square from a grid index using row-major ordering
func FromIndex(idx, width int) Square {
	return Square{
		X: idx % width,
		Y: idx / width,
	}
}

// IsValid checks if the square is within the given bounds
func (s Square) IsValid(width, height int) bool {
	return s.X >= 0 && s.X < width && s.Y >= 0 && s.Y < height
}

// ToIndex converts the square to a grid index using row-major ordering
func (s Square) ToIndex(width int) int {
	return s.Y*width + s.X
}

// Step returns the square reached by applying the vector once
func (s Square) Step(v Vector) Square {
	return Square{X: s.X + v.DX, Y: s.Y + v.DY}
}

// String returns a string representation of the square
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.X, s.Y)
}

// Vector is a direction or offset. It is never bounds-checked on its own.
type Vector struct {
	DX, DY int
}

// String returns a string representation of the vector
func (v Vector) String() string {
	return fmt.Sprintf("<%d,%d>", v.DX, v.DY)
}

var (
	// OrthogonalDirections are the rook rays.
	OrthogonalDirections = []Vector{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

	// DiagonalDirections are the bishop rays.
	DiagonalDirections = []Vector{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}

	// AllDirections are the queen rays and the king's single steps, counter-clockwise from +x.
	AllDirections = []Vector{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}

	// KnightOffsets are the eight L-shaped jumps.
	KnightOffsets = []Vector{
		{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
		{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
	}
)
