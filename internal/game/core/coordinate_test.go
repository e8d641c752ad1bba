package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSquare(t *testing.T) {
	s := NewSquare(3, 5)
	assert.Equal(t, 3, s.X)
	assert.Equal(t, 5, s.Y)
}

func TestSquare_FromIndex(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		width    int
		expected Square
	}{
		{"TopLeft", 0, 8, Square{0, 0}},
		{"EndOfFirstRank", 7, 8, Square{7, 0}},
		{"SecondRank", 8, 8, Square{0, 1}},
		{"Middle", 36, 8, Square{4, 4}},
		{"Last", 63, 8, Square{7, 7}},
		{"NarrowBoard", 7, 4, Square{3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromIndex(tt.index, tt.width))
		})
	}
}

func TestSquare_RoundTrip(t *testing.T) {
	width := 8
	for i := 0; i < 64; i++ {
		sq := FromIndex(i, width)
		assert.Equal(t, i, sq.ToIndex(width), "Round trip failed for index %d", i)
	}
}

func TestSquare_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		sq    Square
		valid bool
	}{
		{"Origin", Square{0, 0}, true},
		{"FarCorner", Square{7, 7}, true},
		{"NegativeX", Square{-1, 3}, false},
		{"NegativeY", Square{3, -1}, false},
		{"XTooLarge", Square{8, 0}, false},
		{"YTooLarge", Square{0, 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.sq.IsValid(8, 8))
		})
	}
}

func TestSquare_Step(t *testing.T) {
	assert.Equal(t, Square{5, 4}, Square{3, 3}.Step(Vector{2, 1}))
	assert.Equal(t, Square{-1, 0}, Square{0, 1}.Step(Vector{-1, -1}), "step is not bounds-checked")
}

func TestSquare_String(t *testing.T) {
	assert.Equal(t, "(4,0)", Square{4, 0}.String())
	assert.Equal(t, "<0,-1>", Vector{0, -1}.String())
}

func TestDirectionSets(t *testing.T) {
	assert.Len(t, OrthogonalDirections, 4)
	assert.Len(t, DiagonalDirections, 4)
	assert.Len(t, AllDirections, 8)
	assert.Len(t, KnightOffsets, 8)

	for _, d := range AllDirections {
		assert.True(t, d.DX >= -1 && d.DX <= 1 && d.DY >= -1 && d.DY <= 1, "direction %s is not a unit step", d)
	}
	for _, o := range KnightOffsets {
		dx, dy := abs(o.DX), abs(o.DY)
		assert.True(t, (dx == 1 && dy == 2) || (dx == 2 && dy == 1), "offset %s is not an L", o)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
