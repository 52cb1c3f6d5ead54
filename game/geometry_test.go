package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsOutOfBounds(t *testing.T) {
	t.Run("vertical checks rows", func(t *testing.T) {
		require.False(t, IsOutOfBounds(Vertical, Point{3, 5}, 3, 6, 6), "Ship should fit rows 3..5")
		require.True(t, IsOutOfBounds(Vertical, Point{4, 0}, 3, 6, 6), "Ship should overflow the last row")
	})

	t.Run("horizontal checks columns", func(t *testing.T) {
		require.False(t, IsOutOfBounds(Horizontal, Point{5, 3}, 3, 6, 6), "Ship should fit columns 3..5")
		require.True(t, IsOutOfBounds(Horizontal, Point{0, 4}, 3, 6, 6), "Ship should overflow the last column")
	})

	t.Run("off-board start", func(t *testing.T) {
		require.True(t, IsOutOfBounds(Horizontal, Point{-1, 0}, 1, 6, 6))
		require.True(t, IsOutOfBounds(Vertical, Point{0, 6}, 1, 6, 6))
	})
}

func TestIsIntersect(t *testing.T) {
	fleet := []Ship{{ID: 0, Name: "Destroyer", Size: 2, Points: []Point{{2, 2}, {2, 3}}}}

	require.True(t, IsIntersect(fleet, Vertical, Point{1, 3}, 3), "Vertical ship through (2,3) should intersect")
	require.False(t, IsIntersect(fleet, Vertical, Point{3, 2}, 3), "Ship below the destroyer should not intersect")
	require.True(t, IsIntersect(fleet, Horizontal, Point{2, 0}, 3), "Ship ending on (2,2) should intersect")
	require.False(t, IsIntersect(fleet, Horizontal, Point{1, 0}, 6), "Row above should not intersect")
}

func TestSpaceOccupied(t *testing.T) {
	rules := NewStandardRules()
	fleet := []Ship{{ID: 0, Name: "Destroyer", Size: 2, Points: []Point{{5, 4}, {5, 5}}}}

	tests := []struct {
		name  string
		start Point
		o     Orientation
		size  int
		want  Outcome
	}{
		{"fits", Point{0, 0}, Horizontal, 4, Ok},
		{"past the right edge", Point{0, 3}, Horizontal, 4, OutOfBounds},
		{"past the bottom edge", Point{4, 0}, Vertical, 3, OutOfBounds},
		{"overlaps", Point{3, 5}, Vertical, 3, Overlap},
		{"out of bounds takes precedence", Point{4, 5}, Vertical, 3, OutOfBounds},
		{"touching is allowed", Point{4, 4}, Horizontal, 2, Ok},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SpaceOccupied(fleet, tt.start, tt.o, tt.size, rules))
		})
	}
}

func TestSpan(t *testing.T) {
	require.Equal(t, []Point{{1, 1}, {2, 1}, {3, 1}}, Span(Vertical, Point{1, 1}, 3))
	require.Equal(t, []Point{{1, 1}, {1, 2}}, Span(Horizontal, Point{1, 1}, 2))
	require.Empty(t, Span(Horizontal, Point{1, 1}, 0))
}
