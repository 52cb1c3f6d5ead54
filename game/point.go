package game

import (
	"fmt"
	"strings"
)

// Point is a 0-based (row, column) board coordinate.
type Point struct {
	Row int
	Col int
}

func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// String renders the point in the letter-number syntax players type (A1 is the top left).
func (p Point) String() string {
	if p.Row < 0 || p.Row >= 26 || p.Col < 0 {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+p.Row, p.Col+1)
}

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// Orientations lists both orientations in the order placements are enumerated.
var Orientations = []Orientation{Vertical, Horizontal}

// Step is the unit offset between consecutive cells of a ship.
func (o Orientation) Step() Point {
	if o == Vertical {
		return Point{Row: 1}
	}
	return Point{Col: 1}
}

func (o Orientation) String() string {
	if o == Vertical {
		return "V"
	}
	return "H"
}

// ParseOrientation accepts v/vertical or h/horizontal, case-insensitive.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "V", "VERTICAL":
		return Vertical, nil
	case "H", "HORIZONTAL":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("orientation %q: %w", s, ErrInputFormat)
}
