package game

// Outcome is the result of validating a candidate ship placement.
type Outcome int

const (
	Ok Outcome = iota
	OutOfBounds
	Overlap
)

func (o Outcome) String() string {
	switch o {
	case Ok:
		return "ok"
	case OutOfBounds:
		return "out of bounds"
	case Overlap:
		return "overlap"
	}
	return "unknown"
}

// Span enumerates the size cells a ship starting at start would cover.
func Span(o Orientation, start Point, size int) []Point {
	points := make([]Point, 0, size)
	p, step := start, o.Step()
	for i := 0; i < size; i++ {
		points = append(points, p)
		p = p.Add(step)
	}
	return points
}

// IsOutOfBounds reports whether a ship of the given size starting at start leaves the board.
// Only the axis the orientation advances along can overflow for an on-board start.
func IsOutOfBounds(o Orientation, start Point, size, rows, cols int) bool {
	if start.Row < 0 || start.Row >= rows || start.Col < 0 || start.Col >= cols {
		return true
	}
	if o == Vertical {
		return start.Row+size > rows
	}
	return start.Col+size > cols
}

// IsIntersect reports whether any cell of the candidate placement is already owned by a ship in fleet.
func IsIntersect(fleet []Ship, o Orientation, start Point, size int) bool {
	for _, p := range Span(o, start, size) {
		for _, ship := range fleet {
			if ship.Occupies(p) {
				return true
			}
		}
	}
	return false
}

// SpaceOccupied validates a placement against the board extent first and the fleet second.
func SpaceOccupied(fleet []Ship, start Point, o Orientation, size int, r Rules) Outcome {
	if IsOutOfBounds(o, start, size, r.Rows(), r.Cols()) {
		return OutOfBounds
	}
	if IsIntersect(fleet, o, start, size) {
		return Overlap
	}
	return Ok
}
