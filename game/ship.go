package game

import "golang.org/x/exp/slices"

type Ship struct {
	ID       int     // Index from the fleet definition
	Name     string  // Single-word name
	Size     int     // Number of cells
	HitCount int     // 0..Size
	Points   []Point // Occupied cells in placement order, empty until placed
}

func (s Ship) Sunk() bool {
	return s.Size > 0 && s.HitCount >= s.Size
}

func (s Ship) Placed() bool {
	return len(s.Points) == s.Size
}

func (s Ship) Occupies(p Point) bool {
	return slices.Contains(s.Points, p)
}

func (s Ship) Copy() Ship {
	s.Points = slices.Clone(s.Points)
	return s
}

// Fleet holds a player's active (unsunk) ships in definition order.
type Fleet []Ship

func (f Fleet) Index(id int) int {
	return slices.IndexFunc(f, func(s Ship) bool { return s.ID == id })
}

func (f Fleet) Copy() Fleet {
	if f == nil {
		return nil
	}
	out := make(Fleet, len(f))
	for i, s := range f {
		out[i] = s.Copy()
	}
	return out
}

// Cells is the total number of cells occupied by the fleet once placed.
func (f Fleet) Cells() int {
	n := 0
	for _, s := range f {
		n += s.Size
	}
	return n
}
