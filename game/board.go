package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type Status int

const (
	Empty Status = iota
	Occupied
	Hit
	Miss
)

// Cell is one board square. ShipID is only meaningful for Occupied and Hit.
type Cell struct {
	Status Status
	ShipID int
}

// Board is one player's grid together with the fleet placed on it.
type Board struct {
	Rules Rules
	Cells [][]Cell
	Fleet Fleet  // Active ships, definition order
	Sunk  []Ship // Sunk ships, sink order
}

// ShotOutcome describes the effect of a single shot. Sunk is set when the hit sank a ship.
type ShotOutcome struct {
	Point  Point
	Hit    bool
	ShipID int
	Sunk   *Ship
}

// NewBoard creates an empty board for the given fleet. Ships start unplaced.
func NewBoard(r Rules, fleet Fleet) *Board {
	if len(fleet) > r.FleetSize() {
		panic(fmt.Sprintf("fleet of %d ships exceeds maximum %d", len(fleet), r.FleetSize()))
	}
	cells := make([][]Cell, r.Rows())
	for i := range cells {
		cells[i] = make([]Cell, r.Cols())
	}
	fleetCopy := fleet.Copy()
	for i := range fleetCopy {
		fleetCopy[i].HitCount = 0
		fleetCopy[i].Points = nil
	}
	return &Board{
		Rules: r,
		Cells: cells,
		Fleet: fleetCopy,
	}
}

func (b *Board) cell(p Point) *Cell {
	return &b.Cells[p.Row][p.Col]
}

// Status returns the status of p; off-board points read as Empty.
func (b *Board) Status(p Point) Status {
	if !InBounds(b.Rules, p) {
		return Empty
	}
	return b.cell(p).Status
}

// Fired reports whether p has already been shot at.
func (b *Board) Fired(p Point) bool {
	s := b.Status(p)
	return s == Hit || s == Miss
}

// PlaceShip positions the ship with the given id. Nothing is written unless the placement is valid.
func (b *Board) PlaceShip(shipID int, start Point, o Orientation) error {
	i := b.Fleet.Index(shipID)
	if i == -1 {
		return fmt.Errorf("ship %d: %w", shipID, ErrUnknownShip)
	}
	ship := &b.Fleet[i]
	if len(ship.Points) > 0 {
		return fmt.Errorf("%s: %w", ship.Name, ErrAlreadyPlaced)
	}

	if outcome := SpaceOccupied(b.Fleet, start, o, ship.Size, b.Rules); outcome != Ok {
		return &PlacementError{Outcome: outcome, Ship: ship.Name, Start: start, Orientation: o}
	}

	ship.Points = Span(o, start, ship.Size)
	for _, p := range ship.Points {
		*b.cell(p) = Cell{Status: Occupied, ShipID: shipID}
	}
	return nil
}

// ApplyShot fires at p. Firing at an already fired cell is a precondition violation
// reported as ErrAlreadyFired and leaves the board unchanged.
func (b *Board) ApplyShot(p Point) (ShotOutcome, error) {
	if !InBounds(b.Rules, p) {
		return ShotOutcome{}, fmt.Errorf("shot at %v: %w", p, ErrOffBoard)
	}
	c := b.cell(p)
	if c.Status == Hit || c.Status == Miss {
		return ShotOutcome{}, fmt.Errorf("shot at %s: %w", p, ErrAlreadyFired)
	}

	if c.Status != Occupied {
		c.Status = Miss
		return ShotOutcome{Point: p}, nil
	}

	c.Status = Hit
	outcome := ShotOutcome{Point: p, Hit: true, ShipID: c.ShipID}
	i := b.Fleet.Index(c.ShipID)
	if i == -1 {
		panic(fmt.Sprintf("cell %s owned by ship %d missing from fleet", p, c.ShipID))
	}
	b.Fleet[i].HitCount++
	if b.Fleet[i].Sunk() {
		sunk := b.Fleet[i].Copy()
		b.Fleet = slices.Delete(b.Fleet, i, i+1)
		b.Sunk = append(b.Sunk, sunk)
		outcome.Sunk = &sunk
	}
	return outcome, nil
}

// Defeated reports whether every ship has been sunk.
func (b *Board) Defeated() bool {
	return len(b.Fleet) == 0
}

// Snapshot deep-copies the board.
func (b *Board) Snapshot() *Board {
	cells := make([][]Cell, len(b.Cells))
	for i, row := range b.Cells {
		cells[i] = slices.Clone(row)
	}
	var sunk []Ship
	for _, s := range b.Sunk {
		sunk = append(sunk, s.Copy())
	}
	return &Board{
		Rules: b.Rules, // Rules are immutable
		Cells: cells,
		Fleet: b.Fleet.Copy(),
		Sunk:  sunk,
	}
}

// Masked returns what an opponent may see: unhit ship cells read as Empty and
// active ships keep their id, name and size but not their position.
// Sunk ships stay fully visible.
func (b *Board) Masked() *Board {
	view := b.Snapshot()
	for _, row := range view.Cells {
		for i := range row {
			if row[i].Status == Occupied {
				row[i] = Cell{}
			}
		}
	}
	for i := range view.Fleet {
		view.Fleet[i].Points = nil
		view.Fleet[i].HitCount = 0
	}
	return view
}

// String renders the board for debugging: X hit, O miss, ship initial for unhit ship cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < b.Rules.Cols(); col++ {
		fmt.Fprintf(&sb, " %d", (col+1)%10)
	}
	sb.WriteByte('\n')
	for row, cells := range b.Cells {
		fmt.Fprintf(&sb, "%c |", 'A'+row)
		for _, c := range cells {
			sb.WriteByte(b.symbol(c))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) symbol(c Cell) byte {
	switch c.Status {
	case Hit:
		return 'X'
	case Miss:
		return 'O'
	case Occupied:
		if i := b.Fleet.Index(c.ShipID); i != -1 && b.Fleet[i].Name != "" {
			return b.Fleet[i].Name[0]
		}
		return '#'
	}
	return ' '
}
