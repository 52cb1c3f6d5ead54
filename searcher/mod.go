package searcher

import (
	"errors"
	"salvo/game"

	"golang.org/x/exp/slices"
)

// Mode is the phase of the search.
type Mode int

const (
	Hunting   Mode = iota // Broad search over the whole board
	Targeting             // Localized search around confirmed hits
)

func (m Mode) String() string {
	if m == Targeting {
		return "targeting"
	}
	return "hunting"
}

var ErrNoCandidates = errors.New("no cell left to fire on")

// Density weights added per covered cell.
const (
	HuntWeight   = 1.0
	AxisWeight   = 1.0 // Targeting window on an axis without the stronger bias
	BiasedWeight = 2.0 // Targeting window on the axis with strictly more hits
)

// State is the targeting session state of one automated player.
type State struct {
	Mode Mode
	Hits []game.Point // Confirmed hits not yet attributed to a sunk ship
	Sunk []game.Ship  // Ships sunk by this player, sink order
}

func (s State) Copy() State {
	var sunk []game.Ship
	for _, ship := range s.Sunk {
		sunk = append(sunk, ship.Copy())
	}
	return State{
		Mode: s.Mode,
		Hits: slices.Clone(s.Hits),
		Sunk: sunk,
	}
}
