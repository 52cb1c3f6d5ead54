package engine

import (
	"fmt"
	"salvo/game"
	"salvo/searcher"
)

// Report is what the caller (UI, log, experiment) learns about a shot.
type Report struct {
	Point    game.Point
	Hit      bool
	SunkShip string // Name of the ship the shot sank, "" otherwise
}

func (r Report) Sunk() bool {
	return r.SunkShip != ""
}

func (r Report) String() string {
	switch {
	case r.Sunk():
		return fmt.Sprintf("%s hit, %s has sunk", r.Point, r.SunkShip)
	case r.Hit:
		return fmt.Sprintf("%s hit", r.Point)
	}
	return fmt.Sprintf("%s miss", r.Point)
}

// Tracker receives shot results. *searcher.Agent implements it.
type Tracker interface {
	RecordHit(p game.Point)
	RecordSink(ship game.Ship)
	RecordMiss(p game.Point)
}

// Resolve applies a shot to board and feeds the result back to tracker.
// tracker may be nil for players without a targeting state.
func Resolve(board *game.Board, tracker Tracker, p game.Point) (Report, error) {
	outcome, err := board.ApplyShot(p)
	if err != nil {
		return Report{}, err
	}

	report := Report{Point: p, Hit: outcome.Hit}
	if outcome.Sunk != nil {
		report.SunkShip = outcome.Sunk.Name
	}
	if tracker == nil {
		return report, nil
	}

	if outcome.Hit {
		tracker.RecordHit(p)
		if outcome.Sunk != nil {
			tracker.RecordSink(*outcome.Sunk)
		}
	} else {
		tracker.RecordMiss(p)
	}
	return report, nil
}

// Fire lets agent choose a shot against board and resolves it.
func Fire(board *game.Board, agent *searcher.Agent) (Report, error) {
	p, _, err := agent.NextShot(board.Masked())
	if err != nil {
		return Report{}, fmt.Errorf("choosing shot: %w", err)
	}
	return Resolve(board, agent, p)
}

// ValidatePlacement checks a candidate placement without changing the board.
// A rejected placement is returned as *game.PlacementError for the caller to ask again.
func ValidatePlacement(board *game.Board, shipID int, start game.Point, o game.Orientation) error {
	i := board.Fleet.Index(shipID)
	if i == -1 {
		return fmt.Errorf("ship %d: %w", shipID, game.ErrUnknownShip)
	}
	ship := board.Fleet[i]
	if len(ship.Points) > 0 {
		return fmt.Errorf("%s: %w", ship.Name, game.ErrAlreadyPlaced)
	}
	if outcome := game.SpaceOccupied(board.Fleet, start, o, ship.Size, board.Rules); outcome != game.Ok {
		return &game.PlacementError{Outcome: outcome, Ship: ship.Name, Start: start, Orientation: o}
	}
	return nil
}
