package game

import (
	"errors"
	"fmt"
	"salvo/meta"

	"golang.org/x/exp/rand"
)

// PlaceFleetRandomly places every unplaced ship at a random start and orientation.
// Only placement errors are retried, up to meta.PLACEMENT_ATTEMPTS per ship.
func PlaceFleetRandomly(b *Board, rng *rand.Rand) error {
	for _, ship := range b.Fleet.Copy() {
		if ship.Placed() {
			continue
		}
		if err := placeRandomly(b, ship, rng); err != nil {
			return err
		}
	}
	return nil
}

func placeRandomly(b *Board, ship Ship, rng *rand.Rand) error {
	var placementErr *PlacementError
	for attempt := 0; attempt < meta.PLACEMENT_ATTEMPTS; attempt++ {
		start := Point{Row: rng.Intn(b.Rules.Rows()), Col: rng.Intn(b.Rules.Cols())}
		o := Orientations[rng.Intn(len(Orientations))]

		err := b.PlaceShip(ship.ID, start, o)
		if err == nil {
			return nil
		}
		if !errors.As(err, &placementErr) {
			return err
		}
	}
	return fmt.Errorf("failed to place %s after %d attempts: %w", ship.Name, meta.PLACEMENT_ATTEMPTS, placementErr)
}
