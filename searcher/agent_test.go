package searcher

import (
	"salvo/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func seeded(seed uint64) *Agent {
	return NewAgent(WithRand(rand.New(rand.NewSource(seed))))
}

func TestSelectShot(t *testing.T) {
	t.Run("never returns a fired cell", func(t *testing.T) {
		view := boardWith(t, nil, []game.Point{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, []game.Point{{Row: 2, Col: 2}})
		candidates := []game.Point{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 3, Col: 3}, {Row: 4, Col: 4}}
		agent := seeded(7)

		for i := 0; i < 500; i++ {
			p, err := agent.SelectShot(candidates, view)
			require.NoError(t, err)
			require.False(t, view.Fired(p), "Selected %s was already fired", p)
		}
	})

	t.Run("draws every tied cell", func(t *testing.T) {
		view := boardWith(t, nil, nil, nil)
		candidates := []game.Point{{Row: 0, Col: 0}, {Row: 5, Col: 5}, {Row: 2, Col: 3}}
		agent := seeded(11)

		seen := map[game.Point]bool{}
		for i := 0; i < 300; i++ {
			p, err := agent.SelectShot(candidates, view)
			require.NoError(t, err)
			seen[p] = true
		}
		require.Len(t, seen, len(candidates), "Uniform draws should reach every candidate")
	})

	t.Run("fails when nothing is eligible", func(t *testing.T) {
		view := boardWith(t, nil, []game.Point{{Row: 0, Col: 0}}, nil)

		_, err := seeded(1).SelectShot([]game.Point{{Row: 0, Col: 0}}, view)
		require.ErrorIs(t, err, ErrNoCandidates)

		_, err = seeded(1).SelectShot(nil, view)
		require.ErrorIs(t, err, ErrNoCandidates)
	})

	t.Run("is deterministic for a fixed seed", func(t *testing.T) {
		view := boardWith(t, nil, nil, nil)
		candidates := []game.Point{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 3, Col: 3}}

		a, b := seeded(42), seeded(42)
		for i := 0; i < 20; i++ {
			pa, _ := a.SelectShot(candidates, view)
			pb, _ := b.SelectShot(candidates, view)
			require.Equal(t, pa, pb)
		}
	})
}

func TestTransitions(t *testing.T) {
	fleet := game.Fleet{{ID: 0, Name: "Cruiser", Size: 3}, {ID: 1, Name: "Destroyer", Size: 2}}

	t.Run("starts hunting", func(t *testing.T) {
		require.Equal(t, Hunting, seeded(1).Mode())
	})

	t.Run("hit switches to targeting", func(t *testing.T) {
		agent := seeded(1)

		agent.RecordHit(game.Point{Row: 2, Col: 2})

		require.Equal(t, Targeting, agent.Mode())
		require.Equal(t, []game.Point{{Row: 2, Col: 2}}, agent.State().Hits)
	})

	t.Run("repeated hit is recorded once", func(t *testing.T) {
		agent := seeded(1)

		agent.RecordHit(game.Point{Row: 2, Col: 2})
		agent.RecordHit(game.Point{Row: 2, Col: 2})

		require.Len(t, agent.State().Hits, 1)
	})

	t.Run("misses keep targeting", func(t *testing.T) {
		agent := seeded(1)
		agent.RecordHit(game.Point{Row: 2, Col: 2})
		view := boardWith(t, fleet, []game.Point{{Row: 2, Col: 2}}, nil)

		for i := 0; i < 3; i++ {
			p, _, err := agent.NextShot(view)
			require.NoError(t, err)
			agent.RecordMiss(p)
			view.Cells[p.Row][p.Col] = game.Cell{Status: game.Miss}
			require.Equal(t, Targeting, agent.Mode())
		}
	})

	t.Run("sink with no remaining hits returns to hunting on the next shot", func(t *testing.T) {
		agent := seeded(1)
		ship := game.Ship{ID: 1, Name: "Destroyer", Size: 2, HitCount: 2, Points: []game.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}}}
		agent.RecordHit(game.Point{Row: 0, Col: 0})
		agent.RecordHit(game.Point{Row: 0, Col: 1})
		agent.RecordSink(ship)

		require.Equal(t, Targeting, agent.Mode(), "Mode changes when the next shot is chosen")
		require.Empty(t, agent.State().Hits)
		require.Len(t, agent.State().Sunk, 1)

		view := boardWith(t, fleet[:1], []game.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, nil)
		_, _, err := agent.NextShot(view)
		require.NoError(t, err)
		require.Equal(t, Hunting, agent.Mode())
	})

	t.Run("sink with unexplained hits keeps targeting", func(t *testing.T) {
		agent := seeded(1)
		ship := game.Ship{ID: 1, Name: "Destroyer", Size: 2, HitCount: 2, Points: []game.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}}}
		agent.RecordHit(game.Point{Row: 1, Col: 1})
		agent.RecordHit(game.Point{Row: 0, Col: 0})
		agent.RecordHit(game.Point{Row: 0, Col: 1})
		agent.RecordSink(ship)

		view := boardWith(t, fleet[:1], []game.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}, nil)
		_, _, err := agent.NextShot(view)
		require.NoError(t, err)
		require.Equal(t, Targeting, agent.Mode())
		require.Equal(t, []game.Point{{Row: 1, Col: 1}}, agent.State().Hits)
	})

	t.Run("reset clears the session", func(t *testing.T) {
		agent := seeded(1)
		agent.RecordHit(game.Point{Row: 1, Col: 1})

		agent.Reset()

		require.Equal(t, State{}, agent.State())
	})
}

func TestNextShotSinksFleet(t *testing.T) {
	rules := game.NewStandardRules()
	fleet := game.Fleet{
		{ID: 0, Name: "Carrier", Size: 4},
		{ID: 1, Name: "Battleship", Size: 3},
		{ID: 2, Name: "Submarine", Size: 3},
		{ID: 3, Name: "Destroyer", Size: 2},
		{ID: 4, Name: "PatrolBoat", Size: 2},
	}

	for seed := uint64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		board := game.NewBoard(rules, fleet)
		require.NoError(t, game.PlaceFleetRandomly(board, rng))
		agent := NewAgent(WithRand(rng), WithMetrics())

		shots := 0
		for !board.Defeated() {
			p, _, err := agent.NextShot(board.Masked())
			require.NoError(t, err)

			outcome, err := board.ApplyShot(p)
			require.NoError(t, err, "Agent should never pick a fired cell")
			if outcome.Hit {
				agent.RecordHit(p)
				if outcome.Sunk != nil {
					agent.RecordSink(*outcome.Sunk)
					for _, sp := range outcome.Sunk.Points {
						d := Compute(board.Masked(), board.Fleet, agent.State())
						require.Zero(t, d.Grid.At(sp), "Sunk cells should stay at zero")
					}
				}
			} else {
				agent.RecordMiss(p)
			}
			shots++
			require.LessOrEqual(t, shots, rules.Rows()*rules.Cols())
		}
		require.Len(t, agent.State().Sunk, len(fleet))
	}
}
