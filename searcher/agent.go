package searcher

import (
	"salvo/experiments/metrics"
	"salvo/game"
	"salvo/utils"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(a *Agent)

// Agent is the automated shooter. It owns the hunting/targeting state machine
// and is the only mutable state of a computer player's session.
type Agent struct {
	rng      *rand.Rand
	state    State
	justSunk bool // Previous shot sank a ship
	metrics  metrics.Collector
	last     metrics.ShotMetric
}

func WithRand(rng *rand.Rand) Option {
	return func(a *Agent) {
		if rng != nil {
			a.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		if seed != 0 {
			a.rng = rand.New(rand.NewSource(seed))
		}
	}
}

func WithMetrics() Option {
	return func(a *Agent) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAgent(options ...Option) *Agent {
	a := &Agent{ // Default values
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// State returns a copy of the current targeting state.
func (a *Agent) State() State {
	return a.state.Copy()
}

func (a *Agent) Mode() Mode {
	return a.state.Mode
}

// Metric returns the statistics of the most recent NextShot.
func (a *Agent) Metric() metrics.ShotMetric {
	return a.last
}

// Reset forgets everything learned about the opponent, for a new game.
func (a *Agent) Reset() {
	a.state = State{}
	a.justSunk = false
	a.last = metrics.ShotMetric{}
}

// NextShot picks the next cell to fire on. view must be the opponent board as this
// player may see it (see game.Board.Masked).
func (a *Agent) NextShot(view *game.Board) (game.Point, Density, error) {
	a.metrics.Start()

	// Only a sink that leaves no unexplained hits ends targeting. A run of misses
	// after a hit keeps targeting.
	if a.justSunk && len(a.state.Hits) == 0 {
		a.state.Mode = Hunting
	}
	a.justSunk = false

	d := Compute(view, view.Fleet, a.state)
	p, err := a.SelectShot(d.Highest, view)
	a.last = a.metrics.Complete(a.state.Mode == Targeting, len(d.Highest), d.Max)
	if err != nil {
		return game.Point{}, d, err
	}

	log.Debug().
		Str("mode", a.state.Mode.String()).
		Int("candidates", len(d.Highest)).
		Float64("max", d.Max).
		Msgf("selected %s", p)
	return p, d, nil
}

// SelectShot draws uniformly among the highest density cells. A draw that lands
// on an already fired cell is discarded and drawn again.
func (a *Agent) SelectShot(highest []game.Point, view *game.Board) (game.Point, error) {
	eligible := 0
	for _, p := range highest {
		if game.InBounds(view.Rules, p) && !view.Fired(p) {
			eligible++
		}
	}
	if eligible == 0 {
		return game.Point{}, ErrNoCandidates
	}

	for {
		p := highest[a.rng.Intn(len(highest))]
		if game.InBounds(view.Rules, p) && !view.Fired(p) {
			return p, nil
		}
		a.metrics.AddRedraw()
		log.Warn().Msgf("discarding candidate %s: already fired", p)
	}
}

// RecordHit notes a confirmed hit and switches to targeting.
func (a *Agent) RecordHit(p game.Point) {
	if utils.FindIndex(a.state.Hits, p) == -1 {
		a.state.Hits = append(a.state.Hits, p)
	}
	a.state.Mode = Targeting
}

// RecordSink attributes the ship's cells to the sink and excludes them from future searches.
func (a *Agent) RecordSink(ship game.Ship) {
	a.state.Hits = utils.Without(a.state.Hits, ship.Points...)
	a.state.Sunk = append(a.state.Sunk, ship.Copy())
	a.justSunk = true
}

// RecordMiss leaves the state untouched; the miss is already on the board.
func (a *Agent) RecordMiss(game.Point) {}
