package engine

import (
	"errors"
	"fmt"
	"salvo/experiments/metrics"
	"salvo/game"
	"salvo/searcher"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrGameOver  = errors.New("game is over - no shots allowed")
	ErrNoAgent   = errors.New("player has no agent")
	ErrTurnLimit = errors.New("turn limit reached")
)

// Player owns a board and, for computer players, the agent that fires on the opponent.
type Player struct {
	Name  string
	Board *game.Board     // The player's own fleet
	Agent *searcher.Agent // nil when shots come from outside through Play
}

type Engine struct {
	Players  []*Player
	Current  int // Index of the player to shoot next
	MaxTurns int
	turn     int
	winner   string
}

func LocalEngine(players []*Player, maxTurns int) *Engine {
	if len(players) != 2 {
		panic("need exactly two players")
	}
	for _, p := range players {
		if p == nil || p.Board == nil {
			panic("every player needs a board")
		}
	}
	if maxTurns <= 0 {
		panic("turn limit must be positive")
	}
	return &Engine{
		Players:  players,
		MaxTurns: maxTurns,
	}
}

// NewComputerGame sets up two computer players with randomly placed copies of fleet.
// Each agent gets its own random stream derived from rng.
func NewComputerGame(rules game.Rules, fleet game.Fleet, rng *rand.Rand, maxTurns int) (*Engine, error) {
	players := make([]*Player, 2)
	for i := range players {
		board := game.NewBoard(rules, fleet)
		if err := game.PlaceFleetRandomly(board, rng); err != nil {
			return nil, fmt.Errorf("placing fleet for player %d: %w", i+1, err)
		}
		players[i] = &Player{
			Name:  fmt.Sprintf("Computer%d", i+1),
			Board: board,
			Agent: searcher.NewAgent(searcher.WithSeed(rng.Uint64()|1), searcher.WithMetrics()),
		}
	}
	return LocalEngine(players, maxTurns), nil
}

// NewHumanGame pits a human, who fires through Play, against a computer player with a
// randomly placed copy of fleet. board is the human's already placed fleet. The human shoots first.
func NewHumanGame(name string, board *game.Board, fleet game.Fleet, rng *rand.Rand, maxTurns int) (*Engine, error) {
	computer := game.NewBoard(board.Rules, fleet)
	if err := game.PlaceFleetRandomly(computer, rng); err != nil {
		return nil, fmt.Errorf("placing computer fleet: %w", err)
	}
	players := []*Player{
		{Name: name, Board: board},
		{Name: "Computer", Board: computer, Agent: searcher.NewAgent(searcher.WithSeed(rng.Uint64() | 1))},
	}
	return LocalEngine(players, maxTurns), nil
}

func (e *Engine) opponent() *Player {
	return e.Players[1-e.Current]
}

func (e *Engine) Winner() string {
	return e.winner
}

func (e *Engine) Turn() int {
	return e.turn
}

// Play fires the current player's shot at the opponent and passes the turn.
// Rejected shots leave the turn with the current player.
func (e *Engine) Play(p game.Point) (Report, error) {
	if e.winner != "" {
		return Report{}, ErrGameOver
	}
	if e.turn >= e.MaxTurns {
		return Report{}, ErrTurnLimit
	}

	shooter := e.Players[e.Current]
	var tracker Tracker
	if shooter.Agent != nil {
		tracker = shooter.Agent
	}
	report, err := Resolve(e.opponent().Board, tracker, p)
	if err != nil {
		return Report{}, err
	}
	e.advance(shooter, report)
	return report, nil
}

// Step lets the current player's agent choose and fire a shot.
func (e *Engine) Step() (Report, error) {
	if e.winner != "" {
		return Report{}, ErrGameOver
	}
	if e.turn >= e.MaxTurns {
		return Report{}, ErrTurnLimit
	}

	shooter := e.Players[e.Current]
	if shooter.Agent == nil {
		return Report{}, fmt.Errorf("%s: %w", shooter.Name, ErrNoAgent)
	}
	report, err := Fire(e.opponent().Board, shooter.Agent)
	if err != nil {
		return Report{}, err
	}
	e.advance(shooter, report)
	return report, nil
}

func (e *Engine) advance(shooter *Player, report Report) {
	if report.Sunk() {
		log.Info().Msgf("%s sank %s's %s", shooter.Name, e.opponent().Name, report.SunkShip)
	}
	if e.opponent().Board.Defeated() {
		e.winner = shooter.Name
	}
	e.turn++
	e.Current = 1 - e.Current
}

// Run plays computer players against each other until there's a winner.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Current + 1,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.Players[e.Current].Name)

	for e.winner == "" && e.turn < e.MaxTurns {
		shooter := e.Current
		report, err := e.Step()
		if err != nil {
			log.Error().Err(err).Msgf("%s cannot continue", e.Players[shooter].Name)
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:       e.turn,
			Player:     shooter + 1,
			Shot:       report.Point.String(),
			Hit:        report.Hit,
			SunkShip:   report.SunkShip,
			ShotMetric: e.Players[shooter].Agent.Metric(),
		})
		log.Debug().Msgf("turn %d: %s fired %s", e.turn, e.Players[shooter].Name, report)
	}

	if e.winner != "" {
		log.Info().Msgf("game ended after %d turns, winner: %s", e.turn, e.winner)
	} else {
		log.Warn().Msgf("stopped after %d turns (no winner yet)", e.turn)
	}

	gameMetric.Winner = e.winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.turn
	return e.winner, gameMetric, moveMetrics
}
