package experiments

import (
	"fmt"
	"salvo/config"
	"salvo/engine"
	"salvo/experiments/metrics"
	"salvo/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Summary aggregates a batch of computer-vs-computer games.
type Summary struct {
	Games      int
	Wins       map[string]int
	Unfinished int
	AvgMoves   float64
	Dir        string // Where the records were written
}

// Run plays cfg.Games games between two computer players and stores the records under cfg.OutputDir.
func Run(name string, cfg config.Config, fleet game.Fleet) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid experiment configuration: %w", err)
	}
	rng := cfg.Rand()
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summary := Summary{Games: cfg.Games, Wins: map[string]int{}}

	log.Info().Msgf("starting %s experiment with %d games...", name, cfg.Games)

	totalMoves := 0
	for i := 1; i <= cfg.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i, cfg.Games)

		winner, gameMetric, moveMetrics, err := runGame(cfg, fleet, rng)
		if err != nil {
			return Summary{}, fmt.Errorf("game %d: %w", i, err)
		}
		gameRecords = append(gameRecords, metrics.GameRecord{ID: i, GameMetric: gameMetric})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i, MoveMetric: mm})
		}

		if winner == "" {
			summary.Unfinished++
		} else {
			summary.Wins[winner]++
		}
		totalMoves += gameMetric.TotalMoves

		log.Info().Msgf("completed game %d of %d with winner: %s", i, cfg.Games, winner)
	}
	summary.AvgMoves = float64(totalMoves) / float64(cfg.Games)

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}

// runGame executes a single game between two computer players and returns the winner
func runGame(cfg config.Config, fleet game.Fleet, rng *rand.Rand) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	e, err := engine.NewComputerGame(cfg.Rules(), fleet, rng, cfg.MaxTurns)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}
