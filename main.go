package main

import (
	"flag"
	"fmt"
	"os"
	"salvo/config"
	"salvo/engine"
	"salvo/experiments"
	"salvo/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "salvo.yaml", "Run configuration (YAML)")
	mode := flag.String("mode", "play", "play: one logged computer game, human: you against the computer, experiment: a batch written to CSV")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the configuration when non-zero")
	games := flag.Int("games", 0, "Games per experiment, overrides the configuration when positive")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath, true)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *games > 0 {
		cfg.Games = *games
	}
	zerolog.SetGlobalLevel(cfg.Level())

	fleet, err := game.LoadFleet(cfg.Fleet.Path, cfg.Rules())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load fleet")
	}

	switch *mode {
	case "play":
		runPlay(cfg, fleet)
	case "human":
		runHuman(cfg, fleet)
	case "experiment":
		runExperiment(cfg, fleet)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func runPlay(cfg config.Config, fleet game.Fleet) {
	e, err := engine.NewComputerGame(cfg.Rules(), fleet, cfg.Rand(), cfg.MaxTurns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}

	winner, gameMetric, _ := e.Run()

	for _, p := range e.Players {
		fmt.Printf("%s\n%s\n", p.Name, p.Board)
	}
	if winner == "" {
		fmt.Printf("No winner after %d turns\n", gameMetric.TotalMoves)
		return
	}
	fmt.Printf("%s sunk the fleet in %d turns! %s wins!\n", winner, gameMetric.TotalMoves, winner)
}

func runHuman(cfg config.Config, fleet game.Fleet) {
	prompter := engine.NewPrompter(os.Stdin, os.Stdout)
	board := game.NewBoard(cfg.Rules(), fleet)
	if err := prompter.PlaceFleet(board); err != nil {
		log.Fatal().Err(err).Msg("failed to place fleet")
	}

	e, err := engine.NewHumanGame("Player", board, fleet, cfg.Rand(), cfg.MaxTurns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}
	if _, err := prompter.Play(e); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func runExperiment(cfg config.Config, fleet game.Fleet) {
	summary, err := experiments.Run("selfplay", cfg, fleet)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for name, wins := range summary.Wins {
		fmt.Printf("%s: %d wins\n", name, wins)
	}
	fmt.Printf("unfinished: %d, average moves: %.1f, records: %s\n", summary.Unfinished, summary.AvgMoves, summary.Dir)
}
