package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"salvo/game"
	"salvo/meta"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Board     BoardDef `yaml:"board"`
	Fleet     FleetDef `yaml:"fleet"`
	Seed      uint64   `yaml:"seed"` // 0 seeds from the clock
	Games     int      `yaml:"games"`
	MaxTurns  int      `yaml:"max_turns"`
	OutputDir string   `yaml:"output_dir"`
	LogLevel  string   `yaml:"log_level"`
}

type BoardDef struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type FleetDef struct {
	Path string `yaml:"path"`
	Max  int    `yaml:"max"`
}

func Default() Config {
	return Config{
		Board:     BoardDef{Rows: meta.BOARD_ROWS, Cols: meta.BOARD_COLS},
		Fleet:     FleetDef{Path: meta.FLEET_FILE, Max: meta.FLEET_SIZE},
		Games:     meta.GAMES,
		MaxTurns:  meta.MAX_TURNS,
		OutputDir: "experiments/results",
		LogLevel:  "info",
	}
}

// Load reads a YAML file over the defaults. A missing file is not an error when
// optional is set. Failures are *game.ConfigurationError.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, &game.ConfigurationError{Source: path, Err: err}
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true) // Misspelled keys are errors
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &game.ConfigurationError{Source: path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &game.ConfigurationError{Source: path, Err: err}
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return err
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

func (c Config) Rules() *game.StandardRules {
	return game.NewRules(c.Board.Rows, c.Board.Cols, c.Fleet.Max)
}

// Rand returns the run's random source; a zero seed draws one from the clock.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
