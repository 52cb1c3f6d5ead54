package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds   = errors.New("ship placement is outside the board")
	ErrOverlap       = errors.New("space already occupied")
	ErrUnknownShip   = errors.New("unknown ship")
	ErrAlreadyPlaced = errors.New("ship already placed")
	ErrAlreadyFired  = errors.New("coordinate has already been used")
	ErrOffBoard      = errors.New("coordinate out of range")
	ErrInputFormat   = errors.New("invalid format")
)

// PlacementError is returned when a ship cannot be placed; the caller decides whether to ask again.
type PlacementError struct {
	Outcome     Outcome
	Ship        string
	Start       Point
	Orientation Orientation
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("cannot place %s at %s %s: %v", e.Ship, e.Start, e.Orientation, e.Unwrap())
}

func (e *PlacementError) Unwrap() error {
	if e.Outcome == OutOfBounds {
		return ErrOutOfBounds
	}
	return ErrOverlap
}

// ConfigurationError marks a missing or malformed fleet definition or run configuration.
// It is fatal at startup.
type ConfigurationError struct {
	Source string
	Line   int // 0 when the error is not tied to a line
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("configuration %s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("configuration %s: %v", e.Source, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
