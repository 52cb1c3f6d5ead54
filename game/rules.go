package game

import (
	"fmt"
	"salvo/meta"
)

type Rules interface {
	Rows() int
	Cols() int
	FleetSize() int
}

type StandardRules struct {
	BoardRows int
	BoardCols int
	MaxShips  int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		BoardRows: meta.BOARD_ROWS,
		BoardCols: meta.BOARD_COLS,
		MaxShips:  meta.FLEET_SIZE,
	}
}

func NewRules(rows, cols, fleetSize int) *StandardRules {
	return &StandardRules{BoardRows: rows, BoardCols: cols, MaxShips: fleetSize}
}

func (sr *StandardRules) Rows() int {
	return sr.BoardRows
}

func (sr *StandardRules) Cols() int {
	return sr.BoardCols
}

func (sr *StandardRules) FleetSize() int {
	return sr.MaxShips
}

// Validate rejects boards that cannot be addressed by the letter-number syntax.
func (sr *StandardRules) Validate() error {
	if sr.BoardRows <= 0 || sr.BoardRows > 26 {
		return fmt.Errorf("board rows must be within 1..26, got %d", sr.BoardRows)
	}
	if sr.BoardCols <= 0 {
		return fmt.Errorf("board cols must be positive, got %d", sr.BoardCols)
	}
	if sr.MaxShips <= 0 {
		return fmt.Errorf("fleet size must be positive, got %d", sr.MaxShips)
	}
	return nil
}

// InBounds reports whether p lies on a board governed by r.
func InBounds(r Rules, p Point) bool {
	return p.Row >= 0 && p.Row < r.Rows() && p.Col >= 0 && p.Col < r.Cols()
}
