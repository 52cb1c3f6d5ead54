package game

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParsePoint converts "B3" style input (row letter, 1-based column) into a 0-based Point on the board.
func ParsePoint(s string, r Rules) (Point, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Point{}, fmt.Errorf("coordinate %q: %w", s, ErrInputFormat)
	}
	letter := rune(s[0])
	if letter > unicode.MaxASCII || !unicode.IsLetter(letter) {
		return Point{}, fmt.Errorf("coordinate %q: %w", s, ErrInputFormat)
	}
	digits := s[1:]
	for _, d := range digits {
		if !unicode.IsDigit(d) {
			return Point{}, fmt.Errorf("coordinate %q: %w", s, ErrInputFormat)
		}
	}
	col, err := strconv.Atoi(digits)
	if err != nil {
		return Point{}, fmt.Errorf("coordinate %q: %w", s, ErrInputFormat)
	}

	p := Point{Row: int(unicode.ToUpper(letter) - 'A'), Col: col - 1}
	if !InBounds(r, p) {
		return Point{}, fmt.Errorf("coordinate %q: %w", s, ErrOffBoard)
	}
	return p, nil
}
