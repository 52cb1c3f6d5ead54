package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"salvo/game"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrInputClosed = errors.New("input closed")

// Prompter drives human players from line-based input.
// Rejected input is reported on out and asked for again.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// retry reports a rejected input and whether asking again can help.
func (p *Prompter) retry(err error) bool {
	var placementErr *game.PlacementError
	if !errors.As(err, &placementErr) &&
		!errors.Is(err, game.ErrInputFormat) &&
		!errors.Is(err, game.ErrOffBoard) &&
		!errors.Is(err, game.ErrAlreadyFired) {
		return false
	}
	log.Debug().Err(err).Msg("rejected input")
	fmt.Fprintf(p.out, "%v, try again\n", err)
	return true
}

// PlaceFleet asks for a start cell and orientation for every unplaced ship on board.
func (p *Prompter) PlaceFleet(board *game.Board) error {
	for _, ship := range board.Fleet.Copy() {
		if ship.Placed() {
			continue
		}
		fmt.Fprintf(p.out, "%s\n", board)
		for {
			err := p.placeShip(board, ship)
			if err == nil {
				break
			}
			if !p.retry(err) {
				return err
			}
		}
	}
	fmt.Fprintf(p.out, "%s\n", board)
	return nil
}

func (p *Prompter) placeShip(board *game.Board, ship game.Ship) error {
	line, err := p.ask(fmt.Sprintf("Start of %s (size %d), e.g. A1: ", ship.Name, ship.Size))
	if err != nil {
		return err
	}
	start, err := game.ParsePoint(line, board.Rules)
	if err != nil {
		return err
	}
	line, err = p.ask("Orientation (V/H): ")
	if err != nil {
		return err
	}
	o, err := game.ParseOrientation(line)
	if err != nil {
		return err
	}

	if err := ValidatePlacement(board, ship.ID, start, o); err != nil {
		return err
	}
	return board.PlaceShip(ship.ID, start, o)
}

// Shoot asks the current player for a target and fires it through e.Play.
func (p *Prompter) Shoot(e *Engine) (Report, error) {
	name := e.Players[e.Current].Name
	for {
		line, err := p.ask(fmt.Sprintf("%s, fire at: ", name))
		if err != nil {
			return Report{}, err
		}
		report, err := p.fire(e, line)
		if err == nil {
			return report, nil
		}
		if !p.retry(err) {
			return Report{}, err
		}
	}
}

func (p *Prompter) fire(e *Engine, line string) (Report, error) {
	target, err := game.ParsePoint(line, e.opponent().Board.Rules)
	if err != nil {
		return Report{}, err
	}
	return e.Play(target)
}

// Play runs e to the end. Players without an agent are asked for their shots,
// the others fire through Step. It returns the winner, "" when the turn limit is reached.
func (p *Prompter) Play(e *Engine) (string, error) {
	for e.Winner() == "" && e.Turn() < e.MaxTurns {
		shooter := e.Players[e.Current]
		var report Report
		var err error
		if shooter.Agent == nil {
			report, err = p.Shoot(e)
		} else {
			report, err = e.Step()
		}
		if err != nil {
			return "", err
		}

		// After the shot Current has moved to the target's owner.
		target := e.Players[e.Current]
		fmt.Fprintf(p.out, "%s: %s\n", shooter.Name, report)
		if shooter.Agent == nil {
			fmt.Fprintf(p.out, "%s\n", target.Board.Masked())
		} else {
			fmt.Fprintf(p.out, "%s\n", target.Board)
		}
		log.Debug().Msgf("turn %d: %s fired %s", e.Turn(), shooter.Name, report)
	}

	if e.Winner() == "" {
		fmt.Fprintf(p.out, "No winner after %d turns\n", e.Turn())
	} else {
		fmt.Fprintf(p.out, "%s sunk the fleet in %d turns! %s wins!\n", e.Winner(), e.Turn(), e.Winner())
	}
	return e.Winner(), nil
}
