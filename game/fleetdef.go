package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadFleet reads a fleet definition file. Any failure is a *ConfigurationError.
func LoadFleet(path string, r Rules) (Fleet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigurationError{Source: path, Err: err}
	}
	defer f.Close()

	return parseFleet(f, path, r)
}

// ParseFleet reads "<index> <name> <size>" lines; blank lines and lines starting with # are ignored.
func ParseFleet(rd io.Reader, r Rules) (Fleet, error) {
	return parseFleet(rd, "fleet", r)
}

func parseFleet(rd io.Reader, source string, r Rules) (Fleet, error) {
	var fleet Fleet
	scanner := bufio.NewScanner(rd)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		ship, err := parseShip(text)
		if err != nil {
			return nil, &ConfigurationError{Source: source, Line: line, Err: err}
		}
		if fleet.Index(ship.ID) != -1 {
			return nil, &ConfigurationError{Source: source, Line: line, Err: fmt.Errorf("duplicate ship index %d", ship.ID)}
		}
		if len(fleet) == r.FleetSize() {
			return nil, &ConfigurationError{Source: source, Line: line, Err: fmt.Errorf("fleet exceeds %d ships", r.FleetSize())}
		}
		if ship.Size > r.Rows() && ship.Size > r.Cols() {
			return nil, &ConfigurationError{Source: source, Line: line, Err: fmt.Errorf("%s of size %d does not fit a %dx%d board", ship.Name, ship.Size, r.Rows(), r.Cols())}
		}
		fleet = append(fleet, ship)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ConfigurationError{Source: source, Err: err}
	}
	if len(fleet) == 0 {
		return nil, &ConfigurationError{Source: source, Err: fmt.Errorf("no ships defined")}
	}
	return fleet, nil
}

func parseShip(text string) (Ship, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Ship{}, fmt.Errorf("expected \"<index> <name> <size>\", got %q", text)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Ship{}, fmt.Errorf("ship index %q: %w", fields[0], err)
	}
	size, err := strconv.Atoi(fields[2])
	if err != nil {
		return Ship{}, fmt.Errorf("ship size %q: %w", fields[2], err)
	}
	if size <= 0 {
		return Ship{}, fmt.Errorf("ship size must be positive, got %d", size)
	}
	return Ship{ID: id, Name: fields[1], Size: size}, nil
}
