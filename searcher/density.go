package searcher

import (
	"salvo/game"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/slices"
)

// Grid holds one density value per board cell, indexed [row][col].
type Grid [][]float64

func newGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]float64, cols)
	}
	return g
}

func (g Grid) At(p game.Point) float64 {
	return g[p.Row][p.Col]
}

func (g Grid) add(points []game.Point, weight float64) {
	for _, p := range points {
		g[p.Row][p.Col] += weight
	}
}

// Density is the result of one computation: the grid, its maximum, and every
// cell that may still be fired on and attains that maximum.
type Density struct {
	Grid    Grid
	Max     float64
	Highest []game.Point
}

// Compute estimates per cell how likely it is to hold an undiscovered ship.
// view is the opponent's board as this player sees it, fleet the ships still afloat.
// Neither argument is modified.
func Compute(view *game.Board, fleet game.Fleet, state State) Density {
	rows, cols := view.Rules.Rows(), view.Rules.Cols()
	d := Density{Grid: newGrid(rows, cols)}
	if len(fleet) == 0 {
		return d
	}

	sunk := sunkPoints(state.Sunk)
	switch state.Mode {
	case Hunting:
		hunt(d.Grid, view, fleet)
	case Targeting:
		target(d.Grid, view, fleet, state.Hits, sunk)
	}

	mask(d.Grid, view, sunk)
	d.Max, d.Highest = highest(d.Grid, view)
	return d
}

func sunkPoints(ships []game.Ship) mapset.Set[game.Point] {
	points := mapset.New[game.Point]()
	for _, ship := range ships {
		for _, p := range ship.Points {
			points.Put(p)
		}
	}
	return points
}

// hunt counts, per cell, the legal placements of every remaining ship covering it.
func hunt(g Grid, view *game.Board, fleet game.Fleet) {
	rows, cols := view.Rules.Rows(), view.Rules.Cols()
	for _, ship := range fleet {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				for _, o := range game.Orientations {
					start := game.Point{Row: row, Col: col}
					if game.IsOutOfBounds(o, start, ship.Size, rows, cols) {
						continue
					}
					span := game.Span(o, start, ship.Size)
					if slices.ContainsFunc(span, view.Fired) {
						continue
					}
					g.add(span, HuntWeight)
				}
			}
		}
	}
}

// target weights windows of each remaining ship's length through every confirmed hit,
// favouring the axis that already lines up more hits.
func target(g Grid, view *game.Board, fleet game.Fleet, hits []game.Point, sunk mapset.Set[game.Point]) {
	rows, cols := view.Rules.Rows(), view.Rules.Cols()
	for _, hit := range hits {
		for _, ship := range fleet {
			vertical, vOk := window(game.Vertical, hit, ship.Size, rows, cols)
			horizontal, hOk := window(game.Horizontal, hit, ship.Size, rows, cols)
			verticalBias, horizontalBias := bias(view, hit, ship.Size)

			if vOk {
				slide(g, view, sunk, game.Vertical, vertical, ship.Size, axisWeight(verticalBias, horizontalBias))
			}
			if hOk {
				slide(g, view, sunk, game.Horizontal, horizontal, ship.Size, axisWeight(horizontalBias, verticalBias))
			}
		}
	}
}

// window returns the start of a size-long window that starts at hit (not centred on it)
// along o, pulled back so it ends on the board. ok is false when the ship cannot fit along o at all.
func window(o game.Orientation, hit game.Point, size, rows, cols int) (start game.Point, ok bool) {
	start = hit
	if o == game.Vertical {
		if size > rows {
			return start, false
		}
		start.Row = min(hit.Row, rows-size)
	} else {
		if size > cols {
			return start, false
		}
		start.Col = min(hit.Col, cols-size)
	}
	return start, true
}

// bias counts the Hit cells in the vertical and horizontal windows of hit.
// An axis the ship cannot fit along counts zero.
func bias(view *game.Board, hit game.Point, size int) (vertical, horizontal int) {
	rows, cols := view.Rules.Rows(), view.Rules.Cols()
	if start, ok := window(game.Vertical, hit, size, rows, cols); ok {
		vertical = countHits(view, game.Vertical, start, size)
	}
	if start, ok := window(game.Horizontal, hit, size, rows, cols); ok {
		horizontal = countHits(view, game.Horizontal, start, size)
	}
	return vertical, horizontal
}

func countHits(view *game.Board, o game.Orientation, start game.Point, size int) int {
	n := 0
	for _, p := range game.Span(o, start, size) {
		if view.Status(p) == game.Hit {
			n++
		}
	}
	return n
}

func axisWeight(bias, other int) float64 {
	if bias > other {
		return BiasedWeight
	}
	return AxisWeight
}

// slide adds weight to every window from start backwards, one cell at a time,
// at most size windows and never past the board edge. Windows touching a miss
// or a sunk ship are skipped.
func slide(g Grid, view *game.Board, sunk mapset.Set[game.Point], o game.Orientation, start game.Point, size int, weight float64) {
	back := game.Point{Row: -o.Step().Row, Col: -o.Step().Col}
	for i := 0; i < size; i++ {
		span := game.Span(o, start, size)
		blocked := slices.ContainsFunc(span, func(p game.Point) bool {
			return view.Status(p) == game.Miss || sunk.Has(p)
		})
		if !blocked {
			g.add(span, weight)
		}

		start = start.Add(back)
		if start.Row < 0 || start.Col < 0 {
			break
		}
	}
}

// mask zeroes cells that can never be fired on again.
func mask(g Grid, view *game.Board, sunk mapset.Set[game.Point]) {
	for row := range g {
		for col := range g[row] {
			p := game.Point{Row: row, Col: col}
			if sunk.Has(p) || view.Fired(p) {
				g[row][col] = 0
			}
		}
	}
}

func highest(g Grid, view *game.Board) (float64, []game.Point) {
	var max float64
	for _, row := range g {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}

	var points []game.Point
	for row := range g {
		for col, v := range g[row] {
			p := game.Point{Row: row, Col: col}
			if v == max && !view.Fired(p) {
				points = append(points, p)
			}
		}
	}
	return max, points
}
