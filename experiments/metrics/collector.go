package metrics

import (
	"time"
)

type ShotMetric struct {
	Targeting  bool    // Mode the shot was chosen in
	Candidates int     // Cells tied at the maximum density
	MaxDensity float64 // Maximum density on the grid
	Redraws    int     // Draws discarded because the cell was already fired
	Duration   time.Duration
}

type MoveMetric struct {
	Step     int
	Player   int // Player ID
	Shot     string
	Hit      bool
	SunkShip string
	ShotMetric
}

type GameMetric struct {
	StartingPlayer int    // Player ID
	Winner         string // Player name, "" if the turn limit was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start()
	AddRedraw()
	Complete(targeting bool, candidates int, maxDensity float64) ShotMetric
}

type collector struct {
	startTime time.Time
	redraws   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.redraws = 0
}

func (m *collector) AddRedraw() {
	m.redraws++
}

func (m *collector) Complete(targeting bool, candidates int, maxDensity float64) ShotMetric {
	return ShotMetric{
		Targeting:  targeting,
		Candidates: candidates,
		MaxDensity: maxDensity,
		Redraws:    m.redraws,
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()     {}
func (m *dummyCollector) AddRedraw() {}
func (m *dummyCollector) Complete(targeting bool, candidates int, maxDensity float64) ShotMetric {
	return ShotMetric{}
}
