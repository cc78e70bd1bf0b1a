package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one completed search call.
type SearchMetric struct {
	Algorithm string
	Depth     int
	Nodes     int
	Duration  time.Duration
}

// MoveMetric ties a search to the move it produced within a game.
type MoveMetric struct {
	Step   int
	Player string
	Move   int
	Number int // current number after the move
	SearchMetric
}

// GameMetric summarizes a finished game.
type GameMetric struct {
	StartNumber    int
	StartingPlayer string
	Outcome        string
	HumanScore     int
	ComputerScore  int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates diagnostics for a single search call. Counting is
// safe from whichever goroutine runs the search.
type Collector interface {
	// Start clears the counters and stamps the search start time.
	Start(algorithm string, depth int)
	// AddNode counts one visited node, recursion base cases included.
	AddNode()
	Complete() SearchMetric
}

type collector struct {
	algorithm string
	depth     int
	startTime time.Time
	nodes     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, depth int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depth = depth
	m.nodes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Depth:     m.depth,
		Nodes:     int(m.nodes.Load()),
		Duration:  time.Since(m.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op Collector for searches nobody measures.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
