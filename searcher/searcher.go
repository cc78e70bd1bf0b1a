// Package searcher picks moves for the multiplication game by
// depth-limited game-tree search. Two interchangeable recursions are
// provided, plain minimax and alpha-beta pruning. Both expand moves in the
// same order and only ever replace the incumbent on a strictly better
// score, so they choose the same move with the same score; alpha-beta just
// proves it while visiting fewer nodes.
package searcher

import (
	"math"
	"multiply/experiments/metrics"
	"multiply/game"
)

type Option func(s *Searcher)

// Searcher runs one configured search algorithm. Each Search call resets
// the attached collector, so a metric always describes a single call.
type Searcher struct {
	algorithm Algorithm
	depth     int
	side      game.Player
	collector metrics.Collector
}

// WithDepth sets the search depth. Zero is allowed: the search then defers
// to the evaluation without choosing a move. Negative depths are ignored.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

// WithSide sets the player the search chooses moves for. The computer is
// the default and maximizes the evaluation; searching for the human
// minimizes it instead.
func WithSide(side game.Player) Option {
	return func(s *Searcher) {
		s.side = side
	}
}

// WithMetrics attaches a collector so Search reports how many nodes it
// visited and how long it took.
func WithMetrics() Option {
	return func(s *Searcher) {
		s.collector = metrics.NewCollector()
	}
}

func New(algorithm Algorithm, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		algorithm: algorithm,
		depth:     DefaultDepth,
		side:      game.Computer,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Search picks the best move from state for the searcher's side, the
// computer unless WithSide says otherwise. The side is fixed by
// configuration regardless of who holds the turn at the root.
func (s *Searcher) Search(state game.State) (Result, metrics.SearchMetric) {
	s.collector.Start(string(s.algorithm), s.depth)

	maximizing := s.side == game.Computer
	var result Result
	switch s.algorithm {
	case Minimax:
		result = s.minimax(state, s.depth, maximizing)
	default:
		result = s.alphabeta(state, s.depth, math.MinInt, math.MaxInt, maximizing)
	}
	return result, s.collector.Complete()
}
