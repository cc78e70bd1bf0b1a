package agent

import (
	"multiply/experiments/metrics"
	"multiply/game"
	"multiply/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent that picks moves with the given
// searcher. The searcher's side decides whose lead it plays for, the
// computer's unless configured otherwise, no matter whose turn it is
// asked about.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.State) (game.Multiplier, metrics.SearchMetric, error) {
	result, metric := a.searcher.Search(state)
	if result.Move == 0 {
		return 0, metric, ErrNoMove
	}
	return result.Move, metric, nil
}
