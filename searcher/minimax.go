package searcher

import (
	"math"
	"multiply/game"
)

// minimax fully expands the move tree down to the depth limit. maximizing
// is true when the node plays for the computer. The incumbent only changes
// on a strictly better score, so equal scores keep the first expanded
// move.
func (s *Searcher) minimax(state game.State, depth int, maximizing bool) Result {
	s.collector.AddNode()

	if depth == 0 || state.IsTerminal() {
		return Result{Score: state.Evaluate()}
	}

	var best Result
	if maximizing {
		best.Score = math.MinInt
		for _, successor := range state.Successors() {
			result := s.minimax(successor.State, depth-1, false)
			if result.Score > best.Score {
				best = Result{Move: successor.Move, Score: result.Score}
			}
		}
	} else {
		best.Score = math.MaxInt
		for _, successor := range state.Successors() {
			result := s.minimax(successor.State, depth-1, true)
			if result.Score < best.Score {
				best = Result{Move: successor.Move, Score: result.Score}
			}
		}
	}
	return best
}
