package searcher

import (
	"math"
	"multiply/game"
)

// alphabeta is minimax with cutoffs. alpha carries the best score the
// maximizing side can already force, beta the minimizing side's. Once
// alpha >= beta the remaining successors cannot change the root decision
// and the loop stops early.
func (s *Searcher) alphabeta(state game.State, depth, alpha, beta int, maximizing bool) Result {
	s.collector.AddNode()

	if depth == 0 || state.IsTerminal() {
		return Result{Score: state.Evaluate()}
	}

	var best Result
	if maximizing {
		best.Score = math.MinInt
		for _, successor := range state.Successors() {
			result := s.alphabeta(successor.State, depth-1, alpha, beta, false)
			if result.Score > best.Score {
				best = Result{Move: successor.Move, Score: result.Score}
			}
			alpha = max(alpha, best.Score)
			if alpha >= beta {
				break
			}
		}
	} else {
		best.Score = math.MaxInt
		for _, successor := range state.Successors() {
			result := s.alphabeta(successor.State, depth-1, alpha, beta, true)
			if result.Score < best.Score {
				best = Result{Move: successor.Move, Score: result.Score}
			}
			beta = min(beta, best.Score)
			if alpha >= beta {
				break
			}
		}
	}
	return best
}
