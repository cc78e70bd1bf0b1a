// Package agent puts move selection behind one interface so the engine
// and the front-end do not care how a move was chosen.
package agent

import (
	"errors"
	"multiply/experiments/metrics"
	"multiply/game"
)

// ErrNoMove reports that a position offers nothing to play: the game is
// already over, or the search was configured not to pick a move.
var ErrNoMove = errors.New("agent: no move available")

type Agent interface {
	// FindMove returns the move to play from state and the search metrics
	// behind it (zero for agents that do not search).
	FindMove(state game.State) (game.Multiplier, metrics.SearchMetric, error)
}
