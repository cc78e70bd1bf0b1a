package searcher

import (
	"fmt"
	"multiply/game"
	"strings"
)

// Algorithm selects the search recursion.
type Algorithm string

const (
	Minimax   Algorithm = "minimax"
	AlphaBeta Algorithm = "alpha-beta"
)

// ParseAlgorithm maps a configuration name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(name)) {
	case Minimax:
		return Minimax, nil
	case AlphaBeta:
		return AlphaBeta, nil
	}
	return "", fmt.Errorf("unknown algorithm %q", name)
}

// DefaultDepth bounds the recursion when the caller does not pick a depth.
const DefaultDepth = 10

// Result is a finished search: the move to play and the score backing it.
// Move is zero when there was nothing to choose, either because the root
// was terminal or because the search ran at depth zero.
type Result struct {
	Move  game.Multiplier
	Score int
}
