package agent

import (
	"multiply/experiments/metrics"
	"multiply/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns the baseline agent: it plays a uniformly random
// legal move. It owns its seeded source so experiment runs reproduce.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State) (game.Multiplier, metrics.SearchMetric, error) {
	successors := state.Successors()
	if len(successors) == 0 {
		return 0, metrics.SearchMetric{}, ErrNoMove
	}
	return successors[a.rng.Intn(len(successors))].Move, metrics.SearchMetric{}, nil
}
