// Package experiments runs headless measurement suites and stores their
// records as CSV, one timestamped directory per run.
package experiments

import (
	"fmt"
	"multiply/engine"
	"multiply/experiments/metrics"
	"multiply/game"
	"multiply/searcher"
	"multiply/searcher/agent"
)

// Names lists the runnable experiments.
func Names() []string {
	return []string{"equivalence", "matchup"}
}

// Run executes the named experiment, writing records under outDir.
func Run(name, outDir string, seed uint64) error {
	switch name {
	case "equivalence":
		return Equivalence(outDir)
	case "matchup":
		return Matchup(outDir, seed)
	}
	return fmt.Errorf("unknown experiment %q (have %v)", name, Names())
}

// buildAgent turns a recorded config back into a playing agent taking the
// given side, so a human-side searcher minimizes the evaluation its
// computer-side twin maximizes.
func buildAgent(config metrics.AgentConfig, side game.Player) agent.Agent {
	if config.Kind == "random" {
		return agent.NewRandomAgent(config.Seed)
	}

	options := []searcher.Option{searcher.WithMetrics(), searcher.WithSide(side)}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	return agent.NewSearchAgent(searcher.New(searcher.Algorithm(config.Algorithm), options...))
}

// runGame executes a single game between two agents.
func runGame(humanAgent, computerAgent agent.Agent, startNumber int, first game.Player) (metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.New(game.New(startNumber, first), humanAgent, computerAgent)
	_, gameMetric, moveMetrics, err := e.Run()
	return gameMetric, moveMetrics, err
}
