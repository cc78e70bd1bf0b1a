// Package engine drives complete games between two agents.
package engine

import (
	"fmt"
	"multiply/experiments/metrics"
	"multiply/game"
	"multiply/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

// MaxSteps caps a runaway game. The number at least doubles every move, so
// real games end far sooner.
const MaxSteps = 64

type Engine struct {
	State  game.State
	Agents map[game.Player]agent.Agent
}

// New returns an engine that plays out state with one agent per side.
func New(state game.State, human, computer agent.Agent) *Engine {
	if human == nil || computer == nil {
		panic("both sides need an agent")
	}
	return &Engine{
		State: state,
		Agents: map[game.Player]agent.Agent{
			game.Human:    human,
			game.Computer: computer,
		},
	}
}

// Run executes the game loop until the game is over and reports the
// outcome together with per-game and per-move metrics.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	startTime := time.Now()
	startNumber := e.State.CurrentNumber
	startingPlayer := e.State.CurrentPlayer

	log.Info().Msgf("%s is starting at %d", startingPlayer, startNumber)

	step := 0
	var moveMetrics []metrics.MoveMetric
	for !e.State.IsTerminal() && step < MaxSteps {
		mover := e.State.CurrentPlayer

		move, searchMetric, err := e.Agents[mover].FindMove(e.State)
		if err != nil {
			return game.Tie, metrics.GameMetric{}, moveMetrics,
				fmt.Errorf("%s agent failed at step %d: %w", mover, step+1, err)
		}

		e.State = e.State.Apply(move)
		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover.String(),
			Move:         int(move),
			Number:       e.State.CurrentNumber,
			SearchMetric: searchMetric,
		})

		log.Debug().Msgf("step %d: %s played %s, %s", step, mover, move, e.State)
	}

	outcome := e.State.Outcome()
	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		StartNumber:    startNumber,
		StartingPlayer: startingPlayer.String(),
		Outcome:        outcome.String(),
		HumanScore:     e.State.HumanScore,
		ComputerScore:  e.State.ComputerScore,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     step,
	}

	log.Info().Msgf("game over after %d moves: %s", step, outcome)

	return outcome, gameMetric, moveMetrics, nil
}
