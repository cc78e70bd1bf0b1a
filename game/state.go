// Package game models the multiplication game: two players take turns
// multiplying a shared number by 2, 3 or 4. An even product costs the
// opponent a point, an odd product earns the mover a point, and the game
// ends as soon as the number reaches Target.
package game

import "fmt"

// State is a complete snapshot of one position.
// State is immutable - operations on State always return a new copy.
type State struct {
	CurrentNumber int
	HumanScore    int
	ComputerScore int
	CurrentPlayer Player
}

// New returns the starting position: scores at zero, first to move.
func New(startNumber int, first Player) State {
	return State{CurrentNumber: startNumber, CurrentPlayer: first}
}

// IsTerminal reports whether the game is over.
func (s State) IsTerminal() bool {
	return s.CurrentNumber >= Target
}

// Apply returns the state after the player on turn plays m. An even
// product takes a point from the mover's opponent, an odd product gives
// the mover a point; exactly one score changes by exactly one. The turn
// passes unless the product reaches Target. Apply panics if m is not a
// legal multiplier.
func (s State) Apply(m Multiplier) State {
	if !m.Valid() {
		panic(fmt.Sprintf("game: invalid multiplier %d", int(m)))
	}

	next := s
	next.CurrentNumber = s.CurrentNumber * int(m)

	if next.CurrentNumber%2 == 0 {
		if s.CurrentPlayer == Human {
			next.ComputerScore--
		} else {
			next.HumanScore--
		}
	} else {
		if s.CurrentPlayer == Human {
			next.HumanScore++
		} else {
			next.ComputerScore++
		}
	}

	if next.CurrentNumber < Target {
		next.CurrentPlayer = s.CurrentPlayer.Other()
	}
	return next
}

// Successor pairs a legal move with the state it leads to.
type Successor struct {
	Move  Multiplier
	State State
}

// Successors expands every legal move in Multipliers order. A terminal
// state has no moves and yields nil.
func (s State) Successors() []Successor {
	if s.IsTerminal() {
		return nil
	}
	successors := make([]Successor, 0, len(Multipliers))
	for _, m := range Multipliers {
		successors = append(successors, Successor{Move: m, State: s.Apply(m)})
	}
	return successors
}

// Outcome is the result of a game, decided purely by the score lead.
type Outcome int

const (
	Tie Outcome = iota
	HumanWins
	ComputerWins
)

func (o Outcome) String() string {
	switch o {
	case HumanWins:
		return "human wins"
	case ComputerWins:
		return "computer wins"
	default:
		return "tie"
	}
}

// Outcome reports the current score leader. For a terminal state this is
// the final result.
func (s State) Outcome() Outcome {
	switch {
	case s.HumanScore > s.ComputerScore:
		return HumanWins
	case s.ComputerScore > s.HumanScore:
		return ComputerWins
	default:
		return Tie
	}
}

func (s State) String() string {
	return fmt.Sprintf("number=%d human=%d computer=%d turn=%s",
		s.CurrentNumber, s.HumanScore, s.ComputerScore, s.CurrentPlayer)
}
