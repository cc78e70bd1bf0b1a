package game

import "fmt"

// Target ends the game: a state whose current number reaches it is terminal.
const Target = 1200

// Bounds for the starting number offered to players. New accepts any
// positive number; these only constrain the configuration surface.
const (
	MinStartNumber = 8
	MaxStartNumber = 18
)

// Player identifies one of the two sides. The zero value is Human.
type Player int

const (
	Human Player = iota
	Computer
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == Human {
		return Computer
	}
	return Human
}

func (p Player) String() string {
	if p == Computer {
		return "computer"
	}
	return "human"
}

// Multiplier is a move: the factor the player on turn multiplies the
// current number by. The zero value means no move was chosen.
type Multiplier int

// Multipliers lists the legal moves in the order they are expanded.
var Multipliers = []Multiplier{2, 3, 4}

// Valid reports whether m is a playable multiplier.
func (m Multiplier) Valid() bool {
	return m == 2 || m == 3 || m == 4
}

func (m Multiplier) String() string {
	return fmt.Sprintf("x%d", int(m))
}
