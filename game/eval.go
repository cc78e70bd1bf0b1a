package game

// WinScore is the terminal evaluation magnitude. It is far larger than any
// point lead a finite game can build, so a decided game always outranks a
// heuristic score.
const WinScore = 999999

// Evaluate scores the state from the computer's perspective: positive
// favors the computer, negative the human. A terminal state collapses to
// +-WinScore for the leader, 0 for a tie; otherwise the score is the raw
// point difference.
func (s State) Evaluate() int {
	if s.IsTerminal() {
		switch {
		case s.HumanScore > s.ComputerScore:
			return -WinScore
		case s.ComputerScore > s.HumanScore:
			return WinScore
		default:
			return 0
		}
	}
	return s.ComputerScore - s.HumanScore
}
