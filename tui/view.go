package tui

import (
	"fmt"
	"multiply/game"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle   = lipgloss.NewStyle().Bold(true)
	winStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lossStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	if m.phase == phaseSettings {
		return m.viewSettings()
	}
	return m.viewGame()
}

func (m model) viewSettings() string {
	rows := []struct {
		row   settingRow
		label string
		value string
	}{
		{rowNumber, "starting number", fmt.Sprintf("%d", m.number)},
		{rowFirst, "first player", m.first.String()},
		{rowAlgorithm, "algorithm", string(m.algorithm)},
		{rowDepth, "search depth", fmt.Sprintf("%d", m.depth)},
	}

	s := titleStyle.Render("MULTIPLICATION GAME") + "\n\n"
	for _, r := range rows {
		line := fmt.Sprintf("  %-16s %s", r.label, r.value)
		if r.row == m.row {
			line = selectedStyle.Render(fmt.Sprintf("> %-16s %s", r.label, r.value))
		}
		s += line + "\n"
	}
	s += "\n" + helpStyle.Render("up/down select   left/right change   enter start   q quit") + "\n"
	return s
}

func (m model) viewGame() string {
	board := fmt.Sprintf("Current number: %d\n", m.state.CurrentNumber)
	board += fmt.Sprintf("Human score:    %d\n", m.state.HumanScore)
	board += fmt.Sprintf("Computer score: %d", m.state.ComputerScore)

	s := titleStyle.Render("MULTIPLICATION GAME") + "\n"
	s += boardStyle.Render(board) + "\n"

	switch {
	case m.err != nil:
		s += lossStyle.Render(fmt.Sprintf("computer failed: %v", m.err)) + "\n"
	case m.phase == phaseOver:
		switch m.state.Outcome() {
		case game.HumanWins:
			s += statusStyle.Render("GAME OVER  ") + winStyle.Render("Human wins!") + "\n"
		case game.ComputerWins:
			s += statusStyle.Render("GAME OVER  ") + lossStyle.Render("Computer wins!") + "\n"
		default:
			s += statusStyle.Render("GAME OVER  It's a tie.") + "\n"
		}
	case m.thinking:
		s += statusStyle.Render("Computer is thinking...") + "\n"
	default:
		s += statusStyle.Render("Your turn: press 2, 3 or 4") + "\n"
	}

	if m.hasMetric {
		s += helpStyle.Render(fmt.Sprintf("visited nodes: %d   move time: %s",
			m.lastMetric.Nodes, m.lastMetric.Duration.Round(time.Microsecond))) + "\n"
	}

	if m.phase == phaseOver {
		s += helpStyle.Render("r restart   q quit") + "\n"
	} else {
		s += helpStyle.Render("q quit") + "\n"
	}
	return s
}
