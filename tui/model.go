// Package tui is the interactive terminal front-end: pick the settings,
// then take turns against the computer.
package tui

import (
	"multiply/experiments/metrics"
	"multiply/game"
	"multiply/searcher"
	"multiply/searcher/agent"
	"multiply/utils"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// moveDelay keeps the computer from answering in the same frame as the
// player's move; a short beat makes the exchange readable.
const moveDelay = 500 * time.Millisecond

type phase int

const (
	phaseSettings phase = iota
	phasePlaying
	phaseOver
)

// settingRow indexes the adjustable fields on the settings screen.
type settingRow int

const (
	rowNumber settingRow = iota
	rowFirst
	rowAlgorithm
	rowDepth
	rowCount
)

var algorithms = []searcher.Algorithm{searcher.Minimax, searcher.AlphaBeta}

// computerMoveMsg delivers the computer's reply from its command.
type computerMoveMsg struct {
	move   game.Multiplier
	metric metrics.SearchMetric
	err    error
}

type model struct {
	phase phase

	// settings
	row       settingRow
	number    int
	first     game.Player
	algorithm searcher.Algorithm
	depth     int

	// play
	state      game.State
	computer   agent.Agent
	thinking   bool
	lastMetric metrics.SearchMetric
	hasMetric  bool
	err        error
}

func initialModel(number int, first game.Player, algorithm searcher.Algorithm, depth int) model {
	return model{
		number:    utils.Clamp(number, game.MinStartNumber, game.MaxStartNumber),
		first:     first,
		algorithm: algorithm,
		depth:     max(depth, 0),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseSettings:
			return m.updateSettings(msg)
		case phasePlaying:
			return m.updatePlaying(msg)
		default:
			return m.updateOver(msg)
		}
	case computerMoveMsg:
		return m.applyComputerMove(msg)
	}
	return m, nil
}

func (m model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < rowCount-1 {
			m.row++
		}
	case "left", "h":
		m = m.adjust(-1)
	case "right", "l":
		m = m.adjust(1)
	case "enter":
		return m.startGame()
	}
	return m, nil
}

// adjust changes the focused setting by one step in either direction.
func (m model) adjust(delta int) model {
	switch m.row {
	case rowNumber:
		m.number = utils.Clamp(m.number+delta, game.MinStartNumber, game.MaxStartNumber)
	case rowFirst:
		m.first = m.first.Other()
	case rowAlgorithm:
		i := utils.FindIndex(algorithms, m.algorithm)
		m.algorithm = algorithms[(i+len(algorithms)+delta)%len(algorithms)]
	case rowDepth:
		if next := m.depth + delta; next >= 0 {
			m.depth = next
		}
	}
	return m
}

func (m model) startGame() (tea.Model, tea.Cmd) {
	m.state = game.New(m.number, m.first)
	m.computer = agent.NewSearchAgent(searcher.New(m.algorithm,
		searcher.WithDepth(m.depth), searcher.WithMetrics()))
	m.hasMetric = false
	m.err = nil
	m.phase = phasePlaying

	if m.state.CurrentPlayer == game.Computer {
		m.thinking = true
		return m, m.computerMoveCmd()
	}
	m.thinking = false
	return m, nil
}

func (m model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.thinking {
		return m, nil
	}
	switch msg.String() {
	case "2", "3", "4":
		move := game.Multiplier(msg.String()[0] - '0')
		m.state = m.state.Apply(move)
		if m.state.IsTerminal() {
			m.phase = phaseOver
			return m, nil
		}
		m.thinking = true
		return m, m.computerMoveCmd()
	}
	return m, nil
}

// computerMoveCmd runs the search off the render loop, after moveDelay.
func (m model) computerMoveCmd() tea.Cmd {
	state := m.state
	computer := m.computer
	return tea.Tick(moveDelay, func(time.Time) tea.Msg {
		move, metric, err := computer.FindMove(state)
		return computerMoveMsg{move: move, metric: metric, err: err}
	})
}

func (m model) applyComputerMove(msg computerMoveMsg) (tea.Model, tea.Cmd) {
	m.thinking = false
	if msg.err != nil {
		// A searcher that declines to move mid-game is a configuration
		// problem; show it instead of crashing the terminal.
		m.err = msg.err
		m.phase = phaseOver
		return m, nil
	}

	m.state = m.state.Apply(msg.move)
	m.lastMetric = msg.metric
	m.hasMetric = true
	if m.state.IsTerminal() {
		m.phase = phaseOver
	}
	return m, nil
}

func (m model) updateOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "r" {
		m.phase = phaseSettings
		m.row = rowNumber
	}
	return m, nil
}

// Run starts the interactive game with the given initial settings.
func Run(number int, first game.Player, algorithm searcher.Algorithm, depth int) error {
	p := tea.NewProgram(initialModel(number, first, algorithm, depth), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
