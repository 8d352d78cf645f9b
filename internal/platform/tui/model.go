package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/sim"
)

// helpHeight is the number of terminal rows reserved below the field.
const helpHeight = 1

// Model is the Bubble Tea model for one space garbage session.
type Model struct {
	session  sim.Options // Template; surface, input and seed are filled per world
	runtime  core.RuntimeConfig
	world    *sim.World
	screen   *core.Screen
	input    *core.InputQueue
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	err      error // Why there is no world, e.g. a terminal too small
	quitting bool
	over     bool // Game over already reported
}

// NewModel creates a model and starts a session on a rc.Rows x rc.Cols
// terminal. The session's Surface, Input and Seed are supplied by the model.
func NewModel(session sim.Options, rc core.RuntimeConfig) Model {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickInterval <= 0 {
		rc.TickInterval = session.Config.TickInterval()
	}
	logger := session.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		session: session,
		runtime: rc,
		input:   core.NewInputQueue(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
	m.help.Width = rc.Cols
	m.reset(rc.Rows, rc.Cols)
	return m
}

// reset throws the current world away and starts a new one sized to the
// terminal.
func (m *Model) reset(rows, cols int) {
	m.runtime.Rows, m.runtime.Cols = rows, cols
	m.input.Clear()
	m.over = false
	m.keys.Restart.SetEnabled(false)
	m.world = nil

	fieldRows := rows - helpHeight
	if fieldRows < 1 || cols < 1 {
		m.err = fmt.Errorf("terminal %dx%d is too small", cols, rows)
		return
	}
	m.screen = core.NewScreen(fieldRows, cols)

	opts := m.session
	opts.Surface = m.screen
	opts.Input = m.input
	opts.Seed = m.runtime.Seed
	opts.Logger = m.logger

	w, err := sim.New(opts)
	if err != nil {
		m.err = err
		m.logger.Warn("cannot start session", "rows", rows, "cols", cols, "err", err)
		return
	}
	m.err = nil
	m.world = w
	w.Start()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues ship controls; quit and restart are handled here.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Restart is only enabled once the ship is gone.
	if key.Matches(msg, m.keys.Restart) {
		m.runtime.Seed++
		m.reset(m.runtime.Rows, m.runtime.Cols)
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Push(action)
	}
	return m, nil
}

// handleResize starts over on the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Height == m.runtime.Rows && msg.Width == m.runtime.Cols && m.world != nil {
		return m, nil
	}
	m.help.Width = msg.Width
	m.reset(msg.Height, msg.Width)
	return m, nil
}

// handleTick advances the simulation one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.world != nil {
		m.world.Tick()

		if m.world.GameOver() && !m.over {
			m.over = true
			m.keys.Restart.SetEnabled(true)
			stats := m.world.Stats()
			m.logger.Info("game over",
				"year", stats.Year,
				"ticks", stats.Ticks,
				"shots", stats.Shots,
				"destroyed", stats.Destroyed,
			)
		}
	}

	return m, tickCmd(m.runtime.TickInterval)
}

// Stats returns the counters of the current session.
func (m Model) Stats() sim.Stats {
	if m.world == nil {
		return sim.Stats{}
	}
	return m.world.Stats()
}

// View renders the field and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(RenderScreen(m.screen))
	}
	b.WriteString("\n")
	if m.over {
		stats := m.Stats()
		b.WriteString(statsStyle.Render(fmt.Sprintf("year %d  shots %d  destroyed %d  ", stats.Year, stats.Shots, stats.Destroyed)))
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the Bubble Tea program and returns the final session counters.
func Run(session sim.Options, rc core.RuntimeConfig) (sim.Stats, error) {
	p := tea.NewProgram(
		NewModel(session, rc),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return sim.Stats{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return sim.Stats{}, nil
	}
	return m.Stats(), nil
}
