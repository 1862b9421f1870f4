package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/snake"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one snake game.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	renderer   *Renderer
	clock      core.Clock
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	lastState  snake.State
	lastErr    error
	quitting   bool
}

// NewModel creates a model for game. A nil clock uses the monotonic clock;
// a nil logger discards output.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, clock core.Clock, logger *log.Logger) Model {
	if clock == nil {
		clock = core.NewMonotonicClock()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg = cfg.Normalized()
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		renderer:   NewRenderer(),
		clock:      clock,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		lastState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			m.logger.Debug("quit requested", "state", m.game.State())
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one engine frame with the input collected since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	st := m.game.Step(m.inputFrame, m.clock.Now())
	m.inputFrame.Clear()

	if st.State != m.lastState {
		m.logger.Debug("state changed", "from", m.lastState, "to", st.State, "mode", m.game.Mode())
		m.lastState = st.State
	}
	if err := m.game.Err(); err != m.lastErr {
		if err != nil {
			m.logger.Warn("session start failed", "error", err)
		}
		m.lastErr = err
	}
	if st.Died {
		f := m.game.Frame()
		m.logger.Info("snake died", "reason", string(f.DeathReason), "score", f.Score, "mode", f.Mode)
	}
	if st.GameOver && st.NewHighScore {
		m.logger.Info("high score beaten", "score", m.game.HighScore())
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, nil, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
