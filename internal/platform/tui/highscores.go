package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

// HighScoresKeyMap defines the key bindings for the high score table.
type HighScoresKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HighScoresKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HighScoresKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultHighScoresKeyMap returns default key bindings.
func DefaultHighScoresKeyMap() HighScoresKeyMap {
	return HighScoresKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// HighScoreRows builds one table row per variant: built-in variants first,
// in their listed order, then any other variant found in the store.
func HighScoreRows(entries []storage.HighScoreEntry, variants []config.VariantInfo) []table.Row {
	byVariant := make(map[string]storage.HighScoreEntry, len(entries))
	for _, e := range entries {
		byVariant[e.Variant] = e
	}

	rows := make([]table.Row, 0, len(variants)+len(entries))
	known := make(map[string]bool, len(variants))
	for _, v := range variants {
		known[v.ID] = true
		e, ok := byVariant[v.ID]
		if !ok {
			rows = append(rows, table.Row{v.ID, v.Title, "-", ""})
			continue
		}
		rows = append(rows, table.Row{v.ID, v.Title, fmt.Sprintf("%d", e.Score), formatUpdated(e)})
	}
	for _, e := range entries {
		if known[e.Variant] {
			continue
		}
		rows = append(rows, table.Row{e.Variant, "", fmt.Sprintf("%d", e.Score), formatUpdated(e)})
	}
	return rows
}

func formatUpdated(e storage.HighScoreEntry) string {
	if e.UpdatedAt.IsZero() {
		return ""
	}
	return e.UpdatedAt.Format("Jan 02 15:04")
}

// HighScoresModel is the Bubble Tea model for the high score table.
type HighScoresModel struct {
	rows     []table.Row
	table    table.Model
	help     help.Model
	keys     HighScoresKeyMap
	width    int
	height   int
	quitting bool
}

// NewHighScoresModel creates a high score table model.
func NewHighScoresModel(entries []storage.HighScoreEntry, variants []config.VariantInfo, width, height int) HighScoresModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HighScoresModel{
		rows:   HighScoreRows(entries, variants),
		help:   h,
		keys:   DefaultHighScoresKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table sized to the window.
func (m *HighScoresModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Variant", Width: 12},
		{Title: "Title", Width: 20},
		{Title: "Best", Width: 8},
		{Title: "Updated", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m HighScoresModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the table.
func (m HighScoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling is handled by the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table.
func (m HighScoresModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("HIGH SCORES"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunHighScores shows the high score table until the user quits.
func RunHighScores(entries []storage.HighScoreEntry, variants []config.VariantInfo, width, height int) error {
	p := tea.NewProgram(
		NewHighScoresModel(entries, variants, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
