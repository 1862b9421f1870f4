package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

func TestHighScoreRows(t *testing.T) {
	variants := []config.VariantInfo{
		{ID: "neon", Title: "Neon Snake"},
		{ID: "classic", Title: "Classic Snake"},
	}
	entries := []storage.HighScoreEntry{
		{Variant: "imported", Score: 500},
		{Variant: "neon", Score: 120, UpdatedAt: time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)},
	}

	rows := HighScoreRows(entries, variants)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	expected := [][]string{
		{"neon", "Neon Snake", "120", "Mar 04 10:30"},
		{"classic", "Classic Snake", "-", ""},
		{"imported", "", "500", ""},
	}
	for i, want := range expected {
		for j, cell := range want {
			if rows[i][j] != cell {
				t.Errorf("rows[%d][%d] = %q, expected %q", i, j, rows[i][j], cell)
			}
		}
	}
}

func TestHighScoresModelQuit(t *testing.T) {
	m := NewHighScoresModel(nil, config.Variants(), 80, 24)
	if len(m.rows) != len(config.Variants()) {
		t.Errorf("expected one row per variant, got %d", len(m.rows))
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(HighScoresModel).View() != "" {
		t.Error("View after quit should be empty")
	}
}
