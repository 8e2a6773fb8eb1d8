package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func sendMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(MenuModel)
	}
	return m, cmd
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want MenuChoice
	}{
		{"play is default", []string{"enter"}, MenuChoicePlay},
		{"scores", []string{"down", "enter"}, MenuChoiceScores},
		{"quit entry", []string{"down", "down", "enter"}, MenuChoiceQuit},
		{"cursor stops at bottom", []string{"down", "down", "down", "down", "up", "enter"}, MenuChoiceScores},
		{"cursor stops at top", []string{"up", "up", "enter"}, MenuChoicePlay},
		{"tab opens scores", []string{"tab"}, MenuChoiceScores},
		{"q quits", []string{"q"}, MenuChoiceQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msgs := make([]tea.Msg, len(tc.keys))
			for i, k := range tc.keys {
				msgs[i] = keyMsg(k)
			}
			m, cmd := sendMenu(t, NewMenuModel(nil, "flappy", testRuntime()), msgs...)
			if m.Choice() != tc.want {
				t.Errorf("choice = %v, expected %v", m.Choice(), tc.want)
			}
			if cmd == nil {
				t.Error("a choice should end the menu program")
			}
		})
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if strings.Contains(NewMenuModel(store, "flappy", testRuntime()).View(), "Best:") {
		t.Error("no best score should be shown for an empty store")
	}

	store.SaveScore("flappy", 14)
	view := NewMenuModel(store, "flappy", testRuntime()).View()
	if !strings.Contains(view, "Best: 14") {
		t.Errorf("menu should show the best score:\n%s", view)
	}
}

func TestMenuResize(t *testing.T) {
	m, _ := sendMenu(t, NewMenuModel(nil, "flappy", testRuntime()), tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config after resize = %+v", cfg)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("overlong text should be unchanged, got %q", got)
	}
}
