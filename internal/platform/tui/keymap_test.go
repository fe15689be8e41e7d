package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyMapRestartOnlyAfterGameOver(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	keys := DefaultKeyMap()

	if key.Matches(enter, keys.Restart) {
		t.Error("restart should be disabled while playing")
	}
	if !key.Matches(enter, keys.forGameOver(true).Restart) {
		t.Error("restart should match enter after game over")
	}
	if key.Matches(enter, keys.Restart) {
		t.Error("forGameOver should return a copy")
	}
}

func TestKeyMapLettersAreNotReserved(t *testing.T) {
	keys := DefaultKeyMap().forGameOver(true)
	for r := 'a'; r <= 'z'; r++ {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if key.Matches(msg, keys.Quit) || key.Matches(msg, keys.Restart) {
			t.Errorf("letter %q is bound to a platform key", r)
		}
	}
}
