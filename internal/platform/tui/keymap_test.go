package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{"j", runeKey('j'), core.ActionSoftDrop},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW},
		{"x", runeKey('x'), core.ActionRotateCW},
		{"k", runeKey('k'), core.ActionRotateCW},
		{"z", runeKey('z'), core.ActionRotateCCW},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionHardDrop},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"plus", runeKey('+'), core.ActionLevelUp},
		{"equals", runeKey('='), core.ActionLevelUp},
		{"minus", runeKey('-'), core.ActionLevelDown},
		{"underscore", runeKey('_'), core.ActionLevelDown},
		{"help is not an action", runeKey('?'), core.ActionNone},
		{"unbound", runeKey('w'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if quit {
				t.Errorf("MapKey(%q) reported quit", tt.msg.String())
			}
			if got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, quit := km.MapKey(msg)
		if !quit || action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v, %v; want Quit, true", msg.String(), action, quit)
		}
	}
}

func TestHelpListsEveryBinding(t *testing.T) {
	km := DefaultKeyMap()
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 13 {
		t.Errorf("full help has %d bindings, want 13", n)
	}
}
