package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 26, TickRate: 60, Seed: 42}
	return NewModel(tetris.New(config.DefaultTetrisConfig()), store, cfg, nil)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelStartsOnEnter(t *testing.T) {
	m := newTestModel(t, nil)
	if m.gameState.Running {
		t.Fatal("game should start idle")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := send(t, m, TickMsg{})
	if !m.gameState.Running {
		t.Error("expected running after enter and a tick")
	}
	if cmd == nil {
		t.Error("tick loop should continue while running")
	}
}

func TestModelStopsTickingAtGameOver(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	var cmd tea.Cmd
	for rangeIdx := 0; rangeIdx < 200; rangeIdx++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
		m, cmd = send(t, m, TickMsg{})
		if m.gameState.GameOver {
			break
		}
	}
	if !m.gameState.GameOver {
		t.Fatal("game did not end")
	}
	if cmd != nil || m.ticking {
		t.Fatal("tick loop should stop after game over")
	}

	// Stray ticks are ignored
	m, cmd = send(t, m, TickMsg{})
	if cmd != nil {
		t.Error("stopped loop scheduled another tick")
	}

	// Restart re-arms the loop
	m, cmd = send(t, m, runeKey('r'))
	if cmd == nil || !m.ticking {
		t.Fatal("restart should re-arm the tick loop")
	}
	m, _ = send(t, m, TickMsg{})
	if m.gameState.GameOver || !m.gameState.Running || m.gameState.Score != 0 {
		t.Errorf("after restart: %+v", m.gameState)
	}
}

func TestModelAppliesKeysInPressOrder(t *testing.T) {
	m := newTestModel(t, nil)
	game := m.game.(*tetris.Game)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg{})

	// Two presses within one tick move twice
	x := game.Snapshot().Current.X
	m, _ = send(t, m, runeKey('h'))
	m, _ = send(t, m, runeKey('h'))
	m, _ = send(t, m, TickMsg{})
	if got := game.Snapshot().Current.X; got != x-2 {
		t.Fatalf("x = %d after two lefts, want %d", got, x-2)
	}

	// The drop lands first, so the move applies to the next piece
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = send(t, m, runeKey('l'))
	m, _ = send(t, m, TickMsg{})
	snap := game.Snapshot()
	if !snap.HasCurrent || snap.Current.X != tetris.SpawnX+1 {
		t.Errorf("next piece x = %d, want %d", snap.Current.X, tetris.SpawnX+1)
	}
	if m.gameState.Score == 0 {
		t.Error("hard drop should have scored")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = send(t, m, TickMsg{})
	score := m.gameState.Score

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = send(t, m, TickMsg{})
	if !m.gameState.Running || m.gameState.Score != score {
		t.Errorf("resize reset the game: %+v", m.gameState)
	}
	if m.screen.Width() != 100 {
		t.Errorf("screen width = %d, want 100", m.screen.Width())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, nil)
	short := m.screen.Height()

	m, _ = send(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("help should expand")
	}
	if m.screen.Height() >= short {
		t.Errorf("full help should take rows from the play area: %d >= %d", m.screen.Height(), short)
	}
	if !strings.Contains(m.View(), "rotate back") {
		t.Error("full help missing from view")
	}
}

func TestModelQuitSavesPreferences(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	for rangeIdx := 0; rangeIdx < 2; rangeIdx++ {
		m, _ = send(t, m, runeKey('+'))
		m, _ = send(t, m, TickMsg{})
	}

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}

	prefs, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences() failed: %v", err)
	}
	if prefs.StartLevel != 3 || prefs.TickRate != 60 {
		t.Errorf("saved %+v, want level 3 at 60 fps", prefs)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "AB", core.ColorRed)
	s.DrawText(3, 1, "cd")
	out := RenderScreen(s)
	if !strings.Contains(out, "AB") || !strings.Contains(out, "cd") {
		t.Errorf("rendered output lost text: %q", out)
	}
}
