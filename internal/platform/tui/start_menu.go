package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type menuOption struct {
	label  string
	preset config.DifficultyPreset
}

var menuOptions = []menuOption{
	{"Easy", config.DifficultyEasy},
	{"Normal", config.DifficultyNormal},
	{"Hard", config.DifficultyHard},
	{"Fixed speed", config.DifficultyFixed},
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// StartMenuModel lets the player choose a difficulty preset before play.
type StartMenuModel struct {
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	chosen   bool
	quitting bool
}

// NewStartMenuModel creates a menu with the cursor on the first preset.
func NewStartMenuModel(width, height int) StartMenuModel {
	return StartMenuModel{
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the model.
func (m StartMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StartMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(menuOptions)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// describe returns the one-line summary shown next to a preset.
func describe(p config.DifficultyPreset) string {
	if config.IsFixedPreset(p) {
		return "level never changes"
	}
	return fmt.Sprintf("start at level %d", config.StartLevelForPreset(p))
}

// View renders the preset list.
func (m StartMenuModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T E T R I S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range menuOptions {
		line := fmt.Sprintf("  %-12s %s", opt.label, describe(opt.preset))
		if i == m.cursor {
			line = menuSelectedStyle.Render(fmt.Sprintf("> %-12s %s", opt.label, describe(opt.preset)))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the chosen preset. ok is false while choosing or after quit.
func (m StartMenuModel) Selected() (preset config.DifficultyPreset, ok bool) {
	if !m.chosen {
		return "", false
	}
	return menuOptions[m.cursor].preset, true
}

// centerText pads s so that it sits in the middle of width columns.
func centerText(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// RunStartMenu shows the difficulty menu. ok is false when the player quit.
func RunStartMenu(width, height int) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewStartMenuModel(width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, isMenu := final.(StartMenuModel)
	if !isMenu {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
