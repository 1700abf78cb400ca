package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/games/match3/layouts"
)

// StartSelection holds the board the user chose to start from.
type StartSelection struct {
	Layout string // Built-in layout name, "" for a random board
}

// layoutEntry is one row of the layout list.
type layoutEntry struct {
	name        string
	description string
}

// StartModel lets users choose between a random board and a built-in layout.
type StartModel struct {
	cursor         int
	layoutCursor   int
	inLayoutSelect bool
	layouts        []layoutEntry
	width          int
	height         int
	keyMapper      *KeyMapper
	selection      StartSelection
	choosing       bool
	quitting       bool
	back           bool
}

// NewStartModel creates a new start selection model.
func NewStartModel(width, height int) StartModel {
	names := layouts.Names()
	entries := make([]layoutEntry, 0, len(names))
	for _, name := range names {
		l, err := layouts.Builtin(name)
		if err != nil {
			continue
		}
		entries = append(entries, layoutEntry{name: l.Name, description: l.Description})
	}

	return StartModel{
		layouts:   entries,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m StartModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLayoutSelect {
			return m.handleLayoutKey(action)
		}
		return m.handleStartKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m StartModel) handleStartKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == 0 || len(m.layouts) == 0 {
			m.choosing = false
			m.selection = StartSelection{}
			return m, tea.Quit
		}
		m.inLayoutSelect = true
		m.layoutCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m StartModel) handleLayoutKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.layoutCursor > 0 {
			m.layoutCursor--
		}
	case MenuActionDown:
		if m.layoutCursor < len(m.layouts)-1 {
			m.layoutCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = StartSelection{Layout: m.layouts[m.layoutCursor].name}
		return m, tea.Quit
	case MenuActionBack:
		m.inLayoutSelect = false
	}

	return m, nil
}

// View renders the start or layout selection.
func (m StartModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	if m.inLayoutSelect {
		b.WriteString(centerText("SELECT LAYOUT", m.width))
		b.WriteString("\n\n")
		for i, l := range m.layouts {
			cursor := "  "
			if i == m.layoutCursor {
				cursor = "> "
			}
			b.WriteString(centerText(fmt.Sprintf("%s%-8s %s", cursor, l.name, l.description), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Start from:", m.width))
		b.WriteString("\n\n")
		for i, opt := range []string{"Random board", "Layout..."} {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(cursor+opt, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m StartModel) Selected() *StartSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m StartModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m StartModel) WantsBack() bool {
	return m.back
}

// RunStartSelector runs the start selection. A nil selection means the user
// went back or quit.
func RunStartSelector(cfg core.RuntimeConfig) (*StartSelection, error) {
	p := tea.NewProgram(
		NewStartModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(StartModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
