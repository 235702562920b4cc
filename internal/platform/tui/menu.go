package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// MenuModel is the title screen: pick a difficulty, then race.
type MenuModel struct {
	presets  []config.DifficultyPreset
	cursor   int
	width    int
	height   int
	keys     KeyMap
	help     help.Model
	title    lipgloss.Style
	quitting bool
	selected *config.DifficultyPreset
}

// NewMenuModel creates a title screen with the cursor on initial.
func NewMenuModel(initial config.DifficultyPreset, cfg core.RuntimeConfig, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	m := MenuModel{
		presets: config.Presets(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorLane)),
	}
	for i, p := range m.presets {
		if p == initial {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		selected := m.presets[m.cursor]
		m.selected = &selected
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.title.Render("L A N E   R A C E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Dodge the traffic. Watch your fuel.", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Difficulty", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, p.Title()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.ShortHelpView(m.keys.MenuHelp()), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen yet.
func (m MenuModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
