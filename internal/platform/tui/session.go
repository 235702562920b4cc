package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/racer"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Config   config.RacerConfig      // Base configuration; the chosen preset is applied on top
	Preset   config.DifficultyPreset // Initially highlighted preset
	Runtime  core.RuntimeConfig
	Audio    racer.Audio
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
}

// SessionModel manages the full racer session flow: menu -> race -> menu.
// This is the top-level model for both local and SSH play.
type SessionModel struct {
	opts      SessionOptions
	menu      MenuModel
	gameModel *GameModel
	inGame    bool
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Preset, opts.Runtime, opts.Renderer),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		cfg := m.opts.Config
		config.ApplyRacerPreset(&cfg, *selected)
		m.opts.Preset = *selected

		m.opts.Logger.Info("race selected", "difficulty", selected.Title())
		gameModel := NewGameModel(GameOptions{
			Config:   cfg,
			Runtime:  m.opts.Runtime,
			Audio:    m.opts.Audio,
			Logger:   m.opts.Logger,
			Renderer: m.opts.Renderer,
		})
		m.gameModel = &gameModel
		m.inGame = true

		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		m.menu = NewMenuModel(m.opts.Preset, m.opts.Runtime, m.opts.Renderer)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.menu.View()
}

// InGame reports whether a race is on screen.
func (m SessionModel) InGame() bool {
	return m.inGame
}

// Run starts a local terminal session and blocks until the player quits.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
