package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/racer"
)

// chromeRows is the number of terminal rows used by the HUD and help lines.
const chromeRows = 2

// GameOptions configures a GameModel.
type GameOptions struct {
	Config   config.RacerConfig
	Runtime  core.RuntimeConfig
	Audio    racer.Audio        // nil is silent
	Logger   *log.Logger        // nil discards
	Renderer *lipgloss.Renderer // nil uses the default renderer
}

// GameModel is the Bubble Tea model hosting one racer controller.
type GameModel struct {
	ctrl    *racer.Controller
	sched   *racer.PendingScheduler
	hud     *hud
	painter *Painter
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	config core.RuntimeConfig
	canvas config.CanvasConfig
	view   core.Rect

	// Terminals send repeats but no releases: a steering key counts as held
	// until hold has passed since its last press.
	hold time.Duration
	held map[racer.Direction]time.Time
	now  func() time.Time

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The race starts in Init.
func NewGameModel(opts GameOptions) GameModel {
	cfg := opts.Runtime.Normalize()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	painter := NewPainter(opts.Renderer)

	sched := &racer.PendingScheduler{}
	h := newHUD(opts.Config.Session.InitialFuel, painter.Renderer())
	ctrl := racer.NewController(racer.Options{
		Config:    opts.Config,
		Seed:      cfg.Seed,
		Scheduler: sched,
		Display:   h,
		Audio:     opts.Audio,
		Logger:    logger,
	})

	m := GameModel{
		ctrl:    ctrl,
		sched:   sched,
		hud:     h,
		painter: painter,
		screen:  core.NewScreen(0, 0),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		config:  cfg,
		canvas:  opts.Config.Canvas,
		hold:    time.Duration(opts.Config.Input.KeyHoldMS) * time.Millisecond,
		held:    make(map[racer.Direction]time.Time),
		now:     time.Now,
	}
	m.layout(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts the race.
func (m GameModel) Init() tea.Cmd {
	if err := m.ctrl.Start(); err != nil {
		m.logger.Error("cannot start race", "err", err)
		return nil
	}
	return m.drain()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.releaseKeys()
		msg.run()
		return m, m.drain()
	}

	return m, nil
}

// drain turns the controller's pending invocation, if any, into a tick command.
func (m GameModel) drain() tea.Cmd {
	run := m.sched.Take()
	if run == nil {
		return nil
	}
	return frameCmd(m.config.TickRate, run)
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.ctrl.State()

	switch m.keys.GameAction(msg) {
	case core.ActionQuit:
		m.ctrl.Stop()
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil

	case core.ActionPause:
		m.ctrl.TogglePause()
		return m, m.drain()

	case core.ActionRestart:
		m.restart()
		return m, m.drain()

	case core.ActionConfirm:
		if state == racer.StateGameOver {
			m.restart()
		}
		return m, m.drain()

	case core.ActionBack:
		if state != racer.StateRunning {
			m.ctrl.Stop()
			m.backToMenu = true
		}
		return m, nil
	}

	if d, ok := racer.ParseKey(msg.String()); ok {
		m.ctrl.KeyDown(d.String())
		m.held[d] = m.now()
	}
	return m, nil
}

func (m GameModel) restart() {
	clear(m.held)
	m.ctrl.Restart()
}

// releaseKeys sends key-up for steering keys not repeated within the hold window.
func (m GameModel) releaseKeys() {
	now := m.now()
	for d, last := range m.held {
		if now.Sub(last) >= m.hold {
			m.ctrl.KeyUp(d.String())
			delete(m.held, d)
		}
	}
}

// layout fits the canvas into the terminal, keeping its aspect ratio with
// cells about twice as tall as they are wide.
func (m *GameModel) layout(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height

	rows := core.Max(height-chromeRows, 0)
	m.screen.Resize(width, rows)

	cols := int(m.canvas.Width * 2 * float64(rows) / m.canvas.Height)
	if cols > width {
		cols = width
		rows = int(float64(cols) * m.canvas.Height / (2 * m.canvas.Width))
	}
	m.view = core.NewRect((width-cols)/2, 0, cols, rows)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".racer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("racer_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the race and any overlay into the screen buffer.
func (m GameModel) draw() {
	m.screen.Clear()
	if m.view.W == 0 || m.view.H == 0 {
		return
	}
	m.ctrl.Render(NewCellSurface(m.screen, m.view, m.canvas.Width, m.canvas.Height))

	switch {
	case m.hud.over:
		m.drawOverlay("GAME OVER", m.hud.message,
			fmt.Sprintf("Score: %d", m.hud.finalScore), "R: restart  B: menu")
	case m.ctrl.State() == racer.StatePaused:
		m.drawOverlay("PAUSED", "", "P: resume", "B: menu")
	}
}

// drawOverlay draws a boxed message centred on the track.
func (m GameModel) drawOverlay(lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2

	r := core.NewRect(
		m.view.X+(m.view.W-boxW)/2,
		m.view.Y+(m.view.H-boxH)/2,
		boxW, boxH,
	)
	m.screen.DrawRect(r, core.Cell{Rune: ' ', Fg: core.ColorWhite, Bg: core.ColorBlack})
	m.screen.DrawBox(r)
	for i, l := range lines {
		x := r.X + (boxW-len([]rune(l)))/2
		m.screen.DrawText(x, r.Y+1+i, l)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.View(),
		m.painter.Render(m.screen),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
}

// Controller exposes the hosted controller.
func (m GameModel) Controller() *racer.Controller {
	return m.ctrl
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
