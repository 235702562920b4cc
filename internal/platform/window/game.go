// Package window hosts the racer in a desktop window through Ebitengine.
// Ebitengine's fixed-rate Update drains the controller's pending tick, so the
// race runs at the configured TPS.
package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/racer"
)

// Options configures a window session.
type Options struct {
	Config  config.RacerConfig
	Runtime core.RuntimeConfig
	Audio   racer.Audio
	Logger  *log.Logger
	Title   string
}

// Game implements ebiten.Game around one racer controller.
type Game struct {
	ctrl    *racer.Controller
	sched   *racer.PendingScheduler
	hud     *hud
	sprites spriteCache
	logger  *log.Logger

	width, height int
	keys          []ebiten.Key
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game with an idle controller.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		sched:   &racer.PendingScheduler{},
		hud:     &hud{},
		sprites: make(spriteCache),
		logger:  logger,
		width:   int(opts.Config.Canvas.Width),
		height:  int(opts.Config.Canvas.Height),
	}
	g.ctrl = racer.NewController(racer.Options{
		Config:    opts.Config,
		Seed:      seed,
		Scheduler: g.sched,
		Display:   g.hud,
		Audio:     opts.Audio,
		Logger:    logger,
	})
	return g
}

// Update forwards key edges to the controller and runs the pending tick.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch k {
		case ebiten.KeyQ, ebiten.KeyEscape:
			g.ctrl.Stop()
			return ebiten.Termination
		case ebiten.KeyP:
			g.ctrl.TogglePause()
		case ebiten.KeyR:
			g.ctrl.Restart()
		case ebiten.KeyEnter, ebiten.KeySpace:
			if g.ctrl.State() == racer.StateGameOver {
				g.ctrl.Restart()
			}
		default:
			g.ctrl.KeyDown(k.String())
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.ctrl.KeyUp(k.String())
	}

	g.sched.RunPending()
	return nil
}

// Draw renders the race, the status line and any overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.ctrl.Render(newImageSurface(screen, g.sprites))

	ebitenutil.DebugPrintAt(screen, g.hud.status(), 8, 8)
	if lines := g.hud.overlay(g.ctrl.State()); lines != nil {
		drawCentered(screen, g.width, g.height, lines...)
	}
}

// Layout keeps the canvas at its logical size; Ebitengine scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Controller exposes the hosted controller.
func (g *Game) Controller() *racer.Controller {
	return g.ctrl
}

// Run opens the window, starts a race and blocks until the window is closed.
func Run(opts Options) error {
	cfg := opts.Runtime.Normalize()
	opts.Runtime = cfg
	if opts.Title == "" {
		opts.Title = "Lane Racer"
	}

	g := NewGame(opts)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	if err := g.ctrl.Start(); err != nil {
		return err
	}
	defer g.ctrl.Stop()

	g.logger.Info("window opened", "tps", cfg.TickRate)
	return ebiten.RunGame(g)
}
