// Package racer implements the lane racer game loop: a car dodging falling
// obstacles on a scrolling track while its fuel runs down.
//
// The Controller owns all game state and runs one tick at a time through a
// host-supplied Scheduler. Hosts deliver key events, drain the scheduler and
// draw through a Surface; they never mutate game state directly.
package racer

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/config"
)

// ErrNotIdle is returned by Start when a race is already in progress or over.
var ErrNotIdle = errors.New("racer: start requires the idle state")

// Options configures a Controller.
type Options struct {
	Config    config.RacerConfig
	Seed      int64 // 0 means seed from the clock
	Scheduler Scheduler
	Display   Display     // nil means NopDisplay
	Audio     Audio       // nil means NopAudio
	Logger    *log.Logger // nil discards
}

// Controller runs the per-tick pipeline and the Idle/Running/Paused/GameOver
// lifecycle.
type Controller struct {
	cfg     config.RacerConfig
	sched   Scheduler
	display Display
	audio   Audio
	logger  *log.Logger

	seed  int64
	races int64 // Completed starts, mixed into the seed of each race

	state  State
	reason GameOverReason
	gen    uint64 // Bumped on every start/stop/pause so stale ticks are ignored

	input   InputState
	player  PlayerCar
	field   *ObstacleField
	track   TrackScroller
	session GameSession
}

// NewController creates a controller in the Idle state.
func NewController(opts Options) *Controller {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = &PendingScheduler{}
	}
	if opts.Display == nil {
		opts.Display = NopDisplay{}
	}
	if opts.Audio == nil {
		opts.Audio = NopAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	c := &Controller{
		cfg:     opts.Config,
		sched:   opts.Scheduler,
		display: opts.Display,
		audio:   opts.Audio,
		logger:  opts.Logger,
		seed:    opts.Seed,
		state:   StateIdle,
	}
	c.player = NewPlayerCar(c.cfg.Player, c.cfg.Canvas)
	c.field = NewObstacleField(c.seed, c.cfg.Obstacles, c.cfg.Canvas)
	c.track = NewTrackScroller(c.cfg.Track)
	c.session.Reset(c.cfg.Session.InitialFuel)
	return c
}

// Start begins a fresh race. It is only valid from Idle.
func (c *Controller) Start() error {
	if c.state != StateIdle {
		return ErrNotIdle
	}

	c.session.Reset(c.cfg.Session.InitialFuel)
	c.player.Reset(c.cfg.Player, c.cfg.Canvas)
	c.field.Reset(c.seed + c.races)
	c.track.Reset()
	c.races++

	c.state = StateRunning
	c.reason = ReasonNone
	c.gen++

	c.display.HideGameOver()
	c.display.ShowScore(c.session.Score)
	c.display.ShowFuel(c.session.FuelDisplay())

	c.scheduleNext()
	c.audio.StartAmbient()

	c.logger.Debug("race started", "race", c.races)
	return nil
}

// Stop ends scheduling and returns to Idle. Calling it from Idle does nothing.
// The game-over display, if shown, stays up until the next Start.
func (c *Controller) Stop() {
	if c.state == StateIdle {
		return
	}

	wasRunning := c.state == StateRunning
	c.state = StateIdle
	c.gen++
	c.input.Reset()

	// Paused and GameOver have already silenced the ambient loop.
	if wasRunning {
		c.audio.StopAmbient()
	}
	c.logger.Debug("race stopped", "score", c.session.Score)
}

// Restart is Stop followed by Start.
func (c *Controller) Restart() {
	c.Stop()
	//nolint:errcheck // Stop always leaves the controller Idle
	c.Start()
}

// Pause suspends a running race. It reports whether the state changed.
func (c *Controller) Pause() bool {
	if c.state != StateRunning {
		return false
	}
	c.state = StatePaused
	c.gen++
	c.audio.StopAmbient()
	return true
}

// Resume continues a paused race. It reports whether the state changed.
func (c *Controller) Resume() bool {
	if c.state != StatePaused {
		return false
	}
	c.state = StateRunning
	c.gen++
	c.scheduleNext()
	c.audio.StartAmbient()
	return true
}

// TogglePause pauses a running race or resumes a paused one.
func (c *Controller) TogglePause() bool {
	if c.state == StatePaused {
		return c.Resume()
	}
	return c.Pause()
}

// scheduleNext asks the host for exactly one more tick of the current run.
func (c *Controller) scheduleNext() {
	gen := c.gen
	c.sched.Schedule(func() { c.frame(gen) })
}

// frame is the scheduled entry point. Ticks from an earlier run or delivered
// after a stop or pause are dropped.
func (c *Controller) frame(gen uint64) {
	if gen != c.gen || c.state != StateRunning {
		return
	}
	if c.Step() == OutcomeContinue {
		c.scheduleNext()
	}
}

// Step runs one tick of the update pipeline without scheduling a successor.
// Outside the Running state it changes nothing.
func (c *Controller) Step() Outcome {
	if c.state != StateRunning {
		return OutcomeIgnored
	}

	w, h := c.cfg.Canvas.Width, c.cfg.Canvas.Height

	c.track.Advance()
	c.player.SmoothRotation(c.input, c.cfg.Player.Damping)
	c.player.Move(c.input, c.cfg.Player.LeanAngle, w, h)
	c.field.Advance()

	if _, hit := c.field.CheckCollision(c.player.Hitbox()); hit {
		c.audio.PlayCollision()
		c.end(ReasonCollision)
		return OutcomeGameOver
	}

	if c.field.MaybeSpawn() == SpawnSkipped {
		c.logger.Debug("spawn skipped, no free position", "obstacles", c.field.Len())
	}

	c.session.Score++
	empty := c.session.Burn(c.cfg.Session.FuelPerTick)

	c.display.ShowScore(c.session.Score)
	c.display.ShowFuel(c.session.FuelDisplay())

	if empty {
		c.end(ReasonOutOfFuel)
		return OutcomeGameOver
	}
	return OutcomeContinue
}

// end moves to GameOver and surfaces the final score.
func (c *Controller) end(reason GameOverReason) {
	c.state = StateGameOver
	c.reason = reason
	c.gen++
	c.audio.StopAmbient()
	c.display.ShowGameOver(c.session.Score, reason.Message())
	c.logger.Info("game over", "reason", reason, "score", c.session.Score)
}

// KeyDown latches a direction key. Unrecognized keys are ignored.
func (c *Controller) KeyDown(key string) {
	c.input.OnKeyDown(key)
}

// KeyUp releases a direction key.
func (c *Controller) KeyUp(key string) {
	c.input.OnKeyUp(key)
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Reason returns why the last race ended, or ReasonNone.
func (c *Controller) Reason() GameOverReason {
	return c.reason
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.session.Score
}

// Fuel returns the exact remaining fuel.
func (c *Controller) Fuel() float64 {
	return c.session.Fuel
}

// FuelDisplay returns the fuel as shown on the HUD.
func (c *Controller) FuelDisplay() int {
	return c.session.FuelDisplay()
}

// Player returns a copy of the player car.
func (c *Controller) Player() PlayerCar {
	return c.player
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (c *Controller) Obstacles() []Obstacle {
	return c.field.Obstacles()
}

// Input returns the latched key flags.
func (c *Controller) Input() InputState {
	return c.input
}

// TrackOffset returns the lane divider scroll offset.
func (c *Controller) TrackOffset() float64 {
	return c.track.Offset
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() config.RacerConfig {
	return c.cfg
}

// PlayerSprite returns the player's sprite handle.
func (c *Controller) PlayerSprite() Sprite {
	return Sprite{ID: c.cfg.Player.Sprite, Width: c.player.ImgW, Height: c.player.ImgH}
}
