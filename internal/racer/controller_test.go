package racer

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/config"
)

type recordingDisplay struct {
	scores   []int
	fuels    []int
	gameOver []string
	hides    int
}

func (d *recordingDisplay) ShowScore(score int) { d.scores = append(d.scores, score) }
func (d *recordingDisplay) ShowFuel(fuel int)   { d.fuels = append(d.fuels, fuel) }
func (d *recordingDisplay) HideGameOver()       { d.hides++ }
func (d *recordingDisplay) ShowGameOver(score int, msg string) {
	d.gameOver = append(d.gameOver, fmt.Sprintf("%d %s", score, msg))
}

type recordingAudio struct {
	starts, stops, collisions int
}

func (a *recordingAudio) StartAmbient()  { a.starts++ }
func (a *recordingAudio) StopAmbient()   { a.stops++ }
func (a *recordingAudio) PlayCollision() { a.collisions++ }

type harness struct {
	c       *Controller
	sched   *PendingScheduler
	display *recordingDisplay
	audio   *recordingAudio
}

// newHarness builds a controller with no random spawns unless mutate sets them.
func newHarness(t *testing.T, mutate func(*config.RacerConfig)) harness {
	t.Helper()
	cfg := config.DefaultRacerConfig()
	cfg.Obstacles.SpawnChance = 0
	if mutate != nil {
		mutate(&cfg)
	}

	h := harness{
		sched:   &PendingScheduler{},
		display: &recordingDisplay{},
		audio:   &recordingAudio{},
	}
	h.c = NewController(Options{
		Config:    cfg,
		Seed:      42,
		Scheduler: h.sched,
		Display:   h.display,
		Audio:     h.audio,
	})
	return h
}

// blockPlayer parks a motionless obstacle on top of the player.
func (h harness) blockPlayer() {
	p := h.c.Player()
	h.c.field.Add(Obstacle{X: p.X, Y: p.Y, Width: 10, Height: 10})
}

func TestStartRequiresIdle(t *testing.T) {
	h := newHarness(t, nil)

	if err := h.c.Start(); err != nil {
		t.Fatalf("Start() from Idle = %v, expected nil", err)
	}
	if h.c.State() != StateRunning {
		t.Errorf("State() = %v, expected Running", h.c.State())
	}
	if !h.sched.Pending() {
		t.Error("Start() should schedule the first tick")
	}
	if h.audio.starts != 1 || h.display.hides != 1 {
		t.Errorf("Start() collaborators: ambient starts %d, hides %d, expected 1 and 1", h.audio.starts, h.display.hides)
	}

	if err := h.c.Start(); !errors.Is(err, ErrNotIdle) {
		t.Errorf("Start() while Running = %v, expected ErrNotIdle", err)
	}
}

func TestScoreAndFuelPerTick(t *testing.T) {
	h := newHarness(t, nil)
	h.c.Start()

	for i := 1; i <= 10; i++ {
		if !h.sched.RunPending() {
			t.Fatalf("tick %d: nothing scheduled", i)
		}
		if h.c.Score() != i {
			t.Fatalf("Score() after %d ticks = %d, expected %d", i, h.c.Score(), i)
		}
	}

	if math.Abs(h.c.Fuel()-99) > 1e-9 {
		t.Errorf("Fuel() after 10 ticks = %v, expected 99", h.c.Fuel())
	}
	// One update at start plus one per tick.
	if len(h.display.scores) != 11 || h.display.scores[10] != 10 {
		t.Errorf("displayed scores = %v, expected 0..10", h.display.scores)
	}
}

func TestFuelExhaustion(t *testing.T) {
	h := newHarness(t, nil)
	h.c.Start()

	ticks := 0
	for h.sched.RunPending() {
		ticks++
		if ticks > 2000 {
			t.Fatal("race never ended")
		}
	}

	if ticks < 999 || ticks > 1001 {
		t.Errorf("race lasted %d ticks, expected about 1000", ticks)
	}
	if h.c.State() != StateGameOver || h.c.Reason() != ReasonOutOfFuel {
		t.Fatalf("State() = %v, Reason() = %v, expected GameOver by fuel", h.c.State(), h.c.Reason())
	}
	if h.c.Fuel() > 0 {
		t.Errorf("Fuel() = %v, expected <= 0", h.c.Fuel())
	}
	if want := fmt.Sprintf("%d Out of fuel!", ticks); !slices.Equal(h.display.gameOver, []string{want}) {
		t.Errorf("game-over display = %v, expected [%s]", h.display.gameOver, want)
	}
	if last := h.display.fuels[len(h.display.fuels)-1]; last != 0 {
		t.Errorf("last displayed fuel = %d, expected 0", last)
	}
	if h.audio.stops != 1 || h.audio.collisions != 0 {
		t.Errorf("audio stops %d collisions %d, expected 1 and 0", h.audio.stops, h.audio.collisions)
	}

	// Frozen after game over.
	score, fuel := h.c.Score(), h.c.Fuel()
	if got := h.c.Step(); got != OutcomeIgnored {
		t.Errorf("Step() after game over = %v, expected Ignored", got)
	}
	if h.c.Score() != score || h.c.Fuel() != fuel {
		t.Error("score or fuel changed after game over")
	}
}

func TestCollisionEndsRace(t *testing.T) {
	h := newHarness(t, nil)
	h.c.Start()
	h.sched.RunPending()
	h.blockPlayer()

	if got := h.c.Step(); got != OutcomeGameOver {
		t.Fatalf("Step() into an obstacle = %v, expected GameOver", got)
	}
	if h.c.Reason() != ReasonCollision {
		t.Errorf("Reason() = %v, expected collision", h.c.Reason())
	}
	// The colliding tick skips scoring.
	if h.c.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", h.c.Score())
	}
	if !slices.Equal(h.display.gameOver, []string{"1 Crashed!"}) {
		t.Errorf("game-over display = %v, expected [1 Crashed!]", h.display.gameOver)
	}
	if h.audio.collisions != 1 || h.audio.stops != 1 {
		t.Errorf("audio collisions %d stops %d, expected 1 and 1", h.audio.collisions, h.audio.stops)
	}
}

func TestGameOverStopsScheduling(t *testing.T) {
	h := newHarness(t, nil)
	h.c.Start()
	h.blockPlayer()

	if !h.sched.RunPending() {
		t.Fatal("expected a pending tick")
	}
	if h.sched.Pending() {
		t.Error("a tick was scheduled after game over")
	}
}

func TestRestartFromGameOver(t *testing.T) {
	h := newHarness(t, func(c *config.RacerConfig) { c.Obstacles.SpawnChance = 0.5 })
	h.c.Start()
	h.c.KeyDown("ArrowLeft")
	for range 30 {
		h.sched.RunPending()
	}
	h.blockPlayer()
	h.sched.RunPending()
	if h.c.State() != StateGameOver {
		t.Fatalf("State() = %v, expected GameOver", h.c.State())
	}

	h.c.Restart()

	fresh := newTestPlayer()
	if h.c.State() != StateRunning {
		t.Errorf("State() = %v, expected Running", h.c.State())
	}
	if h.c.Score() != 0 || h.c.Fuel() != 100 {
		t.Errorf("score/fuel = %d/%v, expected 0/100", h.c.Score(), h.c.Fuel())
	}
	if len(h.c.Obstacles()) != 0 {
		t.Errorf("obstacles = %d, expected empty field", len(h.c.Obstacles()))
	}
	if p := h.c.Player(); p.X != fresh.X || p.Y != fresh.Y || p.Rotation != 0 {
		t.Errorf("player = (%v, %v, %v°), expected (%v, %v, 0°)", p.X, p.Y, p.Rotation, fresh.X, fresh.Y)
	}
	if h.c.Input() != (InputState{}) {
		t.Errorf("input = %+v, expected released keys", h.c.Input())
	}
	if h.c.Reason() != ReasonNone {
		t.Errorf("Reason() = %v, expected none", h.c.Reason())
	}
	if !h.sched.Pending() {
		t.Error("Restart() should schedule a tick")
	}
}

func TestStopIdempotent(t *testing.T) {
	h := newHarness(t, nil)
	h.c.Start()

	h.c.Stop()
	gen := h.c.gen
	h.c.Stop()

	if h.c.State() != StateIdle {
		t.Errorf("State() = %v, expected Idle", h.c.State())
	}
	if h.audio.stops != 1 {
		t.Errorf("ambient stops = %d, expected 1", h.audio.stops)
	}
	if h.c.gen != gen {
		t.Error("second Stop() changed the run generation")
	}

	// A fresh Stop on a never-started controller is a no-op too.
	idle := newHarness(t, nil)
	idle.c.Stop()
	if idle.audio.stops != 0 || idle.c.State() != StateIdle {
		t.Error("Stop() from Idle should do nothing")
	}
}

func TestStaleTickAfterStop(t *testing.T) {
	h := newHarness(t, nil)
	h.c.Start()
	stale := h.sched.Take()
	h.c.Stop()

	stale()
	if h.c.Score() != 0 || h.sched.Pending() {
		t.Errorf("stale tick ran: score %d, pending %v", h.c.Score(), h.sched.Pending())
	}
}

func TestStaleTickAfterRestart(t *testing.T) {
	h := newHarness(t, nil)
	h.c.Start()
	stale := h.sched.Take()
	h.c.Restart()

	stale()
	if h.c.Score() != 0 {
		t.Fatalf("Score() after stale tick = %d, expected 0", h.c.Score())
	}

	h.sched.RunPending()
	if h.c.Score() != 1 {
		t.Errorf("Score() after current tick = %d, expected 1", h.c.Score())
	}
}

func TestPauseResume(t *testing.T) {
	h := newHarness(t, nil)
	h.c.Start()
	h.sched.RunPending()

	if !h.c.Pause() {
		t.Fatal("Pause() while Running should succeed")
	}
	if h.c.Pause() {
		t.Error("Pause() twice should report no change")
	}
	h.sched.RunPending()
	if h.c.Score() != 1 || h.sched.Pending() {
		t.Fatalf("tick ran while paused: score %d", h.c.Score())
	}
	if h.audio.stops != 1 {
		t.Errorf("ambient stops = %d, expected 1", h.audio.stops)
	}

	if !h.c.TogglePause() || h.c.State() != StateRunning {
		t.Fatalf("TogglePause() from Paused left %v, expected Running", h.c.State())
	}
	h.sched.RunPending()
	if h.c.Score() != 2 {
		t.Errorf("Score() after resume = %d, expected 2", h.c.Score())
	}
	if h.audio.starts != 2 {
		t.Errorf("ambient starts = %d, expected 2", h.audio.starts)
	}

	// Stop from Paused does not stop the ambient loop a second time.
	h.c.Pause()
	h.c.Stop()
	if h.audio.stops != 2 {
		t.Errorf("ambient stops = %d, expected 2", h.audio.stops)
	}
}

func TestStepIgnoredWhenNotRunning(t *testing.T) {
	h := newHarness(t, nil)
	if got := h.c.Step(); got != OutcomeIgnored {
		t.Errorf("Step() while Idle = %v, expected Ignored", got)
	}
	if h.c.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", h.c.Score())
	}
}

func TestPlayerStaysOnCanvas(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{"up left", []string{"ArrowUp", "ArrowLeft"}},
		{"down right", []string{"ArrowDown", "ArrowRight"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, nil)
			h.c.Start()
			for _, k := range tc.keys {
				h.c.KeyDown(k)
			}

			for range 100 {
				h.sched.RunPending()
				p := h.c.Player()
				if p.X < 0 || p.X > 400-p.Width || p.Y < 0 || p.Y > 600-p.Height {
					t.Fatalf("player left the canvas at (%v, %v)", p.X, p.Y)
				}
			}
		})
	}
}

func TestControllerDeterminism(t *testing.T) {
	run := func() (int, []Obstacle) {
		h := newHarness(t, func(c *config.RacerConfig) { c.Obstacles.SpawnChance = 0.2 })
		h.c.Start()
		for range 300 {
			h.sched.RunPending()
		}
		return h.c.Score(), slices.Clone(h.c.Obstacles())
	}

	s1, o1 := run()
	s2, o2 := run()
	if s1 != s2 || !slices.Equal(o1, o2) {
		t.Errorf("same seed diverged: score %d vs %d, %d vs %d obstacles", s1, s2, len(o1), len(o2))
	}
}
