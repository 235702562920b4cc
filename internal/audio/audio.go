// Package audio synthesizes the racer's engine hum and crash cue and plays
// them through oto.
package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/racer"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8 // Two float32 channels
)

// Player is an oto-backed racer.Audio.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	logger *log.Logger

	mu      sync.Mutex
	ambient oto.Player
	closed  bool

	ambientVolume float64
	effectsVolume float64
}

// New opens the default output device.
func New(cfg config.AudioConfig, logger *log.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &Player{
		ctx:           ctx,
		ready:         ready,
		logger:        logger,
		ambientVolume: clamp01(cfg.AmbientVolume),
		effectsVolume: clamp01(cfg.EffectsVolume),
	}, nil
}

// Open returns a device-backed player, or a silent one when audio is disabled
// or the device cannot be opened. The returned func releases the device.
func Open(cfg config.AudioConfig, logger *log.Logger) (racer.Audio, func()) {
	if !cfg.Enabled {
		return racer.NopAudio{}, func() {}
	}
	p, err := New(cfg, logger)
	if err != nil {
		logger.Warn("audio unavailable, continuing silently", "err", err)
		return racer.NopAudio{}, func() {}
	}
	return p, p.Close
}

// isReady reports whether the device finished initializing.
// Sounds requested before that are dropped.
func (p *Player) isReady() bool {
	select {
	case <-p.ready:
		return true
	default:
		return false
	}
}

// StartAmbient starts the looping engine hum. It does nothing if the hum is
// already playing.
func (p *Player) StartAmbient() {
	if !p.isReady() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.ambient != nil {
		return
	}

	player := p.ctx.NewPlayer(newEngineReader(uint64(time.Now().UnixNano())))
	player.SetVolume(p.ambientVolume)
	player.Play()
	p.ambient = player
}

// StopAmbient stops the engine hum.
func (p *Player) StopAmbient() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopAmbientLocked()
}

func (p *Player) stopAmbientLocked() {
	if p.ambient == nil {
		return
	}
	if err := p.ambient.Close(); err != nil {
		p.logger.Debug("closing engine hum", "err", err)
	}
	p.ambient = nil
}

// PlayCollision plays the crash cue once without blocking.
func (p *Player) PlayCollision() {
	if !p.isReady() {
		return
	}
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return
	}

	samples := genCrash(uint64(time.Now().UnixNano()))
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(p.effectsVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Close stops the hum and refuses further sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopAmbientLocked()
	p.closed = true
}

// soundReader streams a finished one-shot buffer.
type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(b []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(b, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
