package racer

import "github.com/vovakirdan/tui-racer/internal/config"

// TrackScroller animates the vertical offset of the dashed lane dividers.
type TrackScroller struct {
	Offset float64
	speed  float64
	wrap   float64
}

// NewTrackScroller creates a scroller at offset 0.
func NewTrackScroller(cfg config.TrackConfig) TrackScroller {
	return TrackScroller{speed: cfg.ScrollSpeed, wrap: cfg.ScrollWrap}
}

// Advance moves the dividers down one tick, wrapping back to 0 once the
// offset exceeds one dash period.
func (t *TrackScroller) Advance() {
	t.Offset += t.speed
	if t.Offset > t.wrap {
		t.Offset = 0
	}
}

// Reset puts the offset back to 0.
func (t *TrackScroller) Reset() {
	t.Offset = 0
}
