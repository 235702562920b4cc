package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/racer"
)

// frames decodes a stereo float32 buffer, checking both channels match.
func frames(t *testing.T, buf []byte) []float64 {
	t.Helper()
	out := make([]float64, len(buf)/frameBytes)
	for i := range out {
		l := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*frameBytes:]))
		r := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*frameBytes+4:]))
		if l != r {
			t.Fatalf("frame %d: left %v != right %v", i, l, r)
		}
		out[i] = float64(l)
	}
	return out
}

func TestGenCrash(t *testing.T) {
	buf := genCrash(99)
	if want := int(0.6*SampleRate) * frameBytes; len(buf) != want {
		t.Fatalf("len = %d, expected %d", len(buf), want)
	}

	peak := 0.0
	for i, s := range frames(t, buf) {
		if s < -1 || s > 1 || math.IsNaN(s) {
			t.Fatalf("sample %d = %v, expected within [-1, 1]", i, s)
		}
		peak = math.Max(peak, math.Abs(s))
	}
	if peak < 0.1 {
		t.Errorf("peak = %v, expected an audible cue", peak)
	}
}

func TestEngineReaderIsEndless(t *testing.T) {
	e := newEngineReader(7)
	buf := make([]byte, 4096+3) // trailing partial frame

	for range 20 {
		n, err := e.Read(buf)
		if err != nil {
			t.Fatalf("Read() error = %v, expected nil", err)
		}
		if n != 4096 {
			t.Fatalf("Read() = %d, expected 4096 whole-frame bytes", n)
		}
		for i, s := range frames(t, buf[:n]) {
			if s < -1 || s > 1 {
				t.Fatalf("sample %d = %v, expected within [-1, 1]", i, s)
			}
		}
	}
	if e.t <= 0 {
		t.Error("engine clock did not advance")
	}
}

func TestSoundReader(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	if err != nil || len(got) != 5 {
		t.Errorf("ReadAll() = %v, %v, expected 5 bytes", got, err)
	}
}

func TestSoftSat(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{2, 0.75},
		{-2, -0.75},
	}

	for _, tc := range tests {
		if got := softSat(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("softSat(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestOpenDisabledIsSilent(t *testing.T) {
	a, closeFn := Open(config.AudioConfig{Enabled: false}, log.New(io.Discard))
	defer closeFn()

	if _, ok := a.(racer.NopAudio); !ok {
		t.Errorf("Open() with audio disabled = %T, expected racer.NopAudio", a)
	}
}
