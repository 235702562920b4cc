package audio

import "math"

// engineReader is an endless idling-engine drone: a detuned low sawtooth
// pair with a slow throttle wobble and a little exhaust noise.
type engineReader struct {
	t     float64
	seed  uint64
	phase [2]float64
	lp    float64
}

func newEngineReader(seed uint64) *engineReader {
	return &engineReader{seed: seed | 1}
}

// Read never returns EOF. Partial frames at the end of b are left untouched.
func (e *engineReader) Read(b []byte) (int, error) {
	n := len(b) / frameBytes
	for i := 0; i < n; i++ {
		putStereoF32(b, i, e.next())
	}
	return n * frameBytes, nil
}

func (e *engineReader) next() float64 {
	const dt = 1.0 / SampleRate

	wobble := 1 + 0.04*math.Sin(2*math.Pi*0.7*e.t)
	freqs := [2]float64{55 * wobble, 55.8 * wobble}

	s := 0.0
	for i, f := range freqs {
		e.phase[i] += f * dt
		e.phase[i] -= math.Floor(e.phase[i])
		s += saw(e.phase[i]) * 0.3
	}

	// Low-passed noise for the exhaust rasp.
	e.lp = e.lp*0.92 + lcg(&e.seed)*0.08
	s += e.lp * 0.5

	e.t += dt
	return softSat(s)
}

// genCrash renders the collision cue: a noise burst with a falling sub thump.
func genCrash(seed uint64) []byte {
	seed |= 1
	n := int(0.6 * SampleRate)
	buf := makeBuf(n)

	lp := 0.0
	subPhase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.005, 0.25, 0.3, 0.5)

		lp = lp*0.8 + lcg(&seed)*0.2
		noise := lp * env * 0.9

		subFreq := 140 * math.Pow(35.0/140.0, p)
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*6) * 0.7

		crack := 0.0
		if p < 0.03 {
			crack = lcg(&seed) * (1 - p/0.03) * 0.6
		}

		putStereoF32(buf, i, softSat(noise+sub+crack))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*frameBytes + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

func makeBuf(n int) []byte { return make([]byte, n*frameBytes) }

// softSat is a gentle saturator; output stays within [-1, 1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack, decay and release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// saw maps a phase in [0,1) to a sawtooth in [-1,1).
func saw(phase float64) float64 {
	return 2*phase - 1
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}
