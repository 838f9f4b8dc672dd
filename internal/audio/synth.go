package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// sweep is a square wave gliding from one pitch to another while fading out.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration) *sweep {
	return &sweep{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (g *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		v := 0.5
		if g.phase >= 0.5 {
			v = -0.5
		}
		v *= 1 - progress

		samples[i][0], samples[i][1] = v, v
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error { return nil }

// rumble is endless low-passed noise under a slow wobble.
type rumble struct {
	sr   beep.SampleRate
	rng  *rand.Rand
	pos  int
	last float64
}

func newRumble(sr beep.SampleRate, seed int64) *rumble {
	return &rumble{sr: sr, rng: rand.New(rand.NewSource(seed))}
}

func (g *rumble) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		noise := g.rng.Float64()*2 - 1
		g.last += 0.05 * (noise - g.last)

		wobble := 0.75 + 0.25*math.Sin(2*math.Pi*6*t)
		v := g.last * wobble

		samples[i][0], samples[i][1] = v, v
		g.pos++
	}
	return len(samples), true
}

func (g *rumble) Err() error { return nil }

// blast is decaying noise with a low thump underneath.
type blast struct {
	sr    beep.SampleRate
	rng   *rand.Rand
	total int
	pos   int
	last  float64
}

func newBlast(sr beep.SampleRate, d time.Duration, seed int64) *blast {
	return &blast{sr: sr, rng: rand.New(rand.NewSource(seed)), total: sr.N(d)}
}

func (g *blast) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 6)

		noise := g.rng.Float64()*2 - 1
		g.last += 0.2 * (noise - g.last)
		thump := math.Sin(2 * math.Pi * 55 * t)

		v := env * (0.6*g.last + 0.4*thump)
		samples[i][0], samples[i][1] = v, v
		g.pos++
	}
	return len(samples), true
}

func (g *blast) Err() error { return nil }
