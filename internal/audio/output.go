// Package audio synthesizes the game's sound cues and plays them through the
// system speaker.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
)

const sampleRate = beep.SampleRate(44100)

// initSpeaker opens the audio device; replaced in tests.
var initSpeaker = speaker.Init

// Output mixes every cue onto a single stream.
type Output struct {
	mixer *beep.Mixer
	guard func(func())
}

// Open initializes the speaker and starts playing the mixer.
func Open() (*Output, error) {
	if err := initSpeaker(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	o := &Output{
		mixer: &beep.Mixer{},
		guard: func(fn func()) {
			speaker.Lock()
			defer speaker.Unlock()
			fn()
		},
	}
	speaker.Play(o.mixer)
	return o, nil
}

// offline returns an output nobody pulls from; the caller streams the mixer.
func offline() *Output {
	return &Output{mixer: &beep.Mixer{}, guard: func(fn func()) { fn() }}
}

// Close drops every playing cue.
func (o *Output) Close() {
	o.guard(o.mixer.Clear)
}

func (o *Output) add(s beep.Streamer) {
	o.guard(func() { o.mixer.Add(s) })
}

// Cues builds the fire, thrust and explosion cues on this output.
func (o *Output) Cues(seed int64) engine.Cues {
	return engine.Cues{
		Fire:      o.newCue(func() beep.Streamer { return newSweep(sampleRate, 1400, 250, 120*time.Millisecond) }, false),
		Thrust:    o.newCue(func() beep.Streamer { return newRumble(sampleRate, seed) }, true),
		Explosion: o.newCue(func() beep.Streamer { return newBlast(sampleRate, 700*time.Millisecond, seed) }, false),
	}
}

// NewCues opens the speaker and returns the game's cues with a close func.
// Without an audio device the cues are silent and the game runs muted.
func NewCues(logger *log.Logger, seed int64) (engine.Cues, func()) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out, err := Open()
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return engine.Cues{
			Fire:      engine.SilentCue(),
			Thrust:    engine.SilentCue(),
			Explosion: engine.SilentCue(),
		}, func() {}
	}
	logger.Debug("audio ready", "rate", int(sampleRate))
	return out.Cues(seed), out.Close
}

// cue plays a freshly generated streamer on every Play. Looping cues keep a
// single instance alive until stopped.
type cue struct {
	out      *Output
	generate func() beep.Streamer
	loop     bool

	mu      sync.Mutex
	volume  float64
	enabled bool
	ctrl    *beep.Ctrl
	fx      *effects.Volume

	// Touched from the speaker goroutine.
	gen     atomic.Uint64
	playing atomic.Bool
}

func (o *Output) newCue(generate func() beep.Streamer, loop bool) *cue {
	return &cue{out: o, generate: generate, loop: loop, volume: 1, enabled: true}
}

func (c *cue) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled || (c.loop && c.playing.Load()) {
		return
	}

	gen := c.gen.Add(1)
	fx := newVolume(c.generate(), c.volume)
	ctrl := &beep.Ctrl{Streamer: fx}

	var s beep.Streamer = ctrl
	if !c.loop {
		s = beep.Seq(ctrl, beep.Callback(func() {
			if c.gen.Load() == gen {
				c.playing.Store(false)
			}
		}))
	}

	c.ctrl, c.fx = ctrl, fx
	c.playing.Store(true)
	c.out.add(s)
}

func (c *cue) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *cue) stopLocked() {
	c.playing.Store(false)
	if c.ctrl == nil {
		return
	}
	ctrl := c.ctrl
	// A nil streamer ends the Ctrl, so the mixer drops it on the next pull.
	c.out.guard(func() { ctrl.Streamer = nil })
	c.ctrl, c.fx = nil, nil
}

func (c *cue) IsPlaying() bool {
	return c.playing.Load()
}

func (c *cue) SetVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.volume = v
	if fx := c.fx; fx != nil {
		c.out.guard(func() { setVolume(fx, v) })
	}
}

func (c *cue) SetEnabled(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.enabled = on
	if !on {
		c.stopLocked()
	}
}

// newVolume maps a linear volume onto beep's logarithmic scale.
func newVolume(s beep.Streamer, v float64) *effects.Volume {
	fx := &effects.Volume{Streamer: s, Base: 2}
	setVolume(fx, v)
	return fx
}

// log2(0) is -Inf, so zero volume means silent.
func setVolume(fx *effects.Volume, v float64) {
	if v <= 0 {
		fx.Volume, fx.Silent = 0, true
		return
	}
	fx.Volume, fx.Silent = math.Log2(v), false
}
