package engine

// Cue is a fire-and-forget sound handle. Implementations must never block
// the caller; a cue that cannot play yet drops the request.
type Cue interface {
	Play()
	Stop()
	IsPlaying() bool
	SetVolume(v float64)
	SetEnabled(on bool)
}

// Cues groups the three sounds the simulation triggers.
type Cues struct {
	Fire      Cue
	Thrust    Cue // Looping while the ship thrusts
	Explosion Cue
}

// SetEnabled mutes or unmutes every cue.
func (c Cues) SetEnabled(on bool) {
	for _, cue := range c.all() {
		cue.SetEnabled(on)
	}
}

func (c Cues) all() []Cue {
	return []Cue{c.Fire, c.Thrust, c.Explosion}
}

// orSilent fills missing cues with silent ones.
func (c Cues) orSilent() Cues {
	if c.Fire == nil {
		c.Fire = SilentCue()
	}
	if c.Thrust == nil {
		c.Thrust = SilentCue()
	}
	if c.Explosion == nil {
		c.Explosion = SilentCue()
	}
	return c
}

// SilentCue returns a cue that accepts every command and never plays.
func SilentCue() Cue {
	return silentCue{}
}

type silentCue struct{}

func (silentCue) Play()             {}
func (silentCue) Stop()             {}
func (silentCue) IsPlaying() bool   { return false }
func (silentCue) SetVolume(float64) {}
func (silentCue) SetEnabled(bool)   {}
