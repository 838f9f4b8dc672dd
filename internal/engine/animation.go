package engine

// Animation is a frame clock advanced by elapsed milliseconds.
type Animation struct {
	Length int     // Number of frames
	Delay  float64 // Milliseconds per frame
	Loop   bool
	Frame  int
	timer  float64
}

// NewAnimation creates an animation starting at frame 0.
func NewAnimation(length int, delay float64, loop bool) Animation {
	return Animation{Length: max(length, 1), Delay: delay, Loop: loop}
}

// Update advances at most one frame per call once Delay has elapsed.
func (a *Animation) Update(dt float64) {
	a.timer += dt
	if a.timer < a.Delay {
		return
	}
	if a.Loop {
		a.Frame = (a.Frame + 1) % a.Length
	} else if a.Frame < a.Length-1 {
		a.Frame++
	}
	a.timer = 0
}

// Finished reports whether a non-looping animation reached its last frame.
func (a *Animation) Finished() bool {
	return !a.Loop && a.Frame == a.Length-1
}
