package engine

import "github.com/vovakirdan/tui-asteroids/internal/core"

// EntityView is the read-only render data for one entity.
type EntityView struct {
	Kind      Kind
	Box       core.Box
	Active    bool
	Angle     float64
	Frame     int
	Harmful   bool // Enemies only
	Thrusting bool // Player only
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	State      State
	Field      core.Size
	Score      int
	Level      int
	Shield     int // Clamped to >= 0
	Ammo       int
	Bullets    int
	Enemies    int
	EnemyCap   int
	CanRestart bool // Game over lock has elapsed
	Sound      bool
	Debug      bool
	Graphics   bool

	Player   EntityView
	Wrapped  WrapResult
	Entities []EntityView // Every live entity in arena order, player included
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:      g.states.Current(),
		Field:      core.Size{W: g.vp.W, H: g.vp.H},
		Score:      g.session.Score,
		Level:      g.session.Level,
		Shield:     g.session.DisplayShield(),
		Ammo:       g.shooter.Ammo(),
		Bullets:    g.shooter.Bullets(),
		Enemies:    g.session.Enemies,
		EnemyCap:   g.director.EnemyCap(g.session.Level),
		CanRestart: g.session.GameOverTimer >= g.cfg.Session.GameOverLockMs,
		Sound:      g.soundOn,
		Debug:      g.debug,
		Graphics:   g.graphics,
		Entities:   make([]EntityView, 0, g.arena.Len()),
	}

	for i := range g.arena.Len() {
		e := g.arena.At(i)
		v := viewOf(e)
		s.Entities = append(s.Entities, v)
		if e.Kind == KindPlayer {
			s.Player = v
			s.Wrapped = e.Wrapped
		}
	}
	return s
}

func viewOf(e *Entity) EntityView {
	v := EntityView{
		Kind:   e.Kind,
		Box:    e.Box(),
		Active: e.Active,
		Angle:  e.Angle(),
	}
	if e.Anim != nil {
		v.Frame = e.Anim.Frame
	}
	switch e.Kind {
	case KindEnemy:
		v.Harmful = e.Harmful()
	case KindPlayer:
		v.Thrusting = e.Motion.IsForceApplied()
	}
	return v
}
