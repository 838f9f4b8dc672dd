package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Game orchestrates one simulation frame at a time.
type Game struct {
	cfg      config.AsteroidsConfig
	vp       Viewport
	arena    *Arena
	player   Handle
	shooter  *Shooter
	director *Director
	registry Registry
	states   *StateMachine
	session  Session
	cues     Cues
	rng      *rand.Rand
	logger   *log.Logger

	soundOn  bool
	debug    bool
	graphics bool

	onGameOver []func(Session)
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithCues sets the sound cues. Missing cues are silent.
func WithCues(c Cues) Option {
	return func(g *Game) {
		g.cues = c
	}
}

// WithRand sets the random source used for spawning.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithGameOverHandler registers fn to run with the final session each time
// the game ends.
func WithGameOverHandler(fn func(Session)) Option {
	return func(g *Game) {
		g.onGameOver = append(g.onGameOver, fn)
	}
}

// New creates a game on the title screen with the ship centered and one
// enemy queued off-screen.
func New(cfg config.AsteroidsConfig, opts ...Option) *Game {
	cfg.Validate()

	g := &Game{
		cfg:      cfg,
		vp:       NewViewport(cfg.Field.Width, cfg.Field.Height),
		arena:    NewArena(),
		states:   NewStateMachine(StateTitle),
		session:  newSession(cfg.Session.InitialShield, cfg.Supply.IntervalMs),
		logger:   log.New(io.Discard),
		soundOn:  cfg.Audio.Enabled,
		graphics: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.cues = g.cues.orSilent()
	g.cues.Fire.SetVolume(cfg.Audio.FireVolume)
	g.cues.Thrust.SetVolume(cfg.Audio.ThrustVolume)
	g.cues.Explosion.SetVolume(cfg.Audio.ExplosionVolume)
	g.cues.SetEnabled(g.soundOn)

	g.director = NewDirector(cfg, g.vp, g.rng)
	g.shooter = NewShooter(g.arena, g.cues.Fire, cfg.Player.Size,
		cfg.Shooting.InitialAmmo, cfg.Shooting.MaxAmmo, cfg.Shooting.ReloadMs)

	start := g.playerStart()
	g.player = g.arena.Spawn(NewPlayer(start.X, start.Y, g.playerSpec()))

	g.registerReactions()
	g.registerStateHooks()
	g.director.SpawnEnemy(g.arena, &g.session)

	return g
}

func (g *Game) playerSpec() PlayerSpec {
	p := g.cfg.Player
	return PlayerSpec{
		Size:           p.Size,
		ForceFactor:    p.ForceFactor,
		RotationFactor: p.RotationFactor,
		MaxVelocity:    p.MaxVelocity,
		Friction:       p.Friction,
	}
}

func (g *Game) playerStart() core.Vec {
	return core.Vec{
		X: g.vp.W/2 - g.cfg.Player.Size/2,
		Y: g.vp.H/2 - g.cfg.Player.Size/2,
	}
}

func (g *Game) registerStateHooks() {
	g.states.OnEnter(StatePaused, func(State) {
		g.cues.Thrust.Stop()
	})
	g.states.OnEnter(StateGameOver, func(State) {
		g.logger.Info("game over", "score", g.session.Score, "level", g.session.Level)
		for _, fn := range g.onGameOver {
			fn(g.session)
		}
	})
}

func (g *Game) setState(s State) {
	from := g.states.Current()
	if g.states.Set(s) {
		g.logger.Debug("state change", "from", from, "to", s)
	}
}

// State returns the current game state.
func (g *Game) State() State {
	return g.states.Current()
}

// Session returns a copy of the session counters.
func (g *Game) Session() Session {
	return g.session
}

// Ammo returns the shooter's pool size.
func (g *Game) Ammo() int {
	return g.shooter.Ammo()
}

// Step advances the simulation by dt milliseconds. Edge-triggered actions
// the game reacts to are released from in so a held key acts once.
func (g *Game) Step(dt float64, in *core.InputFrame) {
	if in == nil {
		empty := core.NewInputFrame()
		in = &empty
	}
	st := g.states.Current()

	if in.Has(core.ActionFire) {
		g.commit(st, in)
	}
	if st == StateTitle && in.Release(core.ActionHiScores) {
		g.setState(StateHiScores)
	}

	if in.Release(core.ActionToggleSound) {
		g.ToggleSound()
	}
	if in.Release(core.ActionToggleDebug) {
		g.debug = !g.debug
	}
	if in.Release(core.ActionToggleGraphics) {
		g.graphics = !g.graphics
	}

	if st == StateGameOver {
		g.session.GameOverTimer += dt
	}

	if st.Simulating() {
		g.updateEntities(dt, in)
		g.registry.Check(g.arena)
		g.shooter.Update(dt)
		g.session.TickSupply(dt)
	}

	// The pausing tick still simulates; the state applies from the next one.
	if st == StateInGame && g.State() == StateInGame && in.Release(core.ActionPause) {
		g.setState(StatePaused)
	}

	g.arena.Compact(g.despawned)

	g.director.SpawnEnemy(g.arena, &g.session)
	g.director.SpawnAmmo(g.arena, &g.session)
}

// commit handles the fire key outside of play.
func (g *Game) commit(st State, in *core.InputFrame) {
	switch st {
	case StateTitle, StatePaused:
		g.setState(StateInGame)
		in.Release(core.ActionFire)
	case StateGameOver:
		if g.session.GameOverTimer >= g.cfg.Session.GameOverLockMs {
			g.Restart()
			in.Release(core.ActionFire)
			g.setState(StateInGame)
		}
	case StateHiScores:
		g.setState(StateTitle)
		in.Release(core.ActionFire)
	}
}

// ToggleSound flips sound on or off for every cue.
func (g *Game) ToggleSound() {
	g.soundOn = !g.soundOn
	g.cues.SetEnabled(g.soundOn)
}

func (g *Game) updateEntities(dt float64, in *core.InputFrame) {
	speed := g.cfg.Shooting.BulletSpeed
	g.arena.Each(func(_ Handle, e *Entity) {
		switch e.Kind {
		case KindPlayer:
			g.updatePlayer(e, dt, in)
		case KindEnemy, KindParticle, KindAmmo:
			e.updateDrifter(dt, g.vp)
		case KindBullet:
			e.updateBullet(dt, speed, g.vp)
		case KindExplosion:
			e.updateExplosion(dt)
		}
	})
}

func (g *Game) updatePlayer(e *Entity, dt float64, in *core.InputFrame) {
	if !e.Active {
		return
	}
	m := e.Motion

	if in.Has(core.ActionThrust) {
		m.ApplyForce()
	} else {
		m.ApplyFriction()
		m.ResetForce()
	}

	if in.Has(core.ActionRotateLeft) {
		m.ApplyRotation(-1)
	} else if in.Has(core.ActionRotateRight) {
		m.ApplyRotation(1)
	}

	if in.Has(core.ActionFire) {
		g.shooter.Shoot(e.Pos, m.Angle)
	}

	m.Update(dt, &e.Pos)
	e.Wrapped = g.vp.Wrap(&e.Pos, e.Size)

	thrust := g.cues.Thrust
	if m.IsForceApplied() {
		if !thrust.IsPlaying() {
			thrust.Play()
		}
	} else if thrust.IsPlaying() {
		thrust.Stop()
	}
}

// despawned keeps the counters in step with entities leaving the arena.
func (g *Game) despawned(e *Entity) {
	switch e.Kind {
	case KindBullet:
		g.shooter.bulletGone()
	case KindEnemy:
		if e.Harmful() && g.session.Enemies > 0 {
			g.session.Enemies--
		}
	case KindAmmo:
		g.session.AmmoInFlight = false
		g.session.ResetSupply(g.cfg.Supply.IntervalMs)
	}
}

// Restart resets the ship and counters, clears every other entity and seeds
// a fresh wave.
func (g *Game) Restart() {
	g.shooter.resetBullets()

	g.arena.Each(func(h Handle, e *Entity) {
		if h == g.player {
			start := g.playerStart()
			e.Pos = start
			e.Motion.Velocity = core.Vec{}
			e.Motion.ResetForce()
			e.Motion.Angle = 0
			e.Active = true
			e.Wrapped = WrapResult{}
			return
		}
		e.Active = false
		e.WasEverActive = true
	})
	g.arena.Compact(nil)

	g.shooter.SetAmmo(g.cfg.Shooting.InitialAmmo)
	g.session = newSession(g.cfg.Session.InitialShield, g.cfg.Supply.IntervalMs)

	for range g.cfg.Session.RestartEnemies {
		g.director.SpawnEnemy(g.arena, &g.session)
	}
	g.logger.Info("restart", "enemies", g.session.Enemies)
}
