package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Thrust   key.Binding
	Left     key.Binding
	Right    key.Binding
	Fire     key.Binding
	Pause    key.Binding
	Sound    key.Binding
	Debug    key.Binding
	Graphics key.Binding
	HiScores key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.Left, k.Right, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.Left, k.Right, k.Fire},
		{k.Pause, k.HiScores, k.Quit},
		{k.Sound, k.Graphics, k.Debug},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Thrust: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "thrust"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "rotate left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "rotate right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "fire/select"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sound"),
		),
		Debug: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "boxes"),
		),
		Graphics: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "graphics"),
		),
		HiScores: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hi-scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Thrust):
		return core.ActionThrust
	case key.Matches(msg, k.Left):
		return core.ActionRotateLeft
	case key.Matches(msg, k.Right):
		return core.ActionRotateRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Sound):
		return core.ActionToggleSound
	case key.Matches(msg, k.Debug):
		return core.ActionToggleDebug
	case key.Matches(msg, k.Graphics):
		return core.ActionToggleGraphics
	case key.Matches(msg, k.HiScores):
		return core.ActionHiScores
	}
	return core.ActionNone
}

// held reports whether an action models a key that stays down.
func held(a core.Action) bool {
	switch a {
	case core.ActionThrust, core.ActionRotateLeft, core.ActionRotateRight, core.ActionFire:
		return true
	}
	return false
}

// KeyLatch turns key presses into per-tick input frames.
//
// Terminals report presses and auto-repeats but never releases, so a held
// action stays in the frame until hold has passed since its last press.
// Every other action appears in exactly one frame.
type KeyLatch struct {
	hold  time.Duration
	seen  map[core.Action]time.Time
	edges map[core.Action]bool
}

// NewKeyLatch creates a latch with the given hold window.
func NewKeyLatch(hold time.Duration) *KeyLatch {
	return &KeyLatch{
		hold:  max(hold, 0),
		seen:  make(map[core.Action]time.Time),
		edges: make(map[core.Action]bool),
	}
}

// Press records a key press at now.
func (l *KeyLatch) Press(a core.Action, now time.Time) {
	if a == core.ActionNone || a == core.ActionQuit {
		return
	}
	if held(a) {
		l.seen[a] = now
		return
	}
	l.edges[a] = true
}

// Frame returns the actions active at now and forgets expired presses.
func (l *KeyLatch) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, at := range l.seen {
		if now.Sub(at) > l.hold {
			delete(l.seen, a)
			continue
		}
		f.Set(a)
	}
	for a := range l.edges {
		f.Set(a)
	}
	clear(l.edges)
	return f
}

// Sync drops held actions the consumer released from f, so a key that
// already committed a menu needs a fresh press to act again.
func (l *KeyLatch) Sync(f core.InputFrame) {
	for a := range l.seen {
		if !f.Has(a) {
			delete(l.seen, a)
		}
	}
}
