package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"w", runeKey('w'), core.ActionThrust},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust},
		{"a", runeKey('a'), core.ActionRotateLeft},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft},
		{"d", runeKey('d'), core.ActionRotateRight},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFire},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"s", runeKey('s'), core.ActionToggleSound},
		{"b", runeKey('b'), core.ActionToggleDebug},
		{"g", runeKey('g'), core.ActionToggleGraphics},
		{"h", runeKey('h'), core.ActionHiScores},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%s) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestKeyLatchHoldsUntilWindowPasses(t *testing.T) {
	l := NewKeyLatch(120 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	l.Press(core.ActionThrust, t0)

	tests := []struct {
		after    time.Duration
		expected bool
	}{
		{100 * time.Millisecond, true},
		{120 * time.Millisecond, true}, // inclusive
		{121 * time.Millisecond, false},
	}

	for _, tt := range tests {
		f := l.Frame(t0.Add(tt.after))
		if got := f.Has(core.ActionThrust); got != tt.expected {
			t.Errorf("thrust held %v after press = %v, expected %v", tt.after, got, tt.expected)
		}
	}
}

func TestKeyLatchRepeatExtendsHold(t *testing.T) {
	l := NewKeyLatch(120 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	l.Press(core.ActionRotateLeft, t0)
	l.Press(core.ActionRotateLeft, t0.Add(100*time.Millisecond))

	f := l.Frame(t0.Add(200 * time.Millisecond))
	if !f.Has(core.ActionRotateLeft) {
		t.Error("auto-repeat should extend the hold window")
	}
}

func TestKeyLatchEdgesLastOneFrame(t *testing.T) {
	l := NewKeyLatch(120 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	l.Press(core.ActionPause, t0)
	l.Press(core.ActionToggleSound, t0)

	f := l.Frame(t0)
	if !f.Has(core.ActionPause) || !f.Has(core.ActionToggleSound) {
		t.Errorf("first frame = %v, expected pause and sound", f.Actions)
	}

	f = l.Frame(t0)
	if len(f.Actions) != 0 {
		t.Errorf("second frame = %v, expected empty", f.Actions)
	}
}

func TestKeyLatchSyncDropsReleasedKeys(t *testing.T) {
	l := NewKeyLatch(120 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	l.Press(core.ActionFire, t0)
	l.Press(core.ActionThrust, t0)

	f := l.Frame(t0)
	f.Release(core.ActionFire)
	l.Sync(f)

	f = l.Frame(t0.Add(10 * time.Millisecond))
	if f.Has(core.ActionFire) {
		t.Error("a consumed press needs a new key press")
	}
	if !f.Has(core.ActionThrust) {
		t.Error("thrust should still be held")
	}
}

func TestKeyLatchIgnoresQuitAndNone(t *testing.T) {
	l := NewKeyLatch(time.Second)
	t0 := time.Unix(1000, 0)

	l.Press(core.ActionNone, t0)
	l.Press(core.ActionQuit, t0)

	if f := l.Frame(t0); len(f.Actions) != 0 {
		t.Errorf("Frame() = %v, expected empty", f.Actions)
	}
}
