package core

import "testing"

func TestInputFrameRelease(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Set(ActionThrust)

	if !f.Release(ActionFire) {
		t.Error("Release(Fire) = false, expected true")
	}
	if f.Has(ActionFire) {
		t.Error("Fire should be consumed after Release")
	}
	if f.Release(ActionFire) {
		t.Error("second Release(Fire) = true, expected false")
	}
	if !f.Has(ActionThrust) {
		t.Error("Release should not touch other actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionThrust) {
		t.Error("zero frame should hold nothing")
	}
	if f.Release(ActionPause) {
		t.Error("Release on zero frame = true, expected false")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRotateLeft)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionRotateLeft) {
		t.Error("clone should be independent of the original")
	}
	if f.Has(ActionRotateLeft) {
		t.Error("Clear should empty the frame")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionThrust, "Thrust"},
		{ActionToggleGraphics, "ToggleGraphics"},
		{ActionHiScores, "HiScores"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
