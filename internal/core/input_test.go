package core

import "testing"

func TestInputFramePreservesOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRotate)
	f.Set(ActionNone)
	f.Set(ActionLeft)

	expected := []Action{ActionLeft, ActionRotate, ActionLeft}
	if len(f.Actions) != len(expected) {
		t.Fatalf("len(Actions) = %d, expected %d", len(f.Actions), len(expected))
	}
	for i, a := range expected {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %s, expected %s", i, f.Actions[i], a)
		}
	}
}

func TestInputFrameHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPause) || !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Has(Pause) = false after Set")
	}
	if f.Has(ActionQuit) {
		t.Error("Has(Quit) = true, never set")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHardDrop)
	clone := f.Clone()

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() left actions behind")
	}
	if !clone.Has(ActionHardDrop) {
		t.Error("Clear() affected the clone")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionHardDrop, "HardDrop"},
		{ActionGhost, "Ghost"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
