package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionJump) {
		t.Fatal("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Click(4, 7)
	if !f.Has(ActionJump) || !f.Has(ActionClick) {
		t.Fatal("expected Jump and Click to be set")
	}
	x, y, ok := f.Pointer()
	if !ok || x != 4 || y != 7 {
		t.Errorf("Pointer() = (%d, %d, %v), expected (4, 7, true)", x, y, ok)
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionClick) {
		t.Error("Clear should remove all actions")
	}
	if _, _, ok := f.Pointer(); ok {
		t.Error("Pointer should report no click after Clear")
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
