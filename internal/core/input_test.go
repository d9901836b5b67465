package core

import "testing"

func TestInputFrameEdgeActions(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionJump) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionAttack)

	if !f.Has(ActionJump) || !f.Has(ActionAttack) {
		t.Error("set actions should be reported")
	}

	f.Clear()

	if f.Has(ActionJump) || f.Has(ActionAttack) {
		t.Error("Clear should drop edge-triggered actions")
	}
}

func TestInputFrameHeldSurvivesClear(t *testing.T) {
	f := NewInputFrame()
	f.SetHeld(ActionRight)
	f.Set(ActionJump)

	f.Clear()

	if f.Has(ActionJump) {
		t.Error("edge action should be cleared")
	}
	if !f.IsHeld(ActionRight) {
		t.Error("held state should survive Clear")
	}

	f.ReleaseHeld(ActionRight)
	if f.IsHeld(ActionRight) {
		t.Error("released action should not be held")
	}
}

func TestInputFrameHeldDir(t *testing.T) {
	tests := []struct {
		name     string
		left     bool
		right    bool
		expected int
	}{
		{"neither", false, false, 0},
		{"left only", true, false, -1},
		{"right only", false, true, 1},
		{"both cancel", true, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			if tc.left {
				f.SetHeld(ActionLeft)
			}
			if tc.right {
				f.SetHeld(ActionRight)
			}
			if got := f.HeldDir(); got != tc.expected {
				t.Errorf("HeldDir() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.SetHeld(ActionLeft)

	clone := f.Clone()
	f.Clear()
	f.ReleaseHeld(ActionLeft)

	if !clone.Has(ActionJump) {
		t.Error("clone should keep edge actions independently")
	}
	if !clone.IsHeld(ActionLeft) {
		t.Error("clone should keep held state independently")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if ActionAttack.String() != "Attack" {
		t.Errorf("ActionAttack.String() = %q", ActionAttack.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify to Unknown")
	}
}
