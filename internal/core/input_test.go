package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionSelect) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionSelect)
	f.Set(ActionLeft)
	if !f.Has(ActionSelect) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionHint) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionSelect) || f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionSelect, "Select"},
		{ActionHint, "Hint"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
