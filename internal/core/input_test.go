package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionPause) {
		t.Error("empty frame reported an action")
	}

	f.Set(ActionPause)
	f.Set(ActionDebug)
	if !f.Has(ActionPause) || !f.Has(ActionDebug) {
		t.Error("set actions not reported")
	}
	if f.Has(ActionQuit) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionPause) || f.Has(ActionDebug) {
		t.Error("actions survived Clear")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// A zero-valued frame must be safe to read and write.
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame reported an action")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame did not register")
	}
}

func TestActionString(t *testing.T) {
	cases := map[Action]string{
		ActionNone:    "None",
		ActionPause:   "Pause",
		ActionRestart: "Restart",
		ActionDebug:   "Debug",
		ActionQuit:    "Quit",
	}
	for a, want := range cases {
		if got := a.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", a, got, want)
		}
	}
}
