package core

import "testing"

func TestInputFrameTapsKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.Tap(Point{1, 2})
	f.Tap(Point{3, 4})

	if len(f.Taps) != 2 {
		t.Fatalf("expected 2 taps, got %d", len(f.Taps))
	}
	if f.Taps[0] != (Point{1, 2}) || f.Taps[1] != (Point{3, 4}) {
		t.Errorf("taps out of order: %v", f.Taps)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionStats)
	f.Tap(Point{0, 0})

	if !f.Has(ActionStats) {
		t.Error("Has(ActionStats) should be true after Set")
	}

	f.Clear()

	if f.Has(ActionStats) {
		t.Error("Clear should reset actions")
	}
	if len(f.Taps) != 0 {
		t.Errorf("Clear should drop taps, got %d", len(f.Taps))
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionTap) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionTap)
	if !f.Has(ActionTap) {
		t.Error("Set on zero frame should allocate")
	}
}
