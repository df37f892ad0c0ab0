package debugger

import "testing"

func TestBreakpointManagerToggleAdds(t *testing.T) {
	bm := NewBreakpointManager()

	bp := bm.Toggle(0x1000)
	if bp == nil {
		t.Fatal("Toggle returned nil on first call")
	}
	if bp.Address != 0x1000 {
		t.Errorf("expected address 0x1000, got 0x%08X", bp.Address)
	}
	if !bp.Enabled {
		t.Error("breakpoint should be enabled by default")
	}
	if bp.HitCount != 0 {
		t.Errorf("initial hit count should be 0, got %d", bp.HitCount)
	}
}

func TestBreakpointManagerToggleRemoves(t *testing.T) {
	bm := NewBreakpointManager()

	bm.Toggle(0x1000)
	removed := bm.Toggle(0x1000)
	if removed != nil {
		t.Fatal("second Toggle at the same address should remove the breakpoint")
	}
	if bm.Get(0x1000) != nil {
		t.Error("breakpoint should no longer be present")
	}
}

func TestBreakpointManagerUniqueIDs(t *testing.T) {
	bm := NewBreakpointManager()

	bp1 := bm.Toggle(0x1000)
	bp2 := bm.Toggle(0x2000)

	if bp1.ID == bp2.ID {
		t.Error("breakpoint IDs should be unique")
	}
	if len(bm.All()) != 2 {
		t.Errorf("expected 2 breakpoints, got %d", len(bm.All()))
	}
}

func TestBreakpointManagerHitIncrementsCount(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Toggle(0x1000)

	bp, hit := bm.Hit(0x1000)
	if !hit {
		t.Fatal("expected Hit to report a hit at a set breakpoint")
	}
	if bp.HitCount != 1 {
		t.Errorf("expected hit count 1, got %d", bp.HitCount)
	}

	bm.Hit(0x1000)
	if got := bm.Get(0x1000).HitCount; got != 2 {
		t.Errorf("expected hit count 2 after second hit, got %d", got)
	}
}

func TestBreakpointManagerHitMissWhenUnset(t *testing.T) {
	bm := NewBreakpointManager()

	if _, hit := bm.Hit(0x1000); hit {
		t.Error("expected no hit at an address with no breakpoint")
	}
}

func TestBreakpointManagerHitMissWhenDisabled(t *testing.T) {
	bm := NewBreakpointManager()
	bp := bm.Toggle(0x1000)
	bp.Enabled = false

	if _, hit := bm.Hit(0x1000); hit {
		t.Error("expected no hit at a disabled breakpoint")
	}
}
