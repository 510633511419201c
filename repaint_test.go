package felt

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRepaintFlushDeliversOptimizedRegions(t *testing.T) {
	cfg := DefaultConfig()
	dirty := NewDirtyRegionTracker(cfg)
	s := NewRepaintScheduler(cfg, dirty)

	var got [][]Rect
	s.OnRepaint(func(regions []Rect) {
		cp := make([]Rect, len(regions))
		copy(cp, regions)
		got = append(got, cp)
	})

	s.RequestRepaint(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	s.RequestRepaint(Rect{X: 50, Y: 0, Width: 100, Height: 100})
	s.Flush()

	want := [][]Rect{{{X: 0, Y: 0, Width: 150, Height: 100}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flush payload mismatch (-want +got):\n%s", diff)
	}
	if dirty.Dirty() {
		t.Errorf("tracker still dirty after flush")
	}

	// Nothing pending: flush must not fire the callback again.
	s.Flush()
	if len(got) != 1 {
		t.Errorf("callback fired %d times, want 1", len(got))
	}
}

func TestRepaintTickFlushes(t *testing.T) {
	cfg := DefaultConfig()
	dirty := NewDirtyRegionTracker(cfg)
	s := NewRepaintScheduler(cfg, dirty)

	fired := 0
	s.OnRepaint(func([]Rect) { fired++ })

	s.Tick(0)
	if fired != 0 {
		t.Fatalf("callback fired on clean tick")
	}

	s.RequestRepaint(Rect{X: 10, Y: 10, Width: 20, Height: 20})
	s.Tick(1.0 / 120)
	if fired != 1 {
		t.Errorf("callback fired %d times, want 1", fired)
	}
}

func TestRepaintFPSEstimate(t *testing.T) {
	cfg := DefaultConfig()
	s := NewRepaintScheduler(cfg, NewDirtyRegionTracker(cfg))

	// Seeded at half the target rate.
	if got := s.CurrentFPS(); got != 60 {
		t.Fatalf("initial CurrentFPS() = %v, want 60", got)
	}

	// One 120Hz frame moves the EMA a tenth of the way.
	s.Tick(0)
	s.Tick(1.0 / 120)
	if got := s.CurrentFPS(); math.Abs(got-66) > 1e-9 {
		t.Errorf("CurrentFPS() after one 120Hz frame = %v, want 66", got)
	}

	// Sustained 120Hz frames converge on 120.
	now := 1.0 / 120
	for i := 0; i < 300; i++ {
		now += 1.0 / 120
		s.Tick(now)
	}
	if got := s.CurrentFPS(); math.Abs(got-120) > 0.5 {
		t.Errorf("CurrentFPS() after sustained 120Hz = %v, want ~120", got)
	}
}

func TestRepaintFrameInterval(t *testing.T) {
	cfg := DefaultConfig()
	s := NewRepaintScheduler(cfg, NewDirtyRegionTracker(cfg))
	if got := s.FrameInterval(); math.Abs(got-1.0/120) > 1e-12 {
		t.Errorf("FrameInterval() = %v, want %v", got, 1.0/120)
	}
}
