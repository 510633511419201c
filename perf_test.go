package felt

import (
	"math"
	"testing"
)

func TestPerformanceMonitorLatencyEMA(t *testing.T) {
	m := NewPerformanceMonitor(DefaultConfig())

	m.RecordTouchLatency(0.010)
	got := m.Metrics()
	if math.Abs(got.AvgTouchLatency-0.001) > 1e-12 {
		t.Errorf("AvgTouchLatency after one sample = %v, want 0.001", got.AvgTouchLatency)
	}
	if got.MaxTouchLatency != 0.010 {
		t.Errorf("MaxTouchLatency = %v, want 0.010", got.MaxTouchLatency)
	}

	// Repeated samples converge the EMA on the sample value.
	for i := 0; i < 500; i++ {
		m.RecordTouchLatency(0.010)
	}
	got = m.Metrics()
	if math.Abs(got.AvgTouchLatency-0.010) > 1e-4 {
		t.Errorf("AvgTouchLatency after convergence = %v, want ~0.010", got.AvgTouchLatency)
	}
}

func TestPerformanceMonitorLatencyTarget(t *testing.T) {
	m := NewPerformanceMonitor(DefaultConfig())

	m.RecordTouchLatency(0.001)
	if !m.Metrics().MeetingLatencyTarget {
		t.Errorf("MeetingLatencyTarget = false at 0.1ms average, want true")
	}

	// Push the average past the 8ms budget.
	for i := 0; i < 500; i++ {
		m.RecordTouchLatency(0.020)
	}
	if m.Metrics().MeetingLatencyTarget {
		t.Errorf("MeetingLatencyTarget = true at ~20ms average, want false")
	}
}

func TestPerformanceMonitorSecondRollover(t *testing.T) {
	m := NewPerformanceMonitor(DefaultConfig())

	m.Tick(0) // seeds the window
	for i := 0; i < 7; i++ {
		m.RecordTouchLatency(0.001)
	}
	m.RecordRepaintTime(0.002)
	m.RecordRepaintTime(0.002)

	// Mid-window: per-second numbers not published yet.
	m.Tick(0.5)
	got := m.Metrics()
	if got.TouchEventsPerSecond != 0 || got.RepaintsPerSecond != 0 {
		t.Fatalf("per-second counts published mid-window: %+v", got)
	}

	m.Tick(1.1)
	got = m.Metrics()
	if got.TouchEventsPerSecond != 7 {
		t.Errorf("TouchEventsPerSecond = %d, want 7", got.TouchEventsPerSecond)
	}
	if got.RepaintsPerSecond != 2 {
		t.Errorf("RepaintsPerSecond = %d, want 2", got.RepaintsPerSecond)
	}
	if got.MaxTouchLatency != 0 {
		t.Errorf("MaxTouchLatency = %v after rollover, want 0", got.MaxTouchLatency)
	}

	// The next window starts empty.
	m.Tick(2.2)
	got = m.Metrics()
	if got.TouchEventsPerSecond != 0 {
		t.Errorf("TouchEventsPerSecond in empty window = %d, want 0", got.TouchEventsPerSecond)
	}
}

func TestPerformanceMonitorHitTestAverage(t *testing.T) {
	m := NewPerformanceMonitor(DefaultConfig())
	m.RecordHitTestTime(0.0005)
	got := m.Metrics()
	if math.Abs(got.AvgHitTestTime-0.00005) > 1e-15 {
		t.Errorf("AvgHitTestTime = %v, want 0.00005", got.AvgHitTestTime)
	}
}
