package felt

import (
	"math"
	"testing"
)

func TestVelocityAnalyzerEMA(t *testing.T) {
	var a VelocityAnalyzer
	a.Reset()

	a.AddSample(Vec2{0, 0}, 0)
	a.AddSample(Vec2{10, 0}, 0.1)

	// Instantaneous speed is 100 px/s; the EMA blends it at 0.3 from zero.
	if got := a.Velocity(); math.Abs(got-30) > 1e-9 {
		t.Errorf("Velocity() = %v, want 30", got)
	}
	if got := a.PeakVelocity(); math.Abs(got-100) > 1e-9 {
		t.Errorf("PeakVelocity() = %v, want 100", got)
	}
	if got := a.Acceleration(); math.Abs(got-1000) > 1e-9 {
		t.Errorf("Acceleration() = %v, want 1000", got)
	}
	vec := a.VelocityVector()
	if math.Abs(vec.X-30) > 1e-9 || math.Abs(vec.Y) > 1e-9 {
		t.Errorf("VelocityVector() = %v, want {30 0}", vec)
	}
}

func TestVelocityAnalyzerPeakHoldsMaximum(t *testing.T) {
	var a VelocityAnalyzer
	a.Reset()

	a.AddSample(Vec2{0, 0}, 0)
	a.AddSample(Vec2{50, 0}, 0.1) // 500 px/s
	a.AddSample(Vec2{51, 0}, 0.2) // 10 px/s
	a.AddSample(Vec2{52, 0}, 0.3) // 10 px/s

	if got := a.PeakVelocity(); math.Abs(got-500) > 1e-9 {
		t.Errorf("PeakVelocity() = %v, want 500", got)
	}
}

func TestVelocityAnalyzerJitter(t *testing.T) {
	var a VelocityAnalyzer
	a.Reset()

	// Fewer than five samples: jitter is not yet defined.
	a.AddSample(Vec2{0, 0}, 0)
	a.AddSample(Vec2{5, 0}, 0.05)
	a.AddSample(Vec2{5, 0}, 0.1)
	if got := a.Jitter(); got != 0 {
		t.Errorf("Jitter() with 3 samples = %v, want 0", got)
	}

	// Wildly varying step sizes produce a high distance deviation.
	a.AddSample(Vec2{25, 0}, 0.15)
	a.AddSample(Vec2{25, 0}, 0.2)
	a.AddSample(Vec2{26, 0}, 0.25)
	if got := a.Jitter(); got <= 3 {
		t.Errorf("Jitter() over uneven steps = %v, want > 3", got)
	}
}

func TestVelocityAnalyzerStableWhenStationary(t *testing.T) {
	var a VelocityAnalyzer
	a.Reset()

	for i := 0; i < 8; i++ {
		a.AddSample(Vec2{100, 100}, float64(i)*0.05)
	}
	if !a.Stable() {
		t.Errorf("Stable() = false for a stationary touch, want true")
	}
}

func TestVelocityAnalyzerUnstableWhenAccelerating(t *testing.T) {
	var a VelocityAnalyzer
	a.Reset()

	a.AddSample(Vec2{0, 0}, 0)
	a.AddSample(Vec2{100, 0}, 0.05) // sudden 2000 px/s
	if a.Stable() {
		t.Errorf("Stable() = true right after a velocity spike, want false")
	}
}

func TestVelocityAnalyzerReset(t *testing.T) {
	var a VelocityAnalyzer
	a.Reset()
	a.AddSample(Vec2{0, 0}, 0)
	a.AddSample(Vec2{100, 0}, 0.1)
	a.Reset()

	if a.Velocity() != 0 || a.PeakVelocity() != 0 || a.Acceleration() != 0 {
		t.Errorf("analyzer not zeroed after Reset: vel=%v peak=%v accel=%v",
			a.Velocity(), a.PeakVelocity(), a.Acceleration())
	}
}
