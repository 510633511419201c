package felt

import (
	"math"
	"testing"
)

func TestParameterBinderSlewByIntent(t *testing.T) {
	b := NewParameterBinder()
	var got float64
	b.Bind(1, func(v float64, _ Intent) { got = v }, 0, 1, 0.5, true)

	// Fine adjust ramps at 2 units/s: a full-range jump over 0.1s moves
	// only 0.2.
	b.Update(1, 1.0, IntentFineAdjust, 0.1)
	if math.Abs(got-0.7) > 1e-9 {
		t.Errorf("fine-adjust update = %v, want 0.7", got)
	}

	// Fast morph ramps at 20 units/s and reaches the target within budget.
	b.Update(1, 1.0, IntentFastMorph, 0.1)
	if got != 1.0 {
		t.Errorf("fast-morph update = %v, want 1.0", got)
	}
	if b.Value(1) != 1.0 {
		t.Errorf("Value(1) = %v, want 1.0", b.Value(1))
	}
}

func TestParameterBinderClampsToRange(t *testing.T) {
	b := NewParameterBinder()
	var got float64
	b.Bind(2, func(v float64, _ Intent) { got = v }, 0, 1, 0.9, false)

	b.Update(2, 5.0, IntentFastMorph, 1.0) // huge step, clamped
	if got != 1.0 {
		t.Errorf("clamped update = %v, want 1.0", got)
	}
}

func TestParameterBinderUnknownIDIgnored(t *testing.T) {
	b := NewParameterBinder()
	b.Update(42, 1.0, IntentFastMorph, 0.1) // must not panic
	if b.Value(42) != 0 {
		t.Errorf("Value(42) = %v, want 0 for unbound id", b.Value(42))
	}
}

func TestParameterBinderUnbind(t *testing.T) {
	b := NewParameterBinder()
	calls := 0
	b.Bind(1, func(float64, Intent) { calls++ }, 0, 1, 0.5, false)
	b.Unbind(1)
	b.Update(1, 1.0, IntentFastMorph, 0.1)
	if calls != 0 {
		t.Errorf("setter called %d times after Unbind, want 0", calls)
	}
}

func TestParameterBinderAsTouchListener(t *testing.T) {
	c := NewTouchController(DefaultConfig())
	b := NewParameterBinder()
	var got float64
	b.Bind(7, func(v float64, _ Intent) { got = v }, 0, 1, 0.5, false)
	c.AddListener(b)

	// Controller fan-out reaches the binder through the listener interface.
	c.NotifyParameterChange(7, 0.52, IntentFineAdjust)
	if math.Abs(got-0.52) > 1e-9 {
		t.Errorf("value after fan-out = %v, want 0.52", got)
	}
}
