package felt

import (
	"math"
	"testing"
)

func TestResponseCurveShapes(t *testing.T) {
	tests := []struct {
		name  string
		curve CurveType
		in    float64
		want  float64
	}{
		{"linear mid", CurveLinear, 0.5, 0.5},
		{"exponential mid", CurveExponential, 0.5, 0.25},
		{"logarithmic mid", CurveLogarithmic, 0.5, math.Log1p(4.5) / math.Ln10},
		{"scurve mid", CurveSCurve, 0.5, 0.5},
		{"scurve quarter", CurveSCurve, 0.25, 0.15625},
		{"fine control mid", CurveFineControl, 0.5, (0.0625 + 0.25) * 0.3},
		{"fast response mid", CurveFastResponse, 0.5, 0.75},
		{"zero in zero out", CurveExponential, 0, 0},
		{"clamps above one", CurveLinear, 1.5, 1},
		{"clamps below zero", CurveLinear, -0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewResponseCurve()
			c.SetCurve(tt.curve)
			if got := c.Apply(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResponseCurveSensitivityScalesOutput(t *testing.T) {
	c := NewResponseCurve()
	c.SetSensitivity(2)
	if got := c.Apply(0.5); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Apply(0.5) at sensitivity 2 = %v, want 1", got)
	}
}

func TestResponseCurveSensitivityClamped(t *testing.T) {
	c := NewResponseCurve()
	c.SetSensitivity(100)
	if got := c.Sensitivity(); got != 10 {
		t.Errorf("Sensitivity() after SetSensitivity(100) = %v, want 10", got)
	}
	c.SetSensitivity(0)
	if got := c.Sensitivity(); got != 0.1 {
		t.Errorf("Sensitivity() after SetSensitivity(0) = %v, want 0.1", got)
	}
}

func TestResponseCurveAdaptToIntent(t *testing.T) {
	c := NewResponseCurve()

	c.AdaptToIntent(IntentFineAdjust)
	if c.Curve() != CurveFineControl {
		t.Errorf("curve after FineAdjust = %v, want CurveFineControl", c.Curve())
	}
	// One blend step from 1.0 toward 0.3.
	if got := c.Sensitivity(); math.Abs(got-0.93) > 1e-9 {
		t.Errorf("sensitivity after one FineAdjust step = %v, want 0.93", got)
	}

	// Repeated adaptation converges on the target without overshooting.
	for i := 0; i < 200; i++ {
		c.AdaptToIntent(IntentFineAdjust)
	}
	if got := c.Sensitivity(); math.Abs(got-0.3) > 1e-3 {
		t.Errorf("sensitivity after convergence = %v, want 0.3", got)
	}

	c.AdaptToIntent(IntentFastMorph)
	if c.Curve() != CurveFastResponse {
		t.Errorf("curve after FastMorph = %v, want CurveFastResponse", c.Curve())
	}
	c.AdaptToIntent(IntentHold)
	if c.Curve() != CurveLinear {
		t.Errorf("curve after Hold = %v, want CurveLinear", c.Curve())
	}
	c.AdaptToIntent(IntentUnknown)
	if c.Curve() != CurveSCurve {
		t.Errorf("curve after Unknown = %v, want CurveSCurve", c.Curve())
	}
}

func TestResponseCurveApplySigned(t *testing.T) {
	c := NewResponseCurve()
	c.SetCurve(CurveExponential)
	pos := c.ApplySigned(0.5)
	neg := c.ApplySigned(-0.5)
	if math.Abs(pos+neg) > 1e-9 {
		t.Errorf("ApplySigned not odd-symmetric: f(0.5)=%v f(-0.5)=%v", pos, neg)
	}
	if neg != -0.25 {
		t.Errorf("ApplySigned(-0.5) = %v, want -0.25", neg)
	}
}
