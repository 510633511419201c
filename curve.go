package felt

import "math"

// CurveType selects the shape a ResponseCurve maps input through.
type CurveType uint8

const (
	CurveLinear       CurveType = iota
	CurveExponential            // x² - slow start, fast finish
	CurveLogarithmic            // fast start, slow finish
	CurveSCurve                 // smoothstep, gentle at both ends
	CurveFineControl            // cubic blended with linear, range compressed for precision
	CurveFastResponse           // 1-(1-x)² - immediate response for morphing
)

const (
	minSensitivity = 0.1
	maxSensitivity = 10
	// sensitivityBlend keeps the live sensitivity gliding toward its
	// target so it never jumps discontinuously mid-gesture.
	sensitivityBlend = 0.1
)

// ResponseCurve maps a normalized [0, 1] input to [0, 1] output under a
// selectable shape, scaled by a sensitivity that adapts to the current
// touch intent.
type ResponseCurve struct {
	curve             CurveType
	sensitivity       float64
	targetSensitivity float64
}

// NewResponseCurve returns a linear curve at unit sensitivity.
func NewResponseCurve() ResponseCurve {
	return ResponseCurve{
		curve:             CurveLinear,
		sensitivity:       1,
		targetSensitivity: 1,
	}
}

// SetCurve selects the curve shape directly.
func (c *ResponseCurve) SetCurve(t CurveType) {
	c.curve = t
}

// SetSensitivity sets the live sensitivity, clamped to [0.1, 10].
func (c *ResponseCurve) SetSensitivity(s float64) {
	c.sensitivity = clamp(s, minSensitivity, maxSensitivity)
}

// Curve returns the active curve shape.
func (c *ResponseCurve) Curve() CurveType {
	return c.curve
}

// Sensitivity returns the live sensitivity.
func (c *ResponseCurve) Sensitivity() float64 {
	return c.sensitivity
}

// AdaptToIntent selects the curve shape and target sensitivity for the
// detected intent, then blends the live sensitivity one step toward the
// target. Call once per update; repeated calls converge smoothly.
func (c *ResponseCurve) AdaptToIntent(intent Intent) {
	switch intent {
	case IntentFineAdjust:
		c.curve = CurveFineControl
		c.targetSensitivity = 0.3
	case IntentFastMorph, IntentSwipe:
		c.curve = CurveFastResponse
		c.targetSensitivity = 2
	case IntentHold:
		c.curve = CurveLinear
		c.targetSensitivity = 0.5
	default:
		c.curve = CurveSCurve
		c.targetSensitivity = 1
	}

	c.sensitivity = c.sensitivity*(1-sensitivityBlend) + c.targetSensitivity*sensitivityBlend
}

// Apply maps a normalized [0, 1] input through the curve and sensitivity.
func (c *ResponseCurve) Apply(input float64) float64 {
	x := clamp(input, 0, 1)
	var out float64

	switch c.curve {
	case CurveExponential:
		out = x * x
	case CurveLogarithmic:
		out = math.Log1p(x*9) / math.Ln10
	case CurveSCurve:
		out = x * x * (3 - 2*x)
	case CurveFineControl:
		out = (x*x*x*0.5 + x*0.5) * 0.3
	case CurveFastResponse:
		out = 1 - (1-x)*(1-x)
	default:
		out = x
	}

	return out * c.sensitivity
}

// ApplySigned mirrors the curve for negative inputs in [-1, 1].
func (c *ResponseCurve) ApplySigned(input float64) float64 {
	if input < 0 {
		return -c.Apply(-input)
	}
	return c.Apply(input)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
