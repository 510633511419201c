package felt

import "math"

// SlewRateLimiter caps how fast a value may change per unit time. It
// prevents both visual "teleporting" of a cursor and audible discontinuities
// when a touch drives a synthesis parameter: no matter how large the jump in
// the target, the output moves at most maxRate per second.
type SlewRateLimiter struct {
	maxRate     float64
	current     float64
	initialized bool
}

// NewSlewRateLimiter creates a limiter allowing at most maxRate units of
// change per second.
func NewSlewRateLimiter(maxRate float64) SlewRateLimiter {
	return SlewRateLimiter{maxRate: maxRate}
}

// SetMaxRate changes the rate cap. Takes effect on the next Process call.
func (l *SlewRateLimiter) SetMaxRate(maxRate float64) {
	l.maxRate = maxRate
}

// Process moves the current value toward target, bounded by
// maxRate * deltaTime, and returns it. The first call snaps to the target.
func (l *SlewRateLimiter) Process(target, deltaTime float64) float64 {
	if !l.initialized {
		l.current = target
		l.initialized = true
		return l.current
	}

	maxChange := l.maxRate * deltaTime
	diff := target - l.current

	if math.Abs(diff) <= maxChange {
		l.current = target
	} else if diff > 0 {
		l.current += maxChange
	} else {
		l.current -= maxChange
	}

	return l.current
}

// Reset clears the limiter; the next Process snaps to its target.
func (l *SlewRateLimiter) Reset() {
	l.current = 0
	l.initialized = false
}

// ResetTo seeds the limiter at value so the next Process ramps from there.
func (l *SlewRateLimiter) ResetTo(value float64) {
	l.current = value
	l.initialized = true
}

// Current returns the last output value.
func (l *SlewRateLimiter) Current() float64 {
	return l.current
}
