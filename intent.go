package felt

import "math"

// intentClassifier turns velocity metrics into a per-move Intent. It is
// per-touch state: the hysteresis counter must not leak between fingers.
//
// Classification is safety-first: ambiguous input is treated as precision
// input (FineAdjust), never as a coarse jump.
type intentClassifier struct {
	stableFrames int
}

func (c *intentClassifier) reset() {
	c.stableFrames = 0
}

// classifyMove evaluates the per-move rules. It runs on every update while
// the touch is active, independent of the discrete tap/swipe decision made
// at release.
func (c *intentClassifier) classifyMove(cfg *Config, v *VelocityAnalyzer, duration float64) Intent {
	vel := v.Velocity()
	jitter := v.Jitter()

	// Sustained stationary contact.
	if duration > cfg.HoldMinDuration && vel < cfg.HoldMaxVelocity {
		return IntentHold
	}

	// High jitter means tremor; low velocity means deliberate precision.
	// Either makes this a fine-adjust candidate, but it only commits after
	// several consecutive frames so marginal signals don't flicker.
	if jitter > cfg.JitterThreshold || vel < cfg.FineAdjustMaxVelocity {
		c.stableFrames++
		if c.stableFrames >= cfg.StableFramesRequired {
			return IntentFineAdjust
		}
	} else {
		c.stableFrames = 0
	}

	if vel > cfg.FastMorphMinVelocity {
		return IntentFastMorph
	}

	// Intermediate velocity: sudden acceleration is a deliberate movement.
	if math.Abs(v.Acceleration()) > cfg.AccelerationThreshold {
		return IntentFastMorph
	}

	return IntentFineAdjust
}

// tapTracker remembers the previous tap so a quick second tap upgrades to a
// double tap. Emitting a double tap consumes the timer, so a third tap is
// read as a fresh tap rather than a second double tap.
type tapTracker struct {
	lastTapTime float64
	hasTap      bool
}

func (t *tapTracker) reset() {
	t.lastTapTime = 0
	t.hasTap = false
}

// recordTap registers a tap at the given time and reports whether it
// completes a double tap.
func (t *tapTracker) recordTap(cfg *Config, now float64) bool {
	if t.hasTap && now-t.lastTapTime < cfg.DoubleTapInterval {
		t.reset()
		return true
	}
	t.lastTapTime = now
	t.hasTap = true
	return false
}

// classifyRelease reclassifies a touch discretely at lift-off from its
// duration, total displacement, and peak speed. Returns IntentUnknown when
// no release gesture matched; the caller keeps the last per-move intent.
func classifyRelease(cfg *Config, taps *tapTracker, duration, displacement, peakVelocity float64,
	releaseVelocity Vec2, now float64) (Intent, SwipeDirection) {

	if duration < cfg.TapMaxDuration && displacement < cfg.TapMaxDistance {
		if taps.recordTap(cfg, now) {
			return IntentDoubleTap, SwipeNone
		}
		return IntentTap, SwipeNone
	}

	if displacement > cfg.SwipeMinDistance && peakVelocity > cfg.SwipeMinVelocity {
		return IntentSwipe, quantizeSwipeDirection(releaseVelocity.Angle())
	}

	return IntentUnknown, SwipeNone
}

// quantizeSwipeDirection maps a release angle into four compass sectors of
// ±45°. Y increases downward, so positive angles point down.
func quantizeSwipeDirection(angle float64) SwipeDirection {
	switch {
	case angle > -math.Pi/4 && angle < math.Pi/4:
		return SwipeRight
	case angle >= math.Pi/4 && angle < 3*math.Pi/4:
		return SwipeDown
	case angle <= -math.Pi/4 && angle > -3*math.Pi/4:
		return SwipeUp
	default:
		return SwipeLeft
	}
}
