package felt

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// VelocityAnalyzer tracks movement speed, acceleration, and jitter over a
// short window of recent samples. Velocity is smoothed with an exponential
// moving average so a single noisy sample cannot flip the intent classifier.
//
// All storage is fixed-size; AddSample never allocates.
type VelocityAnalyzer struct {
	positions  [velocityHistorySize]Vec2
	timestamps [velocityHistorySize]float64
	count      int // filled entries, saturates at velocityHistorySize
	head       int // next write index

	// dists holds consecutive inter-sample distances for the jitter
	// estimate. Order is irrelevant to a standard deviation, so the ring
	// is handed to gonum as-is.
	dists     [velocityHistorySize]float64
	distCount int
	distHead  int

	velocity     float64 // EMA-smoothed speed, px/s
	velocityVec  Vec2    // EMA-smoothed velocity vector, px/s
	acceleration float64 // px/s²
	jitter       float64 // stddev of inter-sample distances, px
	peakVelocity float64 // max raw speed seen since reset
}

const (
	velocityEMAKeep = 0.7
	velocityEMANew  = 0.3
)

// Reset clears all history and metrics.
func (a *VelocityAnalyzer) Reset() {
	*a = VelocityAnalyzer{}
}

// AddSample records a position at the given timestamp and refreshes the
// velocity, acceleration, and jitter metrics.
func (a *VelocityAnalyzer) AddSample(position Vec2, timestamp float64) {
	var prev Vec2
	var prevTime float64
	hasPrev := a.count > 0
	if hasPrev {
		prev, prevTime = a.last()
	}

	a.positions[a.head] = position
	a.timestamps[a.head] = timestamp
	a.head = (a.head + 1) % velocityHistorySize
	if a.count < velocityHistorySize {
		a.count++
	}

	if !hasPrev {
		return
	}

	dt := timestamp - prevTime
	dist := prev.Dist(position)

	a.dists[a.distHead] = dist
	a.distHead = (a.distHead + 1) % velocityHistorySize
	if a.distCount < velocityHistorySize {
		a.distCount++
	}

	if dt > 1e-4 {
		newVelocity := dist / dt
		if newVelocity > a.peakVelocity {
			a.peakVelocity = newVelocity
		}

		a.acceleration = (newVelocity - a.velocity) / dt
		a.velocity = a.velocity*velocityEMAKeep + newVelocity*velocityEMANew

		a.velocityVec.X = a.velocityVec.X*velocityEMAKeep + (position.X-prev.X)/dt*velocityEMANew
		a.velocityVec.Y = a.velocityVec.Y*velocityEMAKeep + (position.Y-prev.Y)/dt*velocityEMANew
	}

	// Jitter needs a few samples before the estimate means anything.
	if a.count >= 5 {
		a.jitter = stat.PopStdDev(a.dists[:a.distCount], nil)
	}
}

// last returns the most recently recorded sample.
func (a *VelocityAnalyzer) last() (Vec2, float64) {
	i := (a.head + velocityHistorySize - 1) % velocityHistorySize
	return a.positions[i], a.timestamps[i]
}

// Velocity returns the EMA-smoothed speed in px/s.
func (a *VelocityAnalyzer) Velocity() float64 {
	return a.velocity
}

// VelocityVector returns the EMA-smoothed velocity vector in px/s.
// Its angle quantizes a swipe's release direction.
func (a *VelocityAnalyzer) VelocityVector() Vec2 {
	return a.velocityVec
}

// PeakVelocity returns the highest raw speed seen since the last reset.
func (a *VelocityAnalyzer) PeakVelocity() float64 {
	return a.peakVelocity
}

// Acceleration returns the latest acceleration estimate in px/s².
func (a *VelocityAnalyzer) Acceleration() float64 {
	return a.acceleration
}

// Jitter returns the standard deviation of consecutive inter-sample
// distances in px. Zero until at least five samples have been recorded.
func (a *VelocityAnalyzer) Jitter() float64 {
	return a.jitter
}

// Stable reports whether the touch is holding steady: low jitter and no
// significant acceleration.
func (a *VelocityAnalyzer) Stable() bool {
	return a.jitter < 2 && math.Abs(a.acceleration) < 50
}
