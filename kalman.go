package felt

// kalmanFilter is a 1D recursive estimator that blends each new measurement
// with the running estimate, weighted by relative uncertainty. It removes
// high-frequency tremor while preserving intentional movement.
type kalmanFilter struct {
	x           float64 // state estimate
	p           float64 // estimate uncertainty
	q           float64 // process noise (lower = more smoothing)
	r           float64 // measurement noise (higher = trust measurements less)
	initialized bool
}

func newKalmanFilter(q, r float64) kalmanFilter {
	return kalmanFilter{q: q, r: r, p: 1}
}

// Update folds a measurement into the estimate and returns the new estimate.
// The first call seeds the state from the measurement.
func (f *kalmanFilter) Update(measurement float64) float64 {
	if !f.initialized {
		f.x = measurement
		f.p = 1
		f.initialized = true
		return f.x
	}

	// Predict.
	pPred := f.p + f.q

	// Correct.
	k := pPred / (pPred + f.r) // Kalman gain
	f.x += k * (measurement - f.x)
	f.p = (1 - k) * pPred

	return f.x
}

// State returns the current estimate without folding in a measurement.
func (f *kalmanFilter) State() float64 {
	return f.x
}

// Reset clears the filter; the next Update re-seeds the state.
func (f *kalmanFilter) Reset() {
	f.x = 0
	f.p = 1
	f.initialized = false
}

// PositionFilter smooths a 2D touch position with two independent 1D Kalman
// filters, one per axis. Cross-axis covariance is deliberately omitted: two
// scalar filters are deterministic and constant-time, which matters more
// than estimator optimality under the sub-8ms latency budget.
type PositionFilter struct {
	fx, fy kalmanFilter
}

// NewPositionFilter creates a position filter with process noise q and
// measurement noise r applied to both axes.
func NewPositionFilter(q, r float64) PositionFilter {
	return PositionFilter{
		fx: newKalmanFilter(q, r),
		fy: newKalmanFilter(q, r),
	}
}

// Update folds a measured position into the estimate and returns the
// smoothed position.
func (f *PositionFilter) Update(measurement Vec2) Vec2 {
	return Vec2{
		X: f.fx.Update(measurement.X),
		Y: f.fy.Update(measurement.Y),
	}
}

// State returns the current smoothed position.
func (f *PositionFilter) State() Vec2 {
	return Vec2{X: f.fx.State(), Y: f.fy.State()}
}

// Reset clears both axes; the next Update re-seeds from the measurement.
func (f *PositionFilter) Reset() {
	f.fx.Reset()
	f.fy.Reset()
}
