package felt

// Config exposes every numeric threshold in the pipeline. The zero value is
// not usable; start from DefaultConfig and override fields before
// constructing a Surface or individual components.
type Config struct {
	// TargetFrameRate is the repaint scheduler's flush rate in Hz.
	TargetFrameRate float64

	// KalmanProcessNoise is the per-axis process noise q.
	// Lower values smooth more at the cost of lag.
	KalmanProcessNoise float64
	// KalmanMeasurementNoise is the per-axis measurement noise r.
	// Higher values trust raw measurements less.
	KalmanMeasurementNoise float64

	// MaxSlewRateFine caps position change in px/s while intent is FineAdjust.
	MaxSlewRateFine float64
	// MaxSlewRateFast caps position change in px/s for all other intents.
	MaxSlewRateFast float64

	// FineAdjustMaxVelocity is the speed in px/s below which movement is a
	// fine-adjust candidate.
	FineAdjustMaxVelocity float64
	// FastMorphMinVelocity is the speed in px/s above which movement is a
	// fast morph.
	FastMorphMinVelocity float64
	// AccelerationThreshold is the |acceleration| in px/s² that promotes an
	// intermediate-velocity movement to FastMorph.
	AccelerationThreshold float64
	// JitterThreshold is the inter-sample distance stddev in px above which
	// movement is treated as tremor (fine-adjust candidate).
	JitterThreshold float64
	// StableFramesRequired is the consecutive-frame hysteresis before a
	// fine-adjust candidate commits.
	StableFramesRequired int

	// TapMaxDuration is the maximum contact time in seconds for a tap.
	TapMaxDuration float64
	// TapMaxDistance is the maximum total displacement in px for a tap.
	TapMaxDistance float64
	// DoubleTapInterval is the maximum gap in seconds between two taps.
	DoubleTapInterval float64
	// HoldMinDuration is the minimum contact time in seconds for a hold.
	HoldMinDuration float64
	// HoldMaxVelocity is the maximum speed in px/s during a hold.
	HoldMaxVelocity float64
	// SwipeMinDistance is the minimum total displacement in px for a swipe.
	SwipeMinDistance float64
	// SwipeMinVelocity is the minimum peak speed in px/s for a swipe.
	SwipeMinVelocity float64

	// TouchSlop is the movement in px before a touch counts as moved.
	TouchSlop float64
	// LongPressDuration is the stationary time in seconds before a
	// long press fires.
	LongPressDuration float64
	// PinchMinScaleChange is the |scale-1| threshold before pinch emits.
	PinchMinScaleChange float64
	// RotateMinAngle is the |angle| threshold in radians before rotate emits.
	RotateMinAngle float64

	// GridCellSize is the spatial hash cell edge in px.
	GridCellSize int
	// MaxGridCells caps the grid at MaxGridCells x MaxGridCells cells.
	MaxGridCells int

	// MaxDirtyRegions caps the dirty-region set; beyond it new regions are
	// absorbed into the nearest existing one.
	MaxDirtyRegions int
	// CoalesceThreshold merges two dirty regions when their intersection
	// area exceeds this fraction of the smaller region's area.
	CoalesceThreshold float64

	// ParameterSpan is the displacement in px mapped to a parameter's full
	// range by TouchToParameter.
	ParameterSpan float64

	// MaxTouchLatency is the latency target in seconds the performance
	// monitor checks average touch latency against.
	MaxTouchLatency float64
}

// Pool and history capacities. Fixed so the hot path never allocates.
const (
	maxTouchPoints      = 10 // filtered touch-state pool slots
	maxRegistryTouches  = 10 // raw gesture-registry slots
	velocityHistorySize = 10 // velocity analyzer ring buffer
	registryHistorySize = 5  // raw-touch velocity history
)

// DefaultConfig returns the tuned defaults for a 120Hz touch surface.
func DefaultConfig() Config {
	return Config{
		TargetFrameRate:        120,
		KalmanProcessNoise:     0.001,
		KalmanMeasurementNoise: 0.1,
		MaxSlewRateFine:        200,
		MaxSlewRateFast:        2000,
		FineAdjustMaxVelocity:  50,
		FastMorphMinVelocity:   200,
		AccelerationThreshold:  100,
		JitterThreshold:        3,
		StableFramesRequired:   5,
		TapMaxDuration:         0.2,
		TapMaxDistance:         20,
		DoubleTapInterval:      0.3,
		HoldMinDuration:        0.5,
		HoldMaxVelocity:        10,
		SwipeMinDistance:       50,
		SwipeMinVelocity:       200,
		TouchSlop:              8,
		LongPressDuration:      0.5,
		PinchMinScaleChange:    0.05,
		RotateMinAngle:         0.05,
		GridCellSize:           64,
		MaxGridCells:           64,
		MaxDirtyRegions:        32,
		CoalesceThreshold:      0.3,
		ParameterSpan:          500,
		MaxTouchLatency:        0.008,
	}
}
