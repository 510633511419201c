package felt

// Per-intent slew rates for bound parameters, in normalized units per
// second. Fine adjustment ramps slowly enough to stay inaudible.
const (
	paramSlewRateFine = 2
	paramSlewRateFast = 20
)

// ParameterBinding connects one parameter id to a setter with slew-limited
// updates.
type ParameterBinding struct {
	ParameterID int
	Setter      func(value float64, intent Intent)
	MinValue    float64
	MaxValue    float64
	Vertical    bool

	currentValue float64
	slew         SlewRateLimiter
}

// ParameterBinder routes touch-driven parameter changes to bound setters
// with per-intent slew limiting, so a finger jump never becomes a parameter
// discontinuity. It implements TouchListener and can be added directly to a
// TouchController.
type ParameterBinder struct {
	NopTouchListener
	bindings map[int]*ParameterBinding
}

// NewParameterBinder creates an empty binder.
func NewParameterBinder() *ParameterBinder {
	return &ParameterBinder{bindings: make(map[int]*ParameterBinding)}
}

// Bind registers a setter for a parameter id. initial seeds the current
// value so the first update ramps rather than jumps.
func (b *ParameterBinder) Bind(parameterID int, setter func(float64, Intent),
	minValue, maxValue, initial float64, vertical bool) {

	binding := &ParameterBinding{
		ParameterID:  parameterID,
		Setter:       setter,
		MinValue:     minValue,
		MaxValue:     maxValue,
		Vertical:     vertical,
		currentValue: initial,
		slew:         NewSlewRateLimiter(paramSlewRateFast),
	}
	binding.slew.ResetTo(initial)
	b.bindings[parameterID] = binding
}

// Unbind removes the binding for a parameter id.
func (b *ParameterBinder) Unbind(parameterID int) {
	delete(b.bindings, parameterID)
}

// Update slew-limits rawValue toward the bound parameter and invokes its
// setter. Unknown ids are ignored.
func (b *ParameterBinder) Update(parameterID int, rawValue float64, intent Intent, deltaTime float64) {
	binding, ok := b.bindings[parameterID]
	if !ok {
		return
	}

	rate := float64(paramSlewRateFast)
	if intent == IntentFineAdjust {
		rate = paramSlewRateFine
	}
	binding.slew.SetMaxRate(rate)

	smoothed := binding.slew.Process(rawValue, deltaTime)
	smoothed = clamp(smoothed, binding.MinValue, binding.MaxValue)

	binding.currentValue = smoothed
	if binding.Setter != nil {
		binding.Setter(smoothed, intent)
	}
}

// Value returns the current value of a bound parameter, or 0 for unknown ids.
func (b *ParameterBinder) Value(parameterID int) float64 {
	if binding, ok := b.bindings[parameterID]; ok {
		return binding.currentValue
	}
	return 0
}

// OnParameterChange implements TouchListener, forwarding controller-emitted
// parameter changes at the nominal frame interval.
func (b *ParameterBinder) OnParameterChange(parameterID int, value float64, intent Intent) {
	b.Update(parameterID, value, intent, 1.0/60)
}
