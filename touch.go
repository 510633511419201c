package felt

// TouchListener receives filtered touch events from a TouchController.
// Embed NopTouchListener and override only the methods you need.
type TouchListener interface {
	OnTouchStart(id int, position Vec2)
	OnTouchMove(id int, position Vec2, intent Intent)
	OnTouchEnd(id int, position Vec2, finalIntent Intent)
	OnIntentChanged(id int, oldIntent, newIntent Intent)
	OnParameterChange(parameterID int, value float64, intent Intent)
}

// NopTouchListener implements TouchListener with no-ops.
type NopTouchListener struct{}

func (NopTouchListener) OnTouchStart(int, Vec2)                 {}
func (NopTouchListener) OnTouchMove(int, Vec2, Intent)          {}
func (NopTouchListener) OnTouchEnd(int, Vec2, Intent)           {}
func (NopTouchListener) OnIntentChanged(int, Intent, Intent)    {}
func (NopTouchListener) OnParameterChange(int, float64, Intent) {}

// touchPoint is one slot of the fixed touch-state pool: the complete
// filtering state for a single finger.
type touchPoint struct {
	id               int
	rawPosition      Vec2
	filteredPosition Vec2
	startPosition    Vec2
	startTime        float64
	lastUpdateTime   float64
	active           bool

	kalman     PositionFilter
	velocity   VelocityAnalyzer
	classifier intentClassifier
	slewX      SlewRateLimiter
	slewY      SlewRateLimiter
	curve      ResponseCurve

	currentIntent Intent
}

func (tp *touchPoint) totalDistance() float64 {
	return tp.startPosition.Dist(tp.filteredPosition)
}

func (tp *touchPoint) duration() float64 {
	return tp.lastUpdateTime - tp.startTime
}

// release returns the slot to the pool. The response curve keeps its blended
// sensitivity so the next touch starts where the hand left off.
func (tp *touchPoint) release() {
	tp.id = -1
	tp.active = false
	tp.kalman.Reset()
	tp.velocity.Reset()
	tp.classifier.reset()
	tp.slewX.Reset()
	tp.slewY.Reset()
	tp.currentIntent = IntentUnknown
}

// TouchController owns the fixed pool of per-finger filtering state and runs
// the full pipeline on every raw sample: Kalman smoothing, velocity
// analysis, intent classification, response-curve adaptation, and slew
// limiting. It dispatches the results to registered listeners.
//
// More than maxTouchPoints concurrent touches exceed the pool; the extra
// touch-downs are silently ignored. This is a fixed-capacity backpressure
// policy, not a fault.
type TouchController struct {
	cfg       Config
	points    [maxTouchPoints]touchPoint
	listeners []TouchListener
	taps      tapTracker
}

// NewTouchController creates a controller with the given configuration.
func NewTouchController(cfg Config) *TouchController {
	c := &TouchController{cfg: cfg}
	for i := range c.points {
		tp := &c.points[i]
		tp.id = -1
		tp.kalman = NewPositionFilter(cfg.KalmanProcessNoise, cfg.KalmanMeasurementNoise)
		tp.slewX = NewSlewRateLimiter(cfg.MaxSlewRateFast)
		tp.slewY = NewSlewRateLimiter(cfg.MaxSlewRateFast)
		tp.curve = NewResponseCurve()
	}
	return c
}

// AddListener registers a listener for touch events.
func (c *TouchController) AddListener(l TouchListener) {
	c.listeners = append(c.listeners, l)
}

// RemoveListener unregisters a previously added listener.
func (c *TouchController) RemoveListener(l TouchListener) {
	for i := range c.listeners {
		if c.listeners[i] == l {
			copy(c.listeners[i:], c.listeners[i+1:])
			c.listeners[len(c.listeners)-1] = nil
			c.listeners = c.listeners[:len(c.listeners)-1]
			return
		}
	}
}

// findTouch returns the active slot for id, or nil.
func (c *TouchController) findTouch(id int) *touchPoint {
	for i := range c.points {
		if c.points[i].active && c.points[i].id == id {
			return &c.points[i]
		}
	}
	return nil
}

// freeSlot returns the first inactive slot, or nil when the pool is full.
func (c *TouchController) freeSlot() *touchPoint {
	for i := range c.points {
		if !c.points[i].active {
			return &c.points[i]
		}
	}
	return nil
}

// ProcessTouch runs one raw sample through the pipeline and returns the
// filtered position. down is true for touch-down and move samples, false at
// release. now is the sample timestamp in seconds.
func (c *TouchController) ProcessTouch(id int, raw Vec2, down bool, now float64) Vec2 {
	tp := c.findTouch(id)

	if down && tp == nil {
		tp = c.freeSlot()
		if tp == nil {
			return raw // pool exhausted; drop the touch
		}
		tp.id = id
		tp.active = true
		tp.rawPosition = raw
		tp.startPosition = raw
		tp.startTime = now
		tp.lastUpdateTime = now
		tp.kalman.Reset()
		tp.velocity.Reset()
		tp.classifier.reset()
		tp.slewX.ResetTo(raw.X)
		tp.slewY.ResetTo(raw.Y)
		tp.filteredPosition = raw
		tp.currentIntent = IntentUnknown

		c.notifyTouchStart(id, raw)
		return raw
	}

	if tp == nil {
		return raw
	}

	if !down {
		tp.lastUpdateTime = now
		final := c.finalIntent(tp, now)
		pos := tp.filteredPosition
		tp.release()

		c.notifyTouchEnd(id, pos, final)
		return pos
	}

	// Active move.
	deltaTime := now - tp.lastUpdateTime
	tp.lastUpdateTime = now
	tp.rawPosition = raw

	// Step 1: Kalman filter for tremor reduction.
	smoothed := tp.kalman.Update(raw)

	// Step 2: velocity metrics on the smoothed position.
	tp.velocity.AddSample(smoothed, now)

	// Step 3: classify intent.
	oldIntent := tp.currentIntent
	tp.currentIntent = tp.classifier.classifyMove(&c.cfg, &tp.velocity, tp.duration())
	if tp.currentIntent != oldIntent && oldIntent != IntentUnknown {
		c.notifyIntentChanged(id, oldIntent, tp.currentIntent)
	}

	// Step 4: adapt the response curve.
	tp.curve.AdaptToIntent(tp.currentIntent)

	// Step 5: pick the slew rate for the intent.
	slewRate := c.cfg.MaxSlewRateFast
	if tp.currentIntent == IntentFineAdjust {
		slewRate = c.cfg.MaxSlewRateFine
	}
	tp.slewX.SetMaxRate(slewRate)
	tp.slewY.SetMaxRate(slewRate)

	// Step 6: slew-limit the filtered position to prevent phase jumps.
	tp.filteredPosition = Vec2{
		X: tp.slewX.Process(smoothed.X, deltaTime),
		Y: tp.slewY.Process(smoothed.Y, deltaTime),
	}

	c.notifyTouchMove(id, tp.filteredPosition, tp.currentIntent)
	return tp.filteredPosition
}

// finalIntent reclassifies the touch discretely at release. Tap, double tap,
// and swipe are only decidable once the finger lifts; when none match, the
// last per-move intent stands.
func (c *TouchController) finalIntent(tp *touchPoint, now float64) Intent {
	end, _ := classifyRelease(&c.cfg, &c.taps,
		tp.duration(), tp.totalDistance(), tp.velocity.PeakVelocity(),
		tp.velocity.VelocityVector(), now)
	if end != IntentUnknown {
		return end
	}
	return tp.currentIntent
}

// ProcessTouchCancelled resets the slot for id without emitting events.
func (c *TouchController) ProcessTouchCancelled(id int) {
	if tp := c.findTouch(id); tp != nil {
		tp.release()
	}
}

// Intent returns the current intent for an active touch, or IntentUnknown.
func (c *TouchController) Intent(id int) Intent {
	if tp := c.findTouch(id); tp != nil {
		return tp.currentIntent
	}
	return IntentUnknown
}

// FilteredPosition returns the filtered position for an active touch.
// ok is false when no active touch has the given id.
func (c *TouchController) FilteredPosition(id int) (pos Vec2, ok bool) {
	if tp := c.findTouch(id); tp != nil {
		return tp.filteredPosition, true
	}
	return Vec2{}, false
}

// FineAdjusting reports whether the touch is in fine-adjust mode
// (tremoring or deliberately slow fingers detected).
func (c *TouchController) FineAdjusting(id int) bool {
	return c.Intent(id) == IntentFineAdjust
}

// ActiveTouchCount returns the number of occupied pool slots.
func (c *TouchController) ActiveTouchCount() int {
	n := 0
	for i := range c.points {
		if c.points[i].active {
			n++
		}
	}
	return n
}

// TouchToParameter converts a touch displacement into a parameter value in
// [minValue, maxValue]. Movement is normalized by the configured span,
// shaped by the touch's signed response curve, and mapped around the range
// center. vertical selects up-positive Y movement; otherwise right-positive
// X movement. Returns minValue when no active touch has the given id.
func (c *TouchController) TouchToParameter(id int, startPos, currentPos Vec2,
	minValue, maxValue float64, vertical bool) float64 {

	tp := c.findTouch(id)
	if tp == nil {
		return minValue
	}

	var delta float64
	if vertical {
		delta = startPos.Y - currentPos.Y // up = positive
	} else {
		delta = currentPos.X - startPos.X // right = positive
	}

	normalized := delta / c.cfg.ParameterSpan
	curved := tp.curve.ApplySigned(normalized)

	center := (minValue + maxValue) / 2
	halfRange := (maxValue - minValue) / 2

	return clamp(center+curved*halfRange, minValue, maxValue)
}

// NotifyParameterChange fans a parameter change out to all listeners.
// Widgets call this after mapping a touch through TouchToParameter.
func (c *TouchController) NotifyParameterChange(parameterID int, value float64, intent Intent) {
	for _, l := range c.listeners {
		l.OnParameterChange(parameterID, value, intent)
	}
}

func (c *TouchController) notifyTouchStart(id int, pos Vec2) {
	for _, l := range c.listeners {
		l.OnTouchStart(id, pos)
	}
}

func (c *TouchController) notifyTouchMove(id int, pos Vec2, intent Intent) {
	for _, l := range c.listeners {
		l.OnTouchMove(id, pos, intent)
	}
}

func (c *TouchController) notifyTouchEnd(id int, pos Vec2, intent Intent) {
	for _, l := range c.listeners {
		l.OnTouchEnd(id, pos, intent)
	}
}

func (c *TouchController) notifyIntentChanged(id int, oldIntent, newIntent Intent) {
	for _, l := range c.listeners {
		l.OnIntentChanged(id, oldIntent, newIntent)
	}
}
