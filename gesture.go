package felt

import "math"

// GestureEvent is an immutable value describing one detected gesture. It is
// emitted once per detection and not retained by the classifier.
type GestureEvent struct {
	Type           GestureType
	Position       Vec2
	Delta          Vec2
	Velocity       float64
	Scale          float64
	Rotation       float64
	TouchCount     int
	Timestamp      float64
	SwipeDirection SwipeDirection
}

type gestureHandler struct {
	id uint32
	fn func(GestureEvent)
}

// GestureHandle allows removing a registered gesture callback.
type GestureHandle struct {
	id uint32
	c  *GestureClassifier
}

// Remove unregisters this callback so it no longer fires.
func (h GestureHandle) Remove() {
	if h.c == nil {
		return
	}
	s := h.c.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = gestureHandler{}
			h.c.handlers = s[:len(s)-1]
			return
		}
	}
}

// GestureClassifier is a multi-touch gesture state machine. It tracks raw,
// unfiltered touches in a fixed registry and emits discrete GestureEvents:
// pan, pinch, rotate, tap, double tap, long press, swipe, two-finger tap,
// and three-finger swipe.
//
// Long presses are polled: call CheckLongPress from the frame loop.
type GestureClassifier struct {
	cfg      Config
	registry multiTouchRegistry
	handlers []gestureHandler
	nextID   uint32

	taps             tapTracker
	longPressEmitted bool

	// Two-touch geometry captured at the moment the second finger lands.
	initialSpread float64
	initialAngle  float64

	// Contact-group bookkeeping, reset when the last finger lifts.
	peakTouchCount  int
	groupTapsOnly   bool
	groupSwipeLatch bool
	lastRelease     Vec2
	releasedAsTap   int
}

// NewGestureClassifier creates a classifier with the given configuration.
func NewGestureClassifier(cfg Config) *GestureClassifier {
	return &GestureClassifier{cfg: cfg}
}

// OnGesture registers a callback for all gesture events. The returned
// handle removes it.
func (c *GestureClassifier) OnGesture(fn func(GestureEvent)) GestureHandle {
	c.nextID++
	c.handlers = append(c.handlers, gestureHandler{id: c.nextID, fn: fn})
	return GestureHandle{id: c.nextID, c: c}
}

func (c *GestureClassifier) emit(ev GestureEvent) {
	for _, h := range c.handlers {
		h.fn(ev)
	}
}

// TouchCount returns the number of fingers currently down.
func (c *GestureClassifier) TouchCount() int {
	return c.registry.count()
}

// Centroid returns the mean position of all fingers currently down.
func (c *GestureClassifier) Centroid() Vec2 {
	return c.registry.centroid()
}

// ProcessTouchBegan registers a new finger. Ignored when the registry is
// full.
func (c *GestureClassifier) ProcessTouchBegan(id int, x, y, pressure, time float64) {
	if c.registry.add(id, x, y, pressure, time) == nil {
		return
	}

	count := c.registry.count()
	if count == 1 {
		// New contact group.
		c.peakTouchCount = 1
		c.groupTapsOnly = true
		c.groupSwipeLatch = false
		c.releasedAsTap = 0
	}
	if count > c.peakTouchCount {
		c.peakTouchCount = count
	}

	// Capture two-touch geometry for pinch/rotate.
	if count == 2 {
		c.initialSpread = c.registry.averageSpread()
		c.initialAngle = c.registry.twoTouchAngle()
	}
}

// ProcessTouchMoved updates a finger and evaluates the continuous gestures.
func (c *GestureClassifier) ProcessTouchMoved(id int, x, y, pressure, time float64) {
	t := c.registry.update(id, x, y, pressure, time, c.cfg.TouchSlop)
	if t == nil {
		return
	}
	if t.hasMoved {
		c.groupTapsOnly = false
	}

	count := c.registry.count()

	// Single moved finger pans continuously.
	if count == 1 && t.hasMoved {
		const frameInterval = 1.0 / 60
		c.emit(GestureEvent{
			Type:       GesturePan,
			Position:   Vec2{x, y},
			Delta:      Vec2{t.velocityX * frameInterval, t.velocityY * frameInterval},
			Velocity:   t.speed(),
			TouchCount: 1,
			Timestamp:  time,
		})
	}

	if count >= 2 {
		spread := c.registry.averageSpread()
		scaleChange := spread / math.Max(0.01, c.initialSpread)

		if math.Abs(scaleChange-1) > c.cfg.PinchMinScaleChange {
			c.emit(GestureEvent{
				Type:       GesturePinch,
				Position:   c.registry.centroid(),
				Scale:      scaleChange,
				TouchCount: count,
				Timestamp:  time,
			})
		}

		if count == 2 {
			angleChange := normalizeAngle(c.registry.twoTouchAngle() - c.initialAngle)
			if math.Abs(angleChange) > c.cfg.RotateMinAngle {
				c.emit(GestureEvent{
					Type:       GestureRotate,
					Position:   c.registry.centroid(),
					Rotation:   angleChange,
					TouchCount: 2,
					Timestamp:  time,
				})
			}
		}
	}
}

// ProcessTouchEnded removes a finger and evaluates the discrete release
// gestures.
func (c *GestureClassifier) ProcessTouchEnded(id int, x, y, time float64) {
	t := c.registry.byID(id)
	if t == nil {
		return
	}

	duration := time - t.startTime
	speed := t.speed()
	angle := t.angle()
	moved := t.hasMoved

	c.lastRelease = Vec2{x, y}
	c.registry.remove(id)
	remaining := c.registry.count()

	tapQualifying := !moved && duration < c.cfg.TapMaxDuration
	if tapQualifying {
		c.releasedAsTap++
	}

	// Single-finger tap / double tap. Suppressed in multi-finger groups so
	// a two-finger tap does not also read as two single taps.
	if tapQualifying && c.peakTouchCount == 1 {
		if c.taps.recordTap(&c.cfg, time) {
			c.emit(GestureEvent{
				Type:       GestureDoubleTap,
				Position:   Vec2{x, y},
				TouchCount: 1,
				Timestamp:  time,
			})
		} else {
			c.emit(GestureEvent{
				Type:       GestureTap,
				Position:   Vec2{x, y},
				TouchCount: 1,
				Timestamp:  time,
			})
		}
	}

	// Swipe / three-finger swipe.
	if moved && speed > c.cfg.SwipeMinVelocity {
		if c.peakTouchCount >= 3 {
			if !c.groupSwipeLatch {
				c.groupSwipeLatch = true
				c.emit(GestureEvent{
					Type:           GestureThreeFingerSwipe,
					Position:       Vec2{x, y},
					Velocity:       speed,
					TouchCount:     3,
					Timestamp:      time,
					SwipeDirection: quantizeSwipeDirection(angle),
				})
			}
		} else if c.peakTouchCount == 1 {
			c.emit(GestureEvent{
				Type:           GestureSwipe,
				Position:       Vec2{x, y},
				Velocity:       speed,
				TouchCount:     1,
				Timestamp:      time,
				SwipeDirection: quantizeSwipeDirection(angle),
			})
		}
	}

	// Two-finger tap fires once, when the second of exactly two unmoved
	// quick touches lifts.
	if remaining == 0 && c.peakTouchCount == 2 && c.groupTapsOnly && c.releasedAsTap == 2 {
		c.emit(GestureEvent{
			Type:       GestureTwoFingerTap,
			Position:   c.lastRelease,
			TouchCount: 2,
			Timestamp:  time,
		})
	}
}

// ProcessTouchCancelled drops a finger without gesture evaluation.
func (c *GestureClassifier) ProcessTouchCancelled(id int) {
	c.registry.remove(id)
	c.groupTapsOnly = false
}

// CheckLongPress polls for a stationary single touch held past the
// long-press duration. Fires at most once per touch; the latch clears
// whenever the touch count changes away from one.
func (c *GestureClassifier) CheckLongPress(now float64) {
	if c.registry.count() != 1 {
		c.longPressEmitted = false
		return
	}

	for i := range c.registry.touches {
		t := &c.registry.touches[i]
		if !t.active {
			continue
		}
		if !t.hasMoved && now-t.startTime > c.cfg.LongPressDuration && !c.longPressEmitted {
			c.longPressEmitted = true
			c.emit(GestureEvent{
				Type:       GestureLongPress,
				Position:   Vec2{t.x, t.y},
				TouchCount: 1,
				Timestamp:  now,
			})
		}
		break
	}
}

// normalizeAngle wraps an angle into [-π, π].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
