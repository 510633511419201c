package felt

import "math"

// rawTouch tracks one finger's unfiltered state for geometric gesture math.
// It is independent of the filtered touchPoint pool: gesture geometry works
// on what the sensor reported, never on smoothed positions.
type rawTouch struct {
	id       int
	x, y     float64
	pressure float64
	radius   float64

	velocityX float64
	velocityY float64

	startTime      float64
	lastUpdateTime float64

	active   bool
	hasMoved bool

	// Short position history for velocity estimation.
	historyX    [registryHistorySize]float64
	historyY    [registryHistorySize]float64
	historyTime [registryHistorySize]float64
	historyIdx  int
	historyLen  int
}

func (t *rawTouch) pushHistory(time float64) {
	t.historyX[t.historyIdx] = t.x
	t.historyY[t.historyIdx] = t.y
	t.historyTime[t.historyIdx] = time
	t.historyIdx = (t.historyIdx + 1) % registryHistorySize
	if t.historyLen < registryHistorySize {
		t.historyLen++
	}
}

// updateVelocity estimates velocity from the oldest and newest history
// entries.
func (t *rawTouch) updateVelocity() {
	if t.historyLen < 2 {
		return
	}
	newest := (t.historyIdx + registryHistorySize - 1) % registryHistorySize
	oldest := t.historyIdx
	if t.historyLen < registryHistorySize {
		oldest = 0
	}
	dt := t.historyTime[newest] - t.historyTime[oldest]
	if dt > 0.001 {
		t.velocityX = (t.x - t.historyX[oldest]) / dt
		t.velocityY = (t.y - t.historyY[oldest]) / dt
	}
}

func (t *rawTouch) speed() float64 {
	return math.Hypot(t.velocityX, t.velocityY)
}

func (t *rawTouch) angle() float64 {
	return math.Atan2(t.velocityY, t.velocityX)
}

// multiTouchRegistry is the fixed array of raw touches the gesture
// classifier works from. Capped at maxRegistryTouches; additional fingers
// are ignored.
type multiTouchRegistry struct {
	touches [maxRegistryTouches]rawTouch
	active  int
}

// byID returns the active touch with the given id, or nil.
func (r *multiTouchRegistry) byID(id int) *rawTouch {
	for i := range r.touches {
		if r.touches[i].active && r.touches[i].id == id {
			return &r.touches[i]
		}
	}
	return nil
}

// add claims a free slot for a new touch. Returns nil when the registry is
// full or the id is already tracked.
func (r *multiTouchRegistry) add(id int, x, y, pressure, time float64) *rawTouch {
	if r.byID(id) != nil {
		return nil
	}
	for i := range r.touches {
		t := &r.touches[i]
		if !t.active {
			*t = rawTouch{
				id:             id,
				x:              x,
				y:              y,
				pressure:       pressure,
				active:         true,
				startTime:      time,
				lastUpdateTime: time,
			}
			t.pushHistory(time)
			r.active++
			return t
		}
	}
	return nil
}

// update moves a tracked touch, flagging it as moved once displacement
// exceeds slop.
func (r *multiTouchRegistry) update(id int, x, y, pressure, time, slop float64) *rawTouch {
	t := r.byID(id)
	if t == nil {
		return nil
	}

	if math.Hypot(x-t.x, y-t.y) > slop {
		t.hasMoved = true
	}

	t.x = x
	t.y = y
	t.pressure = pressure
	t.lastUpdateTime = time
	t.pushHistory(time)
	t.updateVelocity()
	return t
}

// remove frees the slot for id. Misses are ignored.
func (r *multiTouchRegistry) remove(id int) {
	if t := r.byID(id); t != nil {
		t.active = false
		t.id = -1
		r.active--
	}
}

// count returns the number of active touches.
func (r *multiTouchRegistry) count() int {
	return r.active
}

// centroid returns the mean position of all active touches.
func (r *multiTouchRegistry) centroid() Vec2 {
	var sum Vec2
	n := 0
	for i := range r.touches {
		if r.touches[i].active {
			sum.X += r.touches[i].x
			sum.Y += r.touches[i].y
			n++
		}
	}
	if n == 0 {
		return Vec2{}
	}
	return Vec2{sum.X / float64(n), sum.Y / float64(n)}
}

// averageSpread returns the mean radial distance of active touches from
// their centroid. Zero with fewer than two touches.
func (r *multiTouchRegistry) averageSpread() float64 {
	if r.active < 2 {
		return 0
	}
	c := r.centroid()
	total := 0.0
	for i := range r.touches {
		if r.touches[i].active {
			total += math.Hypot(r.touches[i].x-c.X, r.touches[i].y-c.Y)
		}
	}
	return total / float64(r.active)
}

// twoTouchAngle returns the angle of the line between exactly two active
// touches. Zero for any other touch count.
func (r *multiTouchRegistry) twoTouchAngle() float64 {
	if r.active != 2 {
		return 0
	}
	var first, second *rawTouch
	for i := range r.touches {
		if !r.touches[i].active {
			continue
		}
		if first == nil {
			first = &r.touches[i]
		} else {
			second = &r.touches[i]
			break
		}
	}
	if first == nil || second == nil {
		return 0
	}
	return math.Atan2(second.y-first.y, second.x-first.x)
}
