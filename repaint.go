package felt

// RepaintCallback receives the optimized dirty rectangles for one flush.
// The slice is only valid for the duration of the call.
type RepaintCallback func(regions []Rect)

// RepaintScheduler paces repaints at the configured frame rate. The host
// frame loop calls Tick once per frame (the ebiten driver does this from
// Update); each tick refreshes the EMA frame-rate estimate and flushes any
// pending damage. Flush is also public for forced redraws outside the
// schedule.
type RepaintScheduler struct {
	cfg      Config
	dirty    *DirtyRegionTracker
	callback RepaintCallback

	lastTick   float64
	haveTick   bool
	currentFPS float64
}

// NewRepaintScheduler creates a scheduler flushing the given tracker.
func NewRepaintScheduler(cfg Config, dirty *DirtyRegionTracker) *RepaintScheduler {
	return &RepaintScheduler{
		cfg:        cfg,
		dirty:      dirty,
		currentFPS: cfg.TargetFrameRate / 2,
	}
}

// OnRepaint sets the callback invoked with the final rectangle list on each
// flush.
func (s *RepaintScheduler) OnRepaint(cb RepaintCallback) {
	s.callback = cb
}

// RequestRepaint marks a region for the next flush.
func (s *RepaintScheduler) RequestRepaint(region Rect) {
	s.dirty.MarkDirty(region)
}

// Tick advances one frame at the given timestamp: updates the smoothed FPS
// estimate and flushes pending repaints.
func (s *RepaintScheduler) Tick(now float64) {
	if s.haveTick {
		frameTime := now - s.lastTick
		if frameTime > 0 {
			s.currentFPS = s.currentFPS*0.9 + (1/frameTime)*0.1
		}
	}
	s.lastTick = now
	s.haveTick = true

	s.Flush()
}

// Flush synchronously coalesces and delivers pending damage, then clears
// it. No-op when nothing is dirty.
func (s *RepaintScheduler) Flush() {
	if !s.dirty.Dirty() {
		return
	}

	s.dirty.Optimize()
	if s.callback != nil {
		s.callback(s.dirty.Regions())
	}
	s.dirty.MarkClean()
}

// CurrentFPS returns the EMA-smoothed observed frame rate.
func (s *RepaintScheduler) CurrentFPS() float64 {
	return s.currentFPS
}

// FrameInterval returns the target seconds between flushes.
func (s *RepaintScheduler) FrameInterval() float64 {
	return 1 / s.cfg.TargetFrameRate
}
