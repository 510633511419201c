package felt

import "time"

// Surface is the context object owning both touch pipelines and the
// spatial/damage structures for one touch surface. Everything is explicit
// dependency injection: construct a Surface, hand it to whatever needs
// routing, and feed it raw samples through HandleTouchEvent.
//
// The model is single-threaded and cooperative: all components mutate state
// synchronously inside the callback that invokes them. Feed events and call
// Tick from the same loop.
type Surface struct {
	cfg Config

	// Touches filters per-finger positions and classifies intent.
	Touches *TouchController
	// Gestures detects discrete multi-touch gestures on raw positions.
	Gestures *GestureClassifier
	// Grid answers "what owns this point" for event routing.
	Grid *SpatialHashGrid
	// Dirty accumulates damage; Scheduler flushes it at the frame rate.
	Dirty     *DirtyRegionTracker
	Scheduler *RepaintScheduler
	// Monitor tracks latency and throughput health.
	Monitor *PerformanceMonitor
}

// NewSurface creates a surface of the given pixel dimensions.
func NewSurface(cfg Config, width, height int) *Surface {
	dirty := NewDirtyRegionTracker(cfg)
	return &Surface{
		cfg:       cfg,
		Touches:   NewTouchController(cfg),
		Gestures:  NewGestureClassifier(cfg),
		Grid:      NewSpatialHashGrid(cfg, width, height),
		Dirty:     dirty,
		Scheduler: NewRepaintScheduler(cfg, dirty),
		Monitor:   NewPerformanceMonitor(cfg),
	}
}

// HandleTouchEvent is the single ingestion entry point from the platform
// input layer. It fans the sample into the filtering and gesture pipelines
// and records the processing latency. now is the sample timestamp in
// seconds; pressure is passed through unvalidated.
func (s *Surface) HandleTouchEvent(phase TouchPhase, id int, x, y, pressure, now float64) {
	start := time.Now()

	switch phase {
	case TouchBegan:
		s.Touches.ProcessTouch(id, Vec2{x, y}, true, now)
		s.Gestures.ProcessTouchBegan(id, x, y, pressure, now)
	case TouchMoved:
		s.Touches.ProcessTouch(id, Vec2{x, y}, true, now)
		s.Gestures.ProcessTouchMoved(id, x, y, pressure, now)
	case TouchEnded:
		s.Touches.ProcessTouch(id, Vec2{x, y}, false, now)
		s.Gestures.ProcessTouchEnded(id, x, y, now)
	case TouchCancelled:
		s.Touches.ProcessTouchCancelled(id)
		s.Gestures.ProcessTouchCancelled(id)
	}

	s.Monitor.RecordTouchLatency(time.Since(start).Seconds())
}

// HitTest returns the topmost owner under (x, y), or nil, recording the
// query time in the monitor.
func (s *Surface) HitTest(x, y float64) any {
	start := time.Now()
	owner := s.Grid.HitTest(x, y)
	s.Monitor.RecordHitTestTime(time.Since(start).Seconds())
	return owner
}

// RequestRepaint marks a region for the next scheduled flush.
func (s *Surface) RequestRepaint(region Rect) {
	s.Dirty.MarkDirty(region)
}

// Tick advances one frame: polls long presses, rolls the per-second
// performance counters, and flushes pending repaints. Call once per frame
// from the host loop.
func (s *Surface) Tick(now float64) {
	s.Gestures.CheckLongPress(now)
	s.Monitor.Tick(now)

	wasDirty := s.Dirty.Dirty()
	start := time.Now()
	s.Scheduler.Tick(now)
	if wasDirty {
		s.Monitor.RecordRepaintTime(time.Since(start).Seconds())
	}
}
