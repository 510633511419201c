package felt

// metricEMA weights for latency/timing averages.
const (
	metricEMAKeep = 0.9
	metricEMANew  = 0.1
)

// Metrics is a point-in-time snapshot of the performance monitor.
type Metrics struct {
	AvgTouchLatency      float64 // seconds
	MaxTouchLatency      float64 // seconds, resets each second
	AvgHitTestTime       float64 // seconds
	AvgRepaintTime       float64 // seconds
	TouchEventsPerSecond int
	RepaintsPerSecond    int
	MeetingLatencyTarget bool
}

// PerformanceMonitor tracks the pipeline's timing health: EMA-smoothed touch
// latency, hit-test and repaint times, running max latency, and per-second
// event counts. All recording is plain arithmetic; safe in the hot path.
type PerformanceMonitor struct {
	cfg Config

	avgTouchLatency float64
	maxTouchLatency float64
	avgHitTestTime  float64
	avgRepaintTime  float64

	touchEventCount int
	repaintCount    int

	touchEventsPerSecond int
	repaintsPerSecond    int

	secondStart float64
	haveSecond  bool
}

// NewPerformanceMonitor creates a monitor checking against cfg's latency
// target.
func NewPerformanceMonitor(cfg Config) *PerformanceMonitor {
	return &PerformanceMonitor{cfg: cfg}
}

// RecordTouchLatency folds one touch-processing latency (seconds) into the
// averages.
func (m *PerformanceMonitor) RecordTouchLatency(latency float64) {
	m.avgTouchLatency = m.avgTouchLatency*metricEMAKeep + latency*metricEMANew
	if latency > m.maxTouchLatency {
		m.maxTouchLatency = latency
	}
	m.touchEventCount++
}

// RecordHitTestTime folds one hit-test duration (seconds) into the average.
func (m *PerformanceMonitor) RecordHitTestTime(d float64) {
	m.avgHitTestTime = m.avgHitTestTime*metricEMAKeep + d*metricEMANew
}

// RecordRepaintTime folds one repaint duration (seconds) into the average.
func (m *PerformanceMonitor) RecordRepaintTime(d float64) {
	m.avgRepaintTime = m.avgRepaintTime*metricEMAKeep + d*metricEMANew
	m.repaintCount++
}

// Tick rolls the per-second counters. Call from the frame loop with the
// current timestamp; the rollover happens once per elapsed second.
func (m *PerformanceMonitor) Tick(now float64) {
	if !m.haveSecond {
		m.secondStart = now
		m.haveSecond = true
		return
	}
	if now-m.secondStart < 1 {
		return
	}
	m.secondStart = now

	m.touchEventsPerSecond = m.touchEventCount
	m.repaintsPerSecond = m.repaintCount
	m.touchEventCount = 0
	m.repaintCount = 0
	m.maxTouchLatency = 0
}

// Metrics returns a snapshot of all tracked values.
func (m *PerformanceMonitor) Metrics() Metrics {
	return Metrics{
		AvgTouchLatency:      m.avgTouchLatency,
		MaxTouchLatency:      m.maxTouchLatency,
		AvgHitTestTime:       m.avgHitTestTime,
		AvgRepaintTime:       m.avgRepaintTime,
		TouchEventsPerSecond: m.touchEventsPerSecond,
		RepaintsPerSecond:    m.repaintsPerSecond,
		MeetingLatencyTarget: m.avgTouchLatency < m.cfg.MaxTouchLatency,
	}
}
