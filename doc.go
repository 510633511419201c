// Package felt is a real-time touch-input intelligence pipeline for
// multi-touch surfaces.
//
// It turns raw, noisy finger positions into three things: tremor-filtered,
// phase-jump-free coordinates; a classified user intent (precise adjustment
// vs. fast gesture vs. tap/hold/swipe/pinch/rotate); and minimal damage
// regions for a capped-frame-rate repaint scheduler, plus an O(1) spatial
// index for routing touches to the correct on-screen target. The hot path
// is allocation-free and budgeted for sub-8ms touch response at 120Hz.
//
// # Quick start
//
// Construct a [Surface] and feed it raw samples:
//
//	surface := felt.NewSurface(felt.DefaultConfig(), 1920, 1080)
//	surface.Gestures.OnGesture(func(ev felt.GestureEvent) {
//		// react to taps, swipes, pinches, ...
//	})
//
//	// from the platform input layer:
//	surface.HandleTouchEvent(felt.TouchBegan, id, x, y, pressure, now)
//
//	// once per frame:
//	surface.Tick(now)
//
// With [Ebitengine], the [PointerDriver] does the feeding for you:
//
//	driver := felt.NewPointerDriver(surface)
//
//	func (g *Game) Update() error {
//		now := time.Since(g.start).Seconds()
//		driver.Poll(now)
//		surface.Tick(now)
//		return nil
//	}
//
// # Two pipelines, one event feed
//
// The filtering pipeline ([TouchController]) answers "where is this finger,
// really, and what is the user trying to do with it?": each finger's
// position runs through a per-axis Kalman filter, a velocity analyzer, an
// intent classifier with hysteresis, an adaptive response curve, and a
// slew-rate limiter.
//
// The gesture pipeline ([GestureClassifier]) answers "did a discrete
// multi-finger gesture just occur?" on the raw, unfiltered positions.
//
// Independently, [SpatialHashGrid] answers "what owns this point?" and
// [DirtyRegionTracker]/[RepaintScheduler] answer "what must be redrawn?".
//
// # Concurrency
//
// felt is single-threaded and cooperative: feed events and call Tick from
// one loop. Nothing locks, blocks, or spawns goroutines. Splitting input
// and rendering across threads requires an explicit hand-off around every
// structure here.
//
// Timestamps are float64 seconds from any monotonic epoch; only deltas
// matter.
//
// [Ebitengine]: https://ebitengine.org
package felt
