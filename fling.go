package felt

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flingDeceleration is the nominal deceleration in px/s² used to derive a
// fling's duration from its release speed.
const flingDeceleration = 1500

// flingMaxDuration caps how long a single fling may coast, in seconds.
const flingMaxDuration = 1.5

// FlingAnimator turns a swipe's release velocity into a decaying coast: the
// position eases from the release point to a rest point with an OutQuad
// curve whose initial slope matches the release speed. Feed it from a
// GestureSwipe event and poll Update each frame.
type FlingAnimator struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
	pos    Vec2
	active bool
}

// NewFlingAnimator returns an idle animator.
func NewFlingAnimator() *FlingAnimator {
	return &FlingAnimator{}
}

// Start begins a fling from position with the given release velocity in
// px/s. A zero velocity is ignored.
func (f *FlingAnimator) Start(position, velocity Vec2) {
	speed := velocity.Len()
	if speed <= 0 {
		return
	}

	// An OutQuad tween of distance D over duration T starts at speed
	// 2D/T, so D = speed*T/2 continues the release velocity seamlessly.
	duration := speed / flingDeceleration
	if duration > flingMaxDuration {
		duration = flingMaxDuration
	}
	rest := position.Add(velocity.Scale(duration / 2))

	f.tweenX = gween.New(float32(position.X), float32(rest.X), float32(duration), ease.OutQuad)
	f.tweenY = gween.New(float32(position.Y), float32(rest.Y), float32(duration), ease.OutQuad)
	f.doneX = false
	f.doneY = false
	f.pos = position
	f.active = true
}

// Update advances the fling by dt seconds and returns the current position.
// done is true once the coast has come to rest.
func (f *FlingAnimator) Update(dt float64) (pos Vec2, done bool) {
	if !f.active {
		return f.pos, true
	}

	if !f.doneX {
		x, finished := f.tweenX.Update(float32(dt))
		f.pos.X = float64(x)
		f.doneX = finished
	}
	if !f.doneY {
		y, finished := f.tweenY.Update(float32(dt))
		f.pos.Y = float64(y)
		f.doneY = finished
	}

	if f.doneX && f.doneY {
		f.active = false
		return f.pos, true
	}
	return f.pos, false
}

// Active reports whether a fling is in progress.
func (f *FlingAnimator) Active() bool {
	return f.active
}

// Stop halts the fling at its current position.
func (f *FlingAnimator) Stop() {
	f.active = false
	f.tweenX = nil
	f.tweenY = nil
}
