package felt

import (
	"math"
	"testing"
)

func TestRegistryAddRemove(t *testing.T) {
	var r multiTouchRegistry

	if r.add(1, 100, 100, 1, 0) == nil {
		t.Fatalf("add(1) = nil, want slot")
	}
	if r.add(1, 200, 200, 1, 0) != nil {
		t.Errorf("duplicate add(1) returned a slot, want nil")
	}
	if r.count() != 1 {
		t.Errorf("count() = %d, want 1", r.count())
	}
	if r.byID(1) == nil {
		t.Errorf("byID(1) = nil, want touch")
	}

	r.remove(1)
	if r.count() != 0 || r.byID(1) != nil {
		t.Errorf("touch still present after remove")
	}
	r.remove(1) // second remove is a no-op
	if r.count() != 0 {
		t.Errorf("count() went negative after double remove: %d", r.count())
	}
}

func TestRegistryFull(t *testing.T) {
	var r multiTouchRegistry
	for id := 0; id < maxRegistryTouches; id++ {
		if r.add(id, float64(id), 0, 1, 0) == nil {
			t.Fatalf("add(%d) = nil before capacity", id)
		}
	}
	if r.add(99, 0, 0, 1, 0) != nil {
		t.Errorf("add beyond capacity returned a slot, want nil")
	}
}

func TestRegistrySlop(t *testing.T) {
	var r multiTouchRegistry
	r.add(1, 100, 100, 1, 0)

	touch := r.update(1, 104, 100, 1, 0.02, 8)
	if touch.hasMoved {
		t.Errorf("hasMoved = true after 4px movement inside 8px slop")
	}
	touch = r.update(1, 120, 100, 1, 0.04, 8)
	if !touch.hasMoved {
		t.Errorf("hasMoved = false after movement beyond slop")
	}
}

func TestRegistryVelocity(t *testing.T) {
	var r multiTouchRegistry
	r.add(1, 0, 0, 1, 0)
	touch := r.update(1, 100, 0, 1, 0.1, 8)

	if math.Abs(touch.velocityX-1000) > 1e-9 {
		t.Errorf("velocityX = %v, want 1000", touch.velocityX)
	}
	if math.Abs(touch.speed()-1000) > 1e-9 {
		t.Errorf("speed() = %v, want 1000", touch.speed())
	}
	if math.Abs(touch.angle()) > 1e-9 {
		t.Errorf("angle() = %v, want 0", touch.angle())
	}
}

func TestRegistryGeometry(t *testing.T) {
	var r multiTouchRegistry
	r.add(1, 100, 100, 1, 0)
	r.add(2, 200, 100, 1, 0)

	if got := r.centroid(); got != (Vec2{150, 100}) {
		t.Errorf("centroid() = %v, want {150 100}", got)
	}
	if got := r.averageSpread(); math.Abs(got-50) > 1e-9 {
		t.Errorf("averageSpread() = %v, want 50", got)
	}
	if got := r.twoTouchAngle(); math.Abs(got) > 1e-9 {
		t.Errorf("twoTouchAngle() = %v, want 0", got)
	}

	// Vertical pair.
	r.update(2, 100, 200, 1, 0.02, 8)
	if got := r.twoTouchAngle(); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("twoTouchAngle() = %v, want pi/2", got)
	}

	// Spread is only defined for two or more touches.
	r.remove(2)
	if got := r.averageSpread(); got != 0 {
		t.Errorf("averageSpread() with 1 touch = %v, want 0", got)
	}
	if got := r.twoTouchAngle(); got != 0 {
		t.Errorf("twoTouchAngle() with 1 touch = %v, want 0", got)
	}
}
