package felt

import "math"

// Vec2 is a 2D vector used for positions, deltas, and velocities
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the vector's length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Angle returns the vector's angle in radians, measured from the positive
// X axis with Y increasing downward.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersection returns the overlapping region of r and other.
// Returns the zero Rect if they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x1 := math.Max(r.X, other.X)
	y1 := math.Max(r.Y, other.Y)
	x2 := math.Min(r.X+r.Width, other.X+other.Width)
	y2 := math.Min(r.Y+r.Height, other.Y+other.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x1 := math.Min(r.X, other.X)
	y1 := math.Min(r.Y, other.Y)
	x2 := math.Max(r.X+r.Width, other.X+other.Width)
	y2 := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// TouchPhase identifies the lifecycle stage of a touch sample delivered by
// the platform input layer.
type TouchPhase uint8

const (
	TouchBegan     TouchPhase = iota // finger made contact
	TouchMoved                       // finger moved while in contact
	TouchEnded                       // finger lifted
	TouchCancelled                   // contact lost (palm rejection, system gesture, ...)
)

// Intent is the classified purpose of an ongoing touch: what the user is
// trying to do with this finger.
type Intent uint8

const (
	IntentUnknown    Intent = iota // not yet classified
	IntentFineAdjust               // slow, precise movement - high resolution
	IntentFastMorph                // quick deliberate gesture - smooth transitions
	IntentTap                      // quick touch-release
	IntentDoubleTap                // second tap within the double-tap interval
	IntentHold                     // sustained stationary contact
	IntentSwipe                    // fast directional movement at release
	IntentPinch                    // two-finger scale
	IntentRotate                   // two-finger rotation
)

// String returns the intent name for debugging and logs.
func (i Intent) String() string {
	switch i {
	case IntentFineAdjust:
		return "FineAdjust"
	case IntentFastMorph:
		return "FastMorph"
	case IntentTap:
		return "Tap"
	case IntentDoubleTap:
		return "DoubleTap"
	case IntentHold:
		return "Hold"
	case IntentSwipe:
		return "Swipe"
	case IntentPinch:
		return "Pinch"
	case IntentRotate:
		return "Rotate"
	default:
		return "Unknown"
	}
}

// GestureType identifies a discrete multi-touch gesture.
type GestureType uint8

const (
	GestureNone             GestureType = iota
	GestureTap                          // quick touch-release without movement
	GestureDoubleTap                    // two taps within the double-tap interval
	GestureLongPress                    // stationary contact past the long-press duration
	GesturePan                          // single moved touch, emitted continuously
	GestureSwipe                        // fast directional release
	GesturePinch                        // two-finger spread change
	GestureRotate                       // two-finger angle change
	GestureTwoFingerTap                 // two simultaneous taps
	GestureThreeFingerSwipe             // swipe with three fingers down
)

// String returns the gesture name for debugging and logs.
func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "Tap"
	case GestureDoubleTap:
		return "DoubleTap"
	case GestureLongPress:
		return "LongPress"
	case GesturePan:
		return "Pan"
	case GestureSwipe:
		return "Swipe"
	case GesturePinch:
		return "Pinch"
	case GestureRotate:
		return "Rotate"
	case GestureTwoFingerTap:
		return "TwoFingerTap"
	case GestureThreeFingerSwipe:
		return "ThreeFingerSwipe"
	default:
		return "None"
	}
}

// SwipeDirection is a swipe's release direction quantized into four compass
// sectors of ±45° around each axis.
type SwipeDirection uint8

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
	SwipeUp
	SwipeDown
)

// String returns the direction name for debugging and logs.
func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "Left"
	case SwipeRight:
		return "Right"
	case SwipeUp:
		return "Up"
	case SwipeDown:
		return "Down"
	default:
		return "None"
	}
}
