package felt

import "github.com/hajimehoshi/ebiten/v2"

// maxPointers is the driver's pointer slot count: slot 0 is the mouse,
// slots 1-9 are touches.
const maxPointers = 10

// PointerDriver feeds ebiten's polled input into a Surface as touch events.
// Ebiten reports current touch IDs each frame rather than discrete events,
// so the driver keeps a slot table mapping platform touch IDs to stable
// pointer ids and synthesizes Began/Moved/Ended phases from frame-to-frame
// differences. The mouse is pointer 0 with its primary button as contact.
//
// Call Poll once per ebiten Update with the current timestamp.
type PointerDriver struct {
	surface *Surface

	prevTouchIDs []ebiten.TouchID
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	lastX        [maxPointers]float64
	lastY        [maxPointers]float64
	down         [maxPointers]bool
}

// NewPointerDriver creates a driver feeding the given surface.
func NewPointerDriver(surface *Surface) *PointerDriver {
	return &PointerDriver{surface: surface}
}

// Poll reads the current mouse and touch state and emits the corresponding
// touch events. Stationary held pointers still emit Moved each frame: the
// velocity analyzer needs those samples for hold and jitter detection.
func (d *PointerDriver) Poll(now float64) {
	d.pollMouse(now)
	d.pollTouches(now)
}

func (d *PointerDriver) pollMouse(now float64) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !d.down[0]:
		d.down[0] = true
		d.surface.HandleTouchEvent(TouchBegan, 0, x, y, 1, now)
	case pressed && d.down[0]:
		d.surface.HandleTouchEvent(TouchMoved, 0, x, y, 1, now)
	case !pressed && d.down[0]:
		d.down[0] = false
		d.surface.HandleTouchEvent(TouchEnded, 0, x, y, 1, now)
	}
	d.lastX[0], d.lastY[0] = x, y
}

func (d *PointerDriver) pollTouches(now float64) {
	touchIDs := ebiten.AppendTouchIDs(d.prevTouchIDs[:0])
	d.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := d.touchSlot(tid)
		if slot < 0 {
			continue // more touches than slots; ignore the extras
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		x, y := float64(tx), float64(ty)

		if !d.down[slot] {
			d.down[slot] = true
			d.surface.HandleTouchEvent(TouchBegan, slot, x, y, 1, now)
		} else {
			d.surface.HandleTouchEvent(TouchMoved, slot, x, y, 1, now)
		}
		d.lastX[slot], d.lastY[slot] = x, y
	}

	// Release slots whose platform touch disappeared this frame.
	for i := 1; i < maxPointers; i++ {
		if d.touchUsed[i] && !activeSlots[i] {
			if d.down[i] {
				d.down[i] = false
				d.surface.HandleTouchEvent(TouchEnded, i, d.lastX[i], d.lastY[i], 1, now)
			}
			d.touchUsed[i] = false
			d.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (d *PointerDriver) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if d.touchUsed[i] && d.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !d.touchUsed[i] {
			d.touchUsed[i] = true
			d.touchMap[i] = tid
			return i
		}
	}
	return -1
}
