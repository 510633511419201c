package felt

import "math"

// DirtyRegionTracker accumulates screen rectangles that must be redrawn,
// coalescing overlapping ones to bound both memory and repaint count. The
// region list never exceeds the configured cap: at capacity a new rect is
// absorbed into the nearest existing region instead of being appended, so
// damage is never dropped, only made coarser.
type DirtyRegionTracker struct {
	cfg     Config
	regions []Rect
}

// NewDirtyRegionTracker creates a tracker with capacity cfg.MaxDirtyRegions.
func NewDirtyRegionTracker(cfg Config) *DirtyRegionTracker {
	return &DirtyRegionTracker{
		cfg:     cfg,
		regions: make([]Rect, 0, cfg.MaxDirtyRegions),
	}
}

// shouldCoalesce reports whether two rects overlap enough to merge: their
// intersection exceeds the threshold fraction of the smaller rect's area.
func (t *DirtyRegionTracker) shouldCoalesce(a, b Rect) bool {
	inter := a.Intersection(b)
	if inter.Empty() {
		return false
	}
	smaller := math.Min(a.Area(), b.Area())
	return inter.Area() > smaller*t.cfg.CoalesceThreshold
}

// MarkDirty records a rectangle for repaint. Coalescable rects merge in
// place; otherwise the rect is appended, or, at the cap, absorbed into
// the region whose center is nearest.
func (t *DirtyRegionTracker) MarkDirty(region Rect) {
	if region.Empty() {
		return
	}

	if len(t.regions) < t.cfg.MaxDirtyRegions {
		for i := range t.regions {
			if t.shouldCoalesce(t.regions[i], region) {
				t.regions[i] = t.regions[i].Union(region)
				return
			}
		}
		t.regions = append(t.regions, region)
		return
	}

	t.coalesceWithNearest(region)
}

// coalesceWithNearest unions region into the tracked rect whose center is
// closest.
func (t *DirtyRegionTracker) coalesceWithNearest(region Rect) {
	if len(t.regions) == 0 {
		return
	}

	center := region.Center()
	best := 0
	bestDist := math.MaxFloat64

	for i := range t.regions {
		d := t.regions[i].Center().Sub(center)
		dist := d.X*d.X + d.Y*d.Y
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	t.regions[best] = t.regions[best].Union(region)
}

// Optimize repeatedly unions any pairwise-coalescable regions until no
// merge occurs.
func (t *DirtyRegionTracker) Optimize() {
	merged := true
	for merged {
		merged = false
		for i := 0; i < len(t.regions) && !merged; i++ {
			for j := i + 1; j < len(t.regions) && !merged; j++ {
				if t.shouldCoalesce(t.regions[i], t.regions[j]) {
					t.regions[i] = t.regions[i].Union(t.regions[j])
					t.regions = append(t.regions[:j], t.regions[j+1:]...)
					merged = true
				}
			}
		}
	}
}

// Dirty reports whether any region is pending.
func (t *DirtyRegionTracker) Dirty() bool {
	return len(t.regions) > 0
}

// Regions returns the pending regions. The slice is owned by the tracker
// and only valid until the next MarkDirty or MarkClean.
func (t *DirtyRegionTracker) Regions() []Rect {
	return t.regions
}

// MarkClean discards all pending regions.
func (t *DirtyRegionTracker) MarkClean() {
	t.regions = t.regions[:0]
}

// TotalArea returns the summed area of all pending regions.
func (t *DirtyRegionTracker) TotalArea() float64 {
	total := 0.0
	for _, r := range t.regions {
		total += r.Area()
	}
	return total
}
