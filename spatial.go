package felt

// SpatialEntry is one owner/bounds pair stored in the grid. Owner is an
// opaque handle the caller routes events to; the grid never inspects it.
type SpatialEntry struct {
	Owner  any
	Bounds Rect
}

// SpatialHashGrid is a uniform-cell index for near-constant-time "what is
// under this point" queries. Each entry is inserted into every cell its
// bounds overlap; a hit test only scans the single cell containing the
// point.
//
// The grid is rebuilt (Clear + re-Insert) once per layout pass by the
// external layout system. Insertion order is the paint order: later entries
// are treated as topmost.
type SpatialHashGrid struct {
	cells      [][]SpatialEntry
	cellSize   int
	gridWidth  int
	gridHeight int
}

// NewSpatialHashGrid creates a grid covering width x height pixels, capped
// at cfg.MaxGridCells cells per side.
func NewSpatialHashGrid(cfg Config, width, height int) *SpatialHashGrid {
	gw := (width + cfg.GridCellSize - 1) / cfg.GridCellSize
	gh := (height + cfg.GridCellSize - 1) / cfg.GridCellSize
	if gw > cfg.MaxGridCells {
		gw = cfg.MaxGridCells
	}
	if gh > cfg.MaxGridCells {
		gh = cfg.MaxGridCells
	}
	if gw < 1 {
		gw = 1
	}
	if gh < 1 {
		gh = 1
	}
	return &SpatialHashGrid{
		cells:      make([][]SpatialEntry, gw*gh),
		cellSize:   cfg.GridCellSize,
		gridWidth:  gw,
		gridHeight: gh,
	}
}

// Clear empties every cell, keeping the backing storage for reuse across
// layout passes.
func (g *SpatialHashGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// cellRange clamps a rect to grid coordinates.
func (g *SpatialHashGrid) cellRange(bounds Rect) (x0, y0, x1, y1 int) {
	x0 = clampInt(int(bounds.X)/g.cellSize, 0, g.gridWidth-1)
	y0 = clampInt(int(bounds.Y)/g.cellSize, 0, g.gridHeight-1)
	x1 = clampInt(int(bounds.X+bounds.Width)/g.cellSize, 0, g.gridWidth-1)
	y1 = clampInt(int(bounds.Y+bounds.Height)/g.cellSize, 0, g.gridHeight-1)
	return
}

// Insert adds an owner to every cell its bounds overlap. Bounds outside the
// grid are clamped to the border cells.
func (g *SpatialHashGrid) Insert(owner any, bounds Rect) {
	x0, y0, x1, y1 := g.cellRange(bounds)
	entry := SpatialEntry{Owner: owner, Bounds: bounds}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			i := y*g.gridWidth + x
			g.cells[i] = append(g.cells[i], entry)
		}
	}
}

// HitTest returns the topmost owner whose bounds contain (x, y), or nil.
// Only the containing cell is scanned, in reverse insertion order so the
// most recently inserted (topmost) owner wins.
func (g *SpatialHashGrid) HitTest(x, y float64) any {
	cx := int(x) / g.cellSize
	cy := int(y) / g.cellSize
	if cx < 0 || cx >= g.gridWidth || cy < 0 || cy >= g.gridHeight {
		return nil
	}

	cell := g.cells[cy*g.gridWidth+cx]
	for i := len(cell) - 1; i >= 0; i-- {
		if cell[i].Bounds.Contains(x, y) {
			return cell[i].Owner
		}
	}
	return nil
}

// ComponentsInRegion returns every distinct owner whose bounds intersect
// the region.
func (g *SpatialHashGrid) ComponentsInRegion(region Rect) []any {
	var result []any
	x0, y0, x1, y1 := g.cellRange(region)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			for _, entry := range g.cells[y*g.gridWidth+x] {
				if !entry.Bounds.Intersects(region) {
					continue
				}
				if !containsOwner(result, entry.Owner) {
					result = append(result, entry.Owner)
				}
			}
		}
	}
	return result
}

func containsOwner(owners []any, owner any) bool {
	for _, o := range owners {
		if o == owner {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
