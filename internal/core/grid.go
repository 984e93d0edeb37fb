package core

// HybridGrid is the weighted grid environment the planner searches over: a
// bounded integer grid, a static obstacle set, a k-d-tree-backed hybrid
// obstacle index, and a registry of uncertainty fields. It unifies exact
// (static obstacles) and approximate (hybrid hits, soft-cost fields)
// spatial queries behind one type, mirroring the way orange-dot-mapf-het's
// Workspace unifies vertices and edges behind one adjacency structure.
type HybridGrid struct {
	sizeX, sizeY   int
	centerX        int
	centerY        int
	squareSizeM    float64
	staticObstacle map[Cell]struct{}

	hybrid  *hybridIndex
	fields  *uncertaintyIndex
	dynamic []DynamicObject
}

// NewHybridGrid constructs a grid of size sizeX x sizeY centered at
// (centerX, centerY), with each cell's physical edge length squareSizeM.
// Obstacles outside the valid region are silently dropped.
func NewHybridGrid(sizeX, sizeY int, squareSizeM float64, staticObstacles []Cell, centerX, centerY int) *HybridGrid {
	g := &HybridGrid{
		sizeX:          sizeX,
		sizeY:          sizeY,
		centerX:        centerX,
		centerY:        centerY,
		squareSizeM:    squareSizeM,
		staticObstacle: make(map[Cell]struct{}),
		hybrid:         newHybridIndex(),
		fields:         newUncertaintyIndex(),
	}
	for _, c := range staticObstacles {
		if !g.IsOutsideGrid(c) {
			g.PushStaticObstacle(c)
		}
	}
	return g
}

// SquareSizeMeters returns the physical edge length of one cell, used only
// for cost scaling.
func (g *HybridGrid) SquareSizeMeters() float64 {
	return g.squareSizeM
}

// IsOutsideGrid reports whether p lies outside the grid's half-open valid
// region [cx - sx/2, cx + sx/2) x [cy - sy/2, cy + sy/2).
func (g *HybridGrid) IsOutsideGrid(p Cell) bool {
	halfX := g.sizeX / 2
	halfY := g.sizeY / 2
	return p.X < g.centerX-halfX || p.X >= g.centerX+halfX ||
		p.Y < g.centerY-halfY || p.Y >= g.centerY+halfY
}

// IsObstructed reports whether p is a static obstacle.
func (g *HybridGrid) IsObstructed(p Cell) bool {
	_, ok := g.staticObstacle[p]
	return ok
}

// PushStaticObstacle idempotently marks p impassable. Unlike NewHybridGrid,
// it performs no bounds check; callers that already filtered (NewHybridGrid)
// or that know the cell is in range should use it directly.
func (g *HybridGrid) PushStaticObstacle(p Cell) {
	g.staticObstacle[p] = struct{}{}
}

// GetAllObstructionsInRadius returns every obstructed cell within a
// Chebyshev (square, inclusive) radius r of p — a (2r+1)^2 scan, not a
// Euclidean disc. The Chebyshev shape is intentional: it is what makes the
// proximity-cost admissible against the unit/sqrt(2) step costs A* uses.
func (g *HybridGrid) GetAllObstructionsInRadius(p Cell, r int) []Cell {
	if r < 0 {
		r = 0
	}
	var out []Cell
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			c := Cell{p.X + dx, p.Y + dy}
			if g.IsObstructed(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// IsObstructionInRadius reports whether any static obstacle lies within
// Chebyshev radius r of p.
func (g *HybridGrid) IsObstructionInRadius(p Cell, r int) bool {
	if r < 0 {
		r = 0
	}
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if g.IsObstructed((Cell{p.X + dx, p.Y + dy})) {
				return true
			}
		}
	}
	return false
}
