// Package planner is the facade spec.md §6 describes: a builder that owns
// one HybridGrid and one search.PathFinder, exposing calculate_path plus
// the grid mutation entry points the host needs between searches.
package planner

import (
	"github.com/edaniels/golog"
	"github.com/elektrokombinacija/hybridnav/internal/core"
	"github.com/elektrokombinacija/hybridnav/internal/search"
	"github.com/google/uuid"
)

// Planner owns a single HybridGrid and the pathfinder built over it. It is
// single-writer: concurrent calculate_path and grid-mutation calls are the
// host's responsibility to serialize (spec.md §5).
type Planner struct {
	grid   *core.HybridGrid
	finder search.PathFinder
	log    golog.Logger
}

// New validates cfg and builds a Planner with a HybridGrid and an AStar
// pathfinder over it. It is the only constructor in this module that
// returns an error, matching the teacher's preference for descriptive,
// sentinel-free errors on construction.
func New(cfg Config) (*Planner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	grid := core.NewHybridGrid(cfg.SizeX, cfg.SizeY, cfg.SquareSizeMeters, cfg.StaticObstacles, cfg.CenterX, cfg.CenterY)
	log := golog.NewDevelopmentLogger("hybridnav.planner")

	return &Planner{
		grid:   grid,
		finder: search.Build(cfg.toPolicy(), log),
		log:    log,
	}, nil
}

// WithPathFinder swaps in an alternate search.PathFinder (e.g. a future
// search.RRTStar once it has a real implementation), returning the same
// Planner for chaining, matching the teacher's builder-style constructors.
func (p *Planner) WithPathFinder(finder search.PathFinder) *Planner {
	p.finder = finder
	return p
}

// CalculatePath runs the configured pathfinder from start to end. ok=false
// means no path exists; it is never reported as an error (spec.md §7).
func (p *Planner) CalculatePath(start, end core.Cell) ([]core.Cell, bool) {
	id := uuid.New()
	p.log.Infow("calculate_path start", "id", id, "start", start, "end", end)

	path, ok, err := p.finder.FindPath(p.grid, start, end)
	if err != nil {
		p.log.Errorw("calculate_path failed", "id", id, "error", err)
		return nil, false
	}
	if !ok {
		p.log.Infow("calculate_path no path", "id", id)
		return nil, false
	}

	p.log.Infow("calculate_path done", "id", id, "length", len(path))
	return path, true
}

// AddHybridPoints appends a flat interleaved [x0, y0, x1, y1, ...] array of
// hybrid obstacle hits, matching the host-facing contract in spec.md §6. An
// odd-length array is a host bug; the trailing unpaired value is ignored.
func (p *Planner) AddHybridPoints(flat []float64) {
	p.log.Debugw("add_hybrid_points", "count", len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		p.grid.AddHybridObject(core.Point{X: flat[i], Y: flat[i+1]})
	}
}

// ClearHybridPoints empties the hybrid obstacle index.
func (p *Planner) ClearHybridPoints() {
	p.log.Debugw("clear_hybrid_points")
	p.grid.ClearHybridObjects()
}

// AddUncertaintyField registers a soft-cost disc and returns its id.
func (p *Planner) AddUncertaintyField(center core.Point, radius, intensity float64) core.FieldID {
	id := p.grid.AddUncertaintyField(center, radius, intensity)
	p.log.Debugw("add_uncertainty_field", "id", id, "center", center, "radius", radius, "intensity", intensity)
	return id
}

// ClearUncertaintyFields empties the uncertainty field registry.
func (p *Planner) ClearUncertaintyFields() {
	p.log.Debugw("clear_uncertainty_fields")
	p.grid.ClearUncertaintyFields()
}

// PushStaticObstacle marks a cell impassable after construction.
func (p *Planner) PushStaticObstacle(c core.Cell) {
	p.log.Debugw("push_static_obstacle", "cell", c)
	p.grid.PushStaticObstacle(c)
}

// AddDynamicObject registers a dynamic object for later transform snapshots
// (core.HybridGrid.DynamicObjectTransformsAt); A* never consumes these.
func (p *Planner) AddDynamicObject(obj core.DynamicObject) {
	p.log.Debugw("add_dynamic_object")
	p.grid.AddDynamicObject(obj)
}

// Grid returns the underlying HybridGrid, for read-only inspection by
// callers that need it (e.g. building a TimedPath from returned waypoints).
func (p *Planner) Grid() *core.HybridGrid {
	return p.grid
}
