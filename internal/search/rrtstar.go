package search

import (
	"github.com/elektrokombinacija/hybridnav/internal/core"
)

// RRTStar is a named capability with no working search behind it yet.
// original_source/pathfinding/rrt_star.rs sketches a sampling-based planner
// for continuous spaces; wiring it to core.HybridGrid's discrete cells is
// out of scope here (see SPEC_FULL.md non-goals).
type RRTStar struct{}

// FindPath always returns ErrNotImplemented.
func (RRTStar) FindPath(grid *core.HybridGrid, start, end core.Cell) ([]core.Cell, bool, error) {
	return nil, false, ErrNotImplemented
}

var _ PathFinder = RRTStar{}
