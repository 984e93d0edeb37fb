package search

import (
	"errors"

	"github.com/elektrokombinacija/hybridnav/internal/core"
)

// ErrNotImplemented is returned by pathfinders that exist as a named
// capability but have no working search behind them yet (see RRTStar).
var ErrNotImplemented = errors.New("search: not implemented")

// PathFinder is the capability every pathfinder in this package exposes:
// build over a grid, then compute a path between two cells. Mirrors
// orange-dot-mapf-het's algo.Solver interface, narrowed to a single robot
// and a single grid instead of a multi-robot instance.
type PathFinder interface {
	// FindPath returns the cell sequence from start to end, or ok=false if
	// no path exists. It never errors on exhaustion — only a malformed or
	// unsupported pathfinder returns a non-nil error.
	FindPath(grid *core.HybridGrid, start, end core.Cell) (path []core.Cell, ok bool, err error)
}
