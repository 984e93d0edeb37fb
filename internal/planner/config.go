package planner

import (
	"fmt"

	"github.com/elektrokombinacija/hybridnav/internal/core"
	"github.com/elektrokombinacija/hybridnav/internal/search"
)

// Config is the planner's init contract: everything the host supplies to
// stand up a HybridGrid plus an A* search policy over it (spec.md §6
// "Planner init").
type Config struct {
	// StaticObstacles lists cells impassable from construction.
	StaticObstacles []core.Cell

	// SizeX, SizeY are the grid's cell dimensions.
	SizeX, SizeY int
	// CenterX, CenterY place the grid's valid region.
	CenterX, CenterY int
	// SquareSizeMeters is the physical edge length of one cell.
	SquareSizeMeters float64

	// PickStyle selects the neighbor set: 0 = ALL, 1 = SIDES, matching the
	// host-facing integer contract.
	PickStyle int

	// FootprintWidth, FootprintHeight describe the robot's footprint; the
	// length ||(FootprintWidth, FootprintHeight)||, truncated to an int,
	// seeds the default proximity-search radius when NodeRadiusSearchRadius
	// is left at 0.
	FootprintWidth, FootprintHeight float64
	// NodeRadiusSearchRadius overrides the footprint-derived default when
	// nonzero.
	NodeRadiusSearchRadius int

	DoAbsoluteDiscard              bool
	AvgDistanceMinDiscardThreshold float64
	AvgDistanceCost                float64
}

// toPolicy derives a search.Policy from the config, computing the default
// radius from the footprint when NodeRadiusSearchRadius is unset.
func (c Config) toPolicy() search.Policy {
	radius := c.NodeRadiusSearchRadius
	if radius == 0 {
		radius = int(core.EuclideanDistance(core.Point{}, core.Point{X: c.FootprintWidth, Y: c.FootprintHeight}))
	}

	pickStyle := search.All
	if c.PickStyle == 1 {
		pickStyle = search.Sides
	}

	return search.Policy{
		PickStyle:                      pickStyle,
		NodeRadiusSearchRadius:         radius,
		DoAbsoluteDiscard:              c.DoAbsoluteDiscard,
		AvgDistanceMinDiscardThreshold: c.AvgDistanceMinDiscardThreshold,
		AvgDistanceCost:                c.AvgDistanceCost,
	}
}

// validate rejects configurations that cannot build a usable grid. Negative
// search-policy parameters are not an error here (search.AStar already
// treats a negative radius as 0 per spec.md §4.4's failure semantics);
// only structurally nonsensical grids are rejected.
func (c Config) validate() error {
	if c.SizeX <= 0 || c.SizeY <= 0 {
		return fmt.Errorf("planner: grid size must be positive, got (%d, %d)", c.SizeX, c.SizeY)
	}
	if c.SquareSizeMeters <= 0 {
		return fmt.Errorf("planner: square size must be positive, got %f", c.SquareSizeMeters)
	}
	if c.PickStyle != 0 && c.PickStyle != 1 {
		return fmt.Errorf("planner: pick style must be 0 (ALL) or 1 (SIDES), got %d", c.PickStyle)
	}
	return nil
}
