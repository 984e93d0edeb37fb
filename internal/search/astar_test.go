package search

import (
	"testing"

	"github.com/elektrokombinacija/hybridnav/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyGrid(size int) *core.HybridGrid {
	return core.NewHybridGrid(size, size, 1.0, nil, size/2, size/2)
}

func TestFindPathDirectOnEmptyGrid(t *testing.T) {
	// S1: direct path, empty 10x10 grid, ALL neighbors, path length 3.
	g := emptyGrid(10)
	a := Build(DefaultPolicy(), nil)

	path, ok, err := a.FindPath(g, core.Cell{X: 0, Y: 0}, core.Cell{X: 2, Y: 2})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, path, 3)
	assert.Equal(t, core.Cell{X: 0, Y: 0}, path[0])
	assert.Equal(t, core.Cell{X: 2, Y: 2}, path[len(path)-1])
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	g := emptyGrid(10)
	a := Build(DefaultPolicy(), nil)

	path, ok, err := a.FindPath(g, core.Cell{X: 4, Y: 4}, core.Cell{X: 4, Y: 4})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []core.Cell{{X: 4, Y: 4}}, path)
}

func TestFindPathUnreachableBehindFullWall(t *testing.T) {
	// S3: a fully obstructed column bisecting the grid leaves no path.
	g := emptyGrid(10)
	for y := 0; y < 10; y++ {
		g.PushStaticObstacle(core.Cell{X: 2, Y: y})
	}
	a := Build(DefaultPolicy(), nil)

	path, ok, err := a.FindPath(g, core.Cell{X: 0, Y: 0}, core.Cell{X: 9, Y: 0})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestFindPathRoutesAroundLWall(t *testing.T) {
	// S2: blocked L-wall, SIDES neighbors, radius 2, discard off, cost 2.0.
	g := emptyGrid(10)
	obstacles := []core.Cell{{2, 2}, {2, 3}, {2, 4}, {3, 2}, {4, 2}}
	for _, c := range obstacles {
		g.PushStaticObstacle(c)
	}

	policy := Policy{
		PickStyle:                      Sides,
		NodeRadiusSearchRadius:         2,
		DoAbsoluteDiscard:              false,
		AvgDistanceMinDiscardThreshold: 1.0,
		AvgDistanceCost:                2.0,
	}
	a := Build(policy, nil)

	path, ok, err := a.FindPath(g, core.Cell{X: 0, Y: 0}, core.Cell{X: 5, Y: 5})
	require.NoError(t, err)
	require.True(t, ok)
	for _, obstacle := range obstacles {
		assert.NotContains(t, path, obstacle)
	}
	assert.Equal(t, core.Cell{X: 0, Y: 0}, path[0])
	assert.Equal(t, core.Cell{X: 5, Y: 5}, path[len(path)-1])
}

func TestFindPathAvoidsUncertaintyField(t *testing.T) {
	// S4: field at (2,2) radius 2 intensity 10, s=(0,0), e=(4,4), ALL. The
	// only 5-cell ALL path is the literal diagonal through (2,2); its rim
	// cells (1,1) and (3,3) sit near the field's costly edge
	// (UncertaintyFieldCostRamping eases from 0 at center to intensity at
	// radius), so the cheaper route detours around the field entirely.
	g := emptyGrid(10)
	g.AddUncertaintyField(core.Point{X: 2, Y: 2}, 2.0, 10.0)

	a := Build(DefaultPolicy(), nil)

	path, ok, err := a.FindPath(g, core.Cell{X: 0, Y: 0}, core.Cell{X: 4, Y: 4})
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, path, core.Cell{X: 2, Y: 2})
}

func TestFindPathLengthFormulaAll(t *testing.T) {
	g := emptyGrid(20)
	a := Build(DefaultPolicy(), nil)

	path, ok, err := a.FindPath(g, core.Cell{X: 0, Y: 0}, core.Cell{X: 3, Y: 7})
	require.NoError(t, err)
	require.True(t, ok)
	// ALL (8-connected): max(|dx|,|dy|)+1
	assert.Len(t, path, 7+1)
}

func TestFindPathLengthFormulaSides(t *testing.T) {
	g := emptyGrid(20)
	policy := DefaultPolicy()
	policy.PickStyle = Sides
	a := Build(policy, nil)

	path, ok, err := a.FindPath(g, core.Cell{X: 0, Y: 0}, core.Cell{X: 3, Y: 7})
	require.NoError(t, err)
	require.True(t, ok)
	// SIDES (4-connected): |dx|+|dy|+1
	assert.Len(t, path, 3+7+1)
}

func TestFindPathAbsoluteDiscardAvoidsDenseRegion(t *testing.T) {
	g := emptyGrid(10)
	// Six of (2,2)'s eight neighbors are obstructed, leaving (1,2) and (3,2)
	// as physical entry points, but the local density is high enough that
	// the absolute-discard rule should reject (2,2) before it's ever queued.
	for _, c := range []core.Cell{{1, 1}, {1, 3}, {3, 1}, {3, 3}, {2, 1}, {2, 3}} {
		g.PushStaticObstacle(c)
	}

	policy := Policy{
		PickStyle:                      Sides,
		NodeRadiusSearchRadius:         1,
		DoAbsoluteDiscard:              true,
		AvgDistanceMinDiscardThreshold: 1.5,
		AvgDistanceCost:                0,
	}
	a := Build(policy, nil)

	path, ok, err := a.FindPath(g, core.Cell{X: 3, Y: 5}, core.Cell{X: 7, Y: 5})
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, path, core.Cell{X: 5, Y: 5})
}

func TestFindPathNeverRevisitsClosedCell(t *testing.T) {
	g := emptyGrid(10)
	a := Build(DefaultPolicy(), nil)

	path, ok, err := a.FindPath(g, core.Cell{X: 0, Y: 0}, core.Cell{X: 5, Y: 5})
	require.NoError(t, err)
	require.True(t, ok)

	seen := make(map[core.Cell]bool)
	for _, c := range path {
		assert.False(t, seen[c], "path must not revisit a cell")
		seen[c] = true
	}
}

func TestFindPathStepsAreUnitKingMoves(t *testing.T) {
	// Invariant 1: on an obstacle-free grid, successive path cells differ by
	// a unit king-move.
	g := emptyGrid(10)
	a := Build(DefaultPolicy(), nil)

	path, ok, err := a.FindPath(g, core.Cell{X: 1, Y: 1}, core.Cell{X: 8, Y: 3})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, core.Cell{X: 1, Y: 1}, path[0])
	require.Equal(t, core.Cell{X: 8, Y: 3}, path[len(path)-1])

	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		assert.LessOrEqual(t, abs(dx), 1)
		assert.LessOrEqual(t, abs(dy), 1)
		assert.False(t, dx == 0 && dy == 0)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestFindPathNeverCrossesObstaclesOrBounds(t *testing.T) {
	// Invariants 2 and 3.
	g := emptyGrid(10)
	obstacles := []core.Cell{{2, 2}, {2, 3}, {2, 4}, {3, 2}, {4, 2}}
	for _, c := range obstacles {
		g.PushStaticObstacle(c)
	}
	a := Build(DefaultPolicy(), nil)

	path, ok, err := a.FindPath(g, core.Cell{X: 0, Y: 0}, core.Cell{X: 5, Y: 5})
	require.NoError(t, err)
	require.True(t, ok)

	for _, c := range path {
		assert.False(t, g.IsObstructed(c))
		assert.False(t, g.IsOutsideGrid(c))
	}
}

func TestFindPathOutsideGridEndpointFails(t *testing.T) {
	g := emptyGrid(10)
	a := Build(DefaultPolicy(), nil)

	path, ok, err := a.FindPath(g, core.Cell{X: 0, Y: 0}, core.Cell{X: 99, Y: 99})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, path)
}
