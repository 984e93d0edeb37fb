package planner

import (
	"testing"

	"github.com/elektrokombinacija/hybridnav/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() Config {
	return Config{
		SizeX:            10,
		SizeY:            10,
		CenterX:          5,
		CenterY:          5,
		SquareSizeMeters: 1.0,
	}
}

func TestNewRejectsInvalidGridSize(t *testing.T) {
	cfg := baseConfig()
	cfg.SizeX = 0

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewRejectsNonPositiveSquareSize(t *testing.T) {
	cfg := baseConfig()
	cfg.SquareSizeMeters = 0

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewRejectsInvalidPickStyle(t *testing.T) {
	cfg := baseConfig()
	cfg.PickStyle = 2

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestCalculatePathOnEmptyGrid(t *testing.T) {
	p, err := New(baseConfig())
	require.NoError(t, err)

	path, ok := p.CalculatePath(core.Cell{X: 0, Y: 0}, core.Cell{X: 2, Y: 2})
	require.True(t, ok)
	assert.Len(t, path, 3)
}

func TestCalculatePathNoPathBehindWall(t *testing.T) {
	obstacles := make([]core.Cell, 0, 10)
	for y := 0; y < 10; y++ {
		obstacles = append(obstacles, core.Cell{X: 2, Y: y})
	}
	cfg := baseConfig()
	cfg.StaticObstacles = obstacles
	p, err := New(cfg)
	require.NoError(t, err)

	path, ok := p.CalculatePath(core.Cell{X: 0, Y: 0}, core.Cell{X: 9, Y: 0})
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestFootprintDerivesDefaultRadius(t *testing.T) {
	cfg := baseConfig()
	cfg.FootprintWidth = 3
	cfg.FootprintHeight = 4

	policy := cfg.toPolicy()
	assert.Equal(t, 5, policy.NodeRadiusSearchRadius) // ||(3,4)|| = 5
}

func TestExplicitRadiusOverridesFootprint(t *testing.T) {
	cfg := baseConfig()
	cfg.FootprintWidth = 3
	cfg.FootprintHeight = 4
	cfg.NodeRadiusSearchRadius = 1

	policy := cfg.toPolicy()
	assert.Equal(t, 1, policy.NodeRadiusSearchRadius)
}

func TestPickStyleMapping(t *testing.T) {
	cfg := baseConfig()
	cfg.PickStyle = 1

	policy := cfg.toPolicy()
	assert.Equal(t, 1, int(policy.PickStyle))
}

func TestHybridAndUncertaintyPassthroughs(t *testing.T) {
	p, err := New(baseConfig())
	require.NoError(t, err)

	p.AddHybridPoints([]float64{2, 2, 8, 8})
	hits := p.Grid().GetNearestHybrid(core.Point{X: 2, Y: 2}, 1.0)
	require.Len(t, hits, 1)

	p.ClearHybridPoints()
	assert.Empty(t, p.Grid().GetNearestHybrid(core.Point{X: 2, Y: 2}, 100))

	id := p.AddUncertaintyField(core.Point{X: 5, Y: 5}, 2.0, 10.0)
	field, _, ok := p.Grid().GetNearestUncertaintyField(core.Point{X: 5, Y: 5})
	require.True(t, ok)
	assert.Equal(t, id, field.ID)

	p.ClearUncertaintyFields()
	_, _, ok = p.Grid().GetNearestUncertaintyField(core.Point{X: 5, Y: 5})
	assert.False(t, ok)
}

func TestPushStaticObstacleAfterConstruction(t *testing.T) {
	p, err := New(baseConfig())
	require.NoError(t, err)

	p.PushStaticObstacle(core.Cell{X: 3, Y: 3})
	assert.True(t, p.Grid().IsObstructed(core.Cell{X: 3, Y: 3}))
}
