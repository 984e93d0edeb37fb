package search

import (
	"container/heap"
	"math"

	"github.com/elektrokombinacija/hybridnav/internal/core"
	"go.uber.org/zap"
)

// AStar is the reference pathfinder: textbook A* over a core.HybridGrid,
// extended with a density-based proximity cost/discard rule and an
// uncertainty-field cost, following original_source/pathfinding/a_star.rs.
// The open/closed-set and heap bookkeeping mirrors
// orange-dot-mapf-het/internal/algo/astar.go's astarHeap.
type AStar struct {
	Policy Policy
	Log    *zap.SugaredLogger
}

// NewAStar builds an AStar with DefaultPolicy() and a no-op logger.
func NewAStar() *AStar {
	return &AStar{Policy: DefaultPolicy(), Log: zap.NewNop().Sugar()}
}

// Build constructs an AStar with an explicit policy, matching the
// teacher's Build-style constructors for algorithms with non-default
// configuration.
func Build(policy Policy, log *zap.SugaredLogger) *AStar {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &AStar{Policy: policy, Log: log}
}

// FindPath implements PathFinder. It never errors; "no path" is reported as
// ok=false.
func (a *AStar) FindPath(grid *core.HybridGrid, start, end core.Cell) ([]core.Cell, bool, error) {
	heuristic := func(c core.Cell) float64 {
		return core.CellDistance(c, end)
	}

	open := &nodeHeap{}
	heap.Init(open)

	startNode := NewNode(start)
	startNode.FCost = heuristic(start)
	heap.Push(open, startNode)

	gScore := map[core.Cell]float64{start: 0}
	closed := make(map[core.Cell]struct{})

	radius := a.Policy.NodeRadiusSearchRadius
	if radius < 0 {
		radius = 0
	}
	radiusSq := float64(radius) * float64(radius)

	for open.Len() > 0 {
		current := heap.Pop(open).(*Node)

		if current.Position == end {
			return reconstructPath(current), true, nil
		}

		if _, seen := closed[current.Position]; seen {
			continue
		}
		closed[current.Position] = struct{}{}

		for _, neighbor := range current.Neighbors(a.Policy.PickStyle) {
			pos := neighbor.Position

			if grid.IsOutsideGrid(pos) || grid.IsObstructed(pos) {
				continue
			}
			if _, inClosed := closed[pos]; inClosed {
				continue
			}

			tentativeG := gScore[current.Position] + current.DistanceTo(neighbor)

			best, known := gScore[pos]
			if !known {
				best = math.Inf(1)
			}
			if tentativeG >= best {
				continue
			}
			gScore[pos] = tentativeG

			extraCost := 0.0
			if pos != end {
				var ok bool
				extraCost, ok = a.extraCost(grid, pos, radius, radiusSq)
				if !ok {
					continue // absolute discard
				}
			}

			fCost := tentativeG + heuristic(pos) + extraCost
			if math.IsNaN(fCost) || math.IsInf(fCost, 0) {
				continue // degenerate cost never reaches the heap
			}

			neighbor.GCost = tentativeG
			neighbor.FCost = fCost
			heap.Push(open, neighbor)
		}
	}

	a.Log.Debugw("no path found", "start", start, "end", end)
	return nil, false, nil
}

// extraCost computes the proximity and uncertainty penalty for a neighbor
// cell, returning ok=false when the absolute-discard rule says to drop the
// neighbor entirely.
func (a *AStar) extraCost(grid *core.HybridGrid, pos core.Cell, radius int, radiusSq float64) (float64, bool) {
	policy := a.Policy
	extra := 0.0

	needAvgDistance := policy.DoAbsoluteDiscard || policy.AvgDistanceCost != 0
	avgDistance := math.Inf(1)
	if needAvgDistance {
		avgDistance = averageWitnessDistance(grid, pos, radius, radiusSq)
	}

	if policy.DoAbsoluteDiscard && !math.IsInf(avgDistance, 1) && avgDistance < policy.AvgDistanceMinDiscardThreshold {
		return 0, false
	}

	if !math.IsInf(avgDistance, 1) && policy.AvgDistanceCost != 0 {
		if avgDistance < 0.001 {
			extra += policy.AvgDistanceCost * 1000
		} else {
			extra += policy.AvgDistanceCost * (float64(radius) / avgDistance)
		}
	}

	if field, d, ok := grid.GetNearestUncertaintyField(core.Point{X: float64(pos.X), Y: float64(pos.Y)}); ok {
		extra += core.UncertaintyFieldCostRamping(d, field.Radius, field.Intensity)
	}

	return extra, true
}

// averageWitnessDistance returns the average Euclidean distance (scaled by
// the grid's square size) from pos to every cell/point in the combined
// witness set: obstructed cells within the Chebyshev radius, union hybrid
// points within the squared-Euclidean radius. +Inf means no witness exists
// ("effectively clear").
func averageWitnessDistance(grid *core.HybridGrid, pos core.Cell, radius int, radiusSq float64) float64 {
	posPoint := core.Point{X: float64(pos.X), Y: float64(pos.Y)}
	squareSize := grid.SquareSizeMeters()

	obstacles := grid.GetAllObstructionsInRadius(pos, radius)
	hybrids := grid.GetNearestHybrid(posPoint, radiusSq)

	if len(obstacles) == 0 && len(hybrids) == 0 {
		return math.Inf(1)
	}

	sum := 0.0
	count := 0
	for _, o := range obstacles {
		sum += core.CellDistance(pos, o) * squareSize
		count++
	}
	for _, h := range hybrids {
		sum += math.Sqrt(h.DistanceSq) * squareSize
		count++
	}
	return sum / float64(count)
}

func reconstructPath(goalNode *Node) []core.Cell {
	var path []core.Cell
	for n := goalNode; n != nil; n = n.Parent {
		path = append(path, n.Position)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
