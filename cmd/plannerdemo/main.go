// Command plannerdemo builds a HybridGrid, runs calculate_path with and
// without an uncertainty field, and prints each path's length, its timed
// spline's total time, and the sampled position at half that time.
package main

import (
	"fmt"
	"time"

	"github.com/elektrokombinacija/hybridnav/internal/core"
	"github.com/elektrokombinacija/hybridnav/internal/planner"
	"github.com/elektrokombinacija/hybridnav/internal/timedpath"
)

func main() {
	fmt.Println("=== HybridGrid planner demo ===")

	p, err := planner.New(planner.Config{
		SizeX:            20,
		SizeY:            20,
		CenterX:          10,
		CenterY:          10,
		SquareSizeMeters: 0.5,
		StaticObstacles:  lWall(),
	})
	if err != nil {
		fmt.Println("planner init failed:", err)
		return
	}

	start := core.Cell{X: 0, Y: 0}
	end := core.Cell{X: 15, Y: 15}

	runSearch(p, start, end, "no uncertainty field")

	p.AddUncertaintyField(core.Point{X: 7, Y: 7}, 3.0, 8.0)
	runSearch(p, start, end, "with uncertainty field at (7,7)")
}

func runSearch(p *planner.Planner, start, end core.Cell, label string) {
	fmt.Printf("\n--- %s ---\n", label)
	begin := time.Now()
	path, ok := p.CalculatePath(start, end)
	elapsed := time.Since(begin)

	if !ok {
		fmt.Println("no path found, elapsed", elapsed)
		return
	}
	fmt.Printf("path length=%d, elapsed=%v\n", len(path), elapsed)

	tp := timedpath.New(2.0, 1.0)
	for _, c := range path {
		tp.AddWaypoint(core.Point{X: float64(c.X), Y: float64(c.Y)}, core.Point{})
	}
	tp.ComputeSpline()
	fmt.Printf("total_time=%.2fs\n", tp.TotalTime())

	mid, ok := tp.GetPositionAt(tp.TotalTime() / 2)
	if ok {
		fmt.Printf("position at half time: (%.2f, %.2f)\n", mid.X, mid.Y)
	}
}

func lWall() []core.Cell {
	var cells []core.Cell
	for y := 2; y <= 6; y++ {
		cells = append(cells, core.Cell{X: 5, Y: y})
	}
	for x := 5; x <= 9; x++ {
		cells = append(cells, core.Cell{X: x, Y: 6})
	}
	return cells
}
