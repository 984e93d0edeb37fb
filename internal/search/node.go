// Package search implements the A* variant over a core.HybridGrid: a
// pluggable-neighborhood, proximity- and uncertainty-weighted best-first
// search, plus the space for a future pathfinder (see PathFinder).
package search

import (
	"github.com/elektrokombinacija/hybridnav/internal/core"
)

// PickStyle selects which neighbors a node enumerates.
type PickStyle int

const (
	// All is the eight axis-and-diagonal neighbors (8-connected).
	All PickStyle = iota
	// Sides is the four cardinal neighbors (4-connected).
	Sides
)

// offsets returns the (dx, dy) steps for a pick style at step size 1, the
// only step size the reference design uses.
func (p PickStyle) offsets() [][2]int {
	switch p {
	case Sides:
		return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	default: // All
		out := make([][2]int, 0, 8)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				out = append(out, [2]int{dx, dy})
			}
		}
		return out
	}
}

// Node is a search node: a grid position, an f-cost used for priority
// ordering, and a parent link. The parent is a shared reference forming a
// tree rooted at the start cell — it is set once at construction and never
// mutated afterward, so many children may safely share one parent.
type Node struct {
	Position core.Cell
	FCost    float64
	GCost    float64
	Parent   *Node

	// Timestamp is reserved for a future space-time variant of the search;
	// the reference A* in this module never reads it.
	Timestamp float64
}

// NewNode creates a node with no parent and zero cost.
func NewNode(position core.Cell) *Node {
	return &Node{Position: position}
}

// Neighbors returns the nodes reachable in one step under pickStyle, each
// parented to n.
func (n *Node) Neighbors(pickStyle PickStyle) []*Node {
	offsets := pickStyle.offsets()
	out := make([]*Node, 0, len(offsets))
	for _, off := range offsets {
		out = append(out, &Node{
			Position: core.Cell{X: n.Position.X + off[0], Y: n.Position.Y + off[1]},
			Parent:   n,
		})
	}
	return out
}

// DistanceTo returns the Euclidean distance between n and other's
// positions, promoting the integer coordinates to float64.
func (n *Node) DistanceTo(other *Node) float64 {
	return core.CellDistance(n.Position, other.Position)
}

// nodeHeap is a min-heap on FCost, implementing container/heap.Interface
// the same way orange-dot-mapf-het's astarHeap does.
type nodeHeap []*Node

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].FCost < h[j].FCost }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(*Node))
}
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}
