package core

import (
	"sort"

	"github.com/kyroy/kdtree"
	"github.com/kyroy/kdtree/points"
)

// maxHybridResults bounds get_nearest_hybrid's returned count. Spec only
// requires this to be "a fixed large constant (>= 10,000)".
const maxHybridResults = 10000

// HybridHit is a hybrid obstacle point returned from a nearest-within-radius
// query, together with its squared-Euclidean distance to the query point.
type HybridHit struct {
	Point      Point
	Payload    int
	DistanceSq float64
}

// hybridPoint adapts Point to kdtree.Point; Data is the insertion-order
// payload the spec requires ("opaque integer payloads ... used only to
// distinguish them").
type hybridPoint struct {
	*points.Point
	pt      Point
	payload int
}

// hybridIndex is the k-d-tree-backed approximate index of continuous-
// coordinate hybrid obstacle hits. It is replaceable as a unit (Clear).
type hybridIndex struct {
	tree *kdtree.KDTree
	next int
}

func newHybridIndex() *hybridIndex {
	return &hybridIndex{tree: kdtree.New(nil)}
}

// Add inserts a hybrid obstacle point, assigning it the next insertion-order
// payload.
func (h *hybridIndex) Add(p Point) {
	hp := &hybridPoint{
		Point:   points.NewPoint([]float64{p.X, p.Y}, h.next),
		pt:      p,
		payload: h.next,
	}
	h.next++
	h.tree.Insert(hp)
}

// Clear discards the entire index as a unit, resetting it to empty.
func (h *hybridIndex) Clear() {
	h.tree = kdtree.New(nil)
	h.next = 0
}

// Nearest returns every indexed point whose squared-Euclidean distance to p
// is <= radiusSq, up to maxHybridResults of them, nearest first.
func (h *hybridIndex) Nearest(p Point, radiusSq float64) []HybridHit {
	query := points.NewPoint([]float64{p.X, p.Y}, nil)
	candidates := h.tree.KNN(query, maxHybridResults)

	hits := make([]HybridHit, 0, len(candidates))
	for _, c := range candidates {
		hp, ok := c.(*hybridPoint)
		if !ok {
			continue
		}
		dx := hp.pt.X - p.X
		dy := hp.pt.Y - p.Y
		dsq := dx*dx + dy*dy
		if dsq <= radiusSq {
			hits = append(hits, HybridHit{Point: hp.pt, Payload: hp.payload, DistanceSq: dsq})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].DistanceSq < hits[j].DistanceSq })
	return hits
}

// AddHybridObject adds a continuous-coordinate hybrid obstacle point.
func (g *HybridGrid) AddHybridObject(p Point) {
	g.hybrid.Add(p)
}

// ClearHybridObjects resets the hybrid index to empty in O(1).
func (g *HybridGrid) ClearHybridObjects() {
	g.hybrid.Clear()
}

// GetNearestHybrid returns the hybrid obstacle points within squared-
// Euclidean distance radiusSq of p.
func (g *HybridGrid) GetNearestHybrid(p Point, radiusSq float64) []HybridHit {
	return g.hybrid.Nearest(p, radiusSq)
}
