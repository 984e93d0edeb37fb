package core

import (
	"github.com/kyroy/kdtree"
	"github.com/kyroy/kdtree/points"
)

// FieldID uniquely and stably identifies an uncertainty field.
type FieldID int

// UncertaintyField is a soft-cost disc: points within Radius of Center carry
// an extra cost that eases out from 0 at the center to Intensity at the
// radius.
type UncertaintyField struct {
	ID        FieldID
	Center    Point
	Radius    float64
	Intensity float64
}

// fieldPoint adapts an UncertaintyField's center to kdtree.Point.
type fieldPoint struct {
	*points.Point
	id FieldID
}

// uncertaintyIndex holds the two parallel views the spec requires: an
// id -> record map and a spatial index on center, kept in lockstep behind
// this type's own methods (see "Two views of the same data" in the design
// notes — callers never get raw access to either side).
type uncertaintyIndex struct {
	byID           map[FieldID]*UncertaintyField
	tree           *kdtree.KDTree
	nextID         FieldID
	maxFieldRadius float64
}

func newUncertaintyIndex() *uncertaintyIndex {
	return &uncertaintyIndex{
		byID: make(map[FieldID]*UncertaintyField),
		tree: kdtree.New(nil),
	}
}

// Add inserts a new field, assigning it a fresh monotonically increasing id
// and updating the max-radius cache.
func (u *uncertaintyIndex) Add(center Point, radius, intensity float64) FieldID {
	id := u.nextID
	u.nextID++

	u.byID[id] = &UncertaintyField{ID: id, Center: center, Radius: radius, Intensity: intensity}
	u.tree.Insert(&fieldPoint{Point: points.NewPoint([]float64{center.X, center.Y}, id), id: id})
	if radius > u.maxFieldRadius {
		u.maxFieldRadius = radius
	}
	return id
}

// Clear empties both the id map and the spatial index. The max-radius
// cache resets to 0 only here — a full clear, not a partial mutation.
func (u *uncertaintyIndex) Clear() {
	u.byID = make(map[FieldID]*UncertaintyField)
	u.tree = kdtree.New(nil)
	u.maxFieldRadius = 0
}

// Nearest returns, among the fields whose Euclidean distance to p is no
// greater than their own radius, the one nearest to p, along with that
// distance. If the k-d tree resolves to an id no longer present in the map
// (possible under out-of-order mutation in concurrent use; harmless here
// since HybridGrid is single-writer), it returns ok=false rather than a
// stale field.
func (u *uncertaintyIndex) Nearest(p Point) (UncertaintyField, float64, bool) {
	if len(u.byID) == 0 {
		return UncertaintyField{}, 0, false
	}
	query := points.NewPoint([]float64{p.X, p.Y}, nil)
	candidates := u.tree.KNN(query, len(u.byID))
	var best *UncertaintyField
	bestD := 0.0
	for _, c := range candidates {
		fp, ok := c.(*fieldPoint)
		if !ok {
			continue
		}
		field, ok := u.byID[fp.id]
		if !ok {
			return UncertaintyField{}, 0, false
		}
		d := EuclideanDistance(p, field.Center)
		if d <= field.Radius && (best == nil || d < bestD) {
			best, bestD = field, d
		}
	}
	if best == nil {
		return UncertaintyField{}, 0, false
	}
	return *best, bestD, true
}

// AddUncertaintyField registers a new soft-cost disc and returns its id.
func (g *HybridGrid) AddUncertaintyField(center Point, radius, intensity float64) FieldID {
	return g.fields.Add(center, radius, intensity)
}

// ClearUncertaintyFields empties the uncertainty field registry.
func (g *HybridGrid) ClearUncertaintyFields() {
	g.fields.Clear()
}

// GetNearestUncertaintyField returns the nearest field covering p, if any.
func (g *HybridGrid) GetNearestUncertaintyField(p Point) (UncertaintyField, float64, bool) {
	return g.fields.Nearest(p)
}

// MaxFieldRadius returns the largest radius among fields ever inserted
// since the last full Clear.
func (g *HybridGrid) MaxFieldRadius() float64 {
	return g.fields.maxFieldRadius
}

// UncertaintyFieldCostRamping is the quadratic ease-out penalty: zero at
// the field's center, rising to intensity at its radius. Points nearer the
// field's edge cost more; the center itself costs nothing.
func UncertaintyFieldCostRamping(dCurrent, dFieldRadius, intensity float64) float64 {
	if dFieldRadius <= 0 {
		return intensity
	}
	ratio := dCurrent / dFieldRadius
	eased := 1 - (1-ratio)*(1-ratio)
	return eased * intensity
}
