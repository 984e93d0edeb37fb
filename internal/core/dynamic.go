package core

import "github.com/go-gl/mathgl/mgl64"

// DynamicObject is the reserved hook for perceived moving obstacles. The
// grid can own a sequence of these and snapshot their transforms at a given
// time, but no reference search in this module consumes the result — ported
// from original_source's GenericDynamicObject/DynamicObject<D> (Rust) as a
// preserved-but-unbound capability, per the design notes on dynamic objects.
type DynamicObject interface {
	TransformAt(timeSinceInitial float64) mgl64.Mat3
}

// AddDynamicObject registers a dynamic object with the grid.
func (g *HybridGrid) AddDynamicObject(obj DynamicObject) {
	g.dynamic = append(g.dynamic, obj)
}

// DynamicObjectTransformsAt returns a snapshot of every registered dynamic
// object's transform at timeSinceInitial.
func (g *HybridGrid) DynamicObjectTransformsAt(timeSinceInitial float64) []mgl64.Mat3 {
	out := make([]mgl64.Mat3, len(g.dynamic))
	for i, obj := range g.dynamic {
		out[i] = obj.TransformAt(timeSinceInitial)
	}
	return out
}

// LinearDynamicObject is a dynamic object moving at constant velocity from
// an initial pose, mirroring original_source's DynamicObject<D> (transform +
// velocity, time-shifted translation column).
type LinearDynamicObject struct {
	Direction Point
	Position  Point
	Velocity  Point
}

// TransformAt returns the object's transform at timeSinceInitial, with the
// translation advanced by Velocity * timeSinceInitial.
func (o LinearDynamicObject) TransformAt(timeSinceInitial float64) mgl64.Mat3 {
	pos := Point{
		X: o.Position.X + o.Velocity.X*timeSinceInitial,
		Y: o.Position.Y + o.Velocity.Y*timeSinceInitial,
	}
	return ConstructTransform(o.Direction, pos)
}
