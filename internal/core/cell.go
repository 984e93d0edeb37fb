// Package core defines the spatial domain model for the grid planner:
// integer grid cells, continuous-coordinate points, the HybridGrid spatial
// index, and the pure math helpers the rest of the module builds on.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cell is an integer 2D grid coordinate.
type Cell struct {
	X, Y int
}

// Point is a continuous-coordinate 2D position (hybrid obstacle hits,
// uncertainty field centers, timed waypoints).
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Vec2 returns the mathgl vector backing this point.
func (p Point) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

// CellDistance returns the Euclidean distance between two cells, promoting
// their integer coordinates to float64.
func CellDistance(a, b Cell) float64 {
	return EuclideanDistance(Point{float64(a.X), float64(a.Y)}, Point{float64(b.X), float64(b.Y)})
}

// EuclideanDistance returns the straight-line distance between two points.
func EuclideanDistance(a, b Point) float64 {
	return a.Vec2().Sub(b.Vec2()).Len()
}

// ConstructTransform builds a 2D homogeneous transform (a 3x3 matrix) whose
// forward axis points along direction and whose translation is position. If
// direction has zero magnitude, the identity transform is returned.
func ConstructTransform(direction, position Point) mgl64.Mat3 {
	dir := direction.Vec2()
	if dir.Len() == 0 {
		return mgl64.Ident3()
	}
	angle := math.Atan2(dir.Y(), dir.X())
	cos, sin := math.Cos(angle), math.Sin(angle)

	// Columns: forward (normalized direction), its counter-clockwise
	// perpendicular, translation.
	return mgl64.Mat3{
		cos, sin, 0,
		-sin, cos, 0,
		position.X, position.Y, 1,
	}
}

// ForwardAxis returns the forward (direction) column of a transform: the
// direction passed to ConstructTransform, normalized to unit length.
func ForwardAxis(transform mgl64.Mat3) Point {
	return Point{transform[0], transform[1]}
}

// DistanceInFront returns the signed distance of point along the forward
// axis of transform, relative to the frame's origin. Positive means point
// is ahead of the frame.
func DistanceInFront(transform mgl64.Mat3, point Point) float64 {
	origin := Point{transform[6], transform[7]}
	forward := ForwardAxis(transform)
	rel := point.Sub(origin)
	return rel.Vec2().Dot(forward.Vec2())
}
