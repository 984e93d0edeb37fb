package timedpath

import (
	"math"

	"github.com/elektrokombinacija/hybridnav/internal/core"
)

// sampleCount is the number of uniform samples GetTimeAtPosition draws from
// each spline when approximating a nearest-point projection.
const sampleCount = 101

// Waypoint is a timed point on the path: a position, a direction captured
// for a future tangent constraint (not currently consumed — Catmull-Rom
// needs no derivative supply), and its arrival time along the trapezoidal
// profile.
type Waypoint struct {
	Position    core.Point
	Direction   core.Point
	TimeToReach float64
}

// TimedPath assigns arrival times to an incrementally built waypoint
// sequence via a symmetric trapezoidal velocity profile, then fits one
// Catmull-Rom spline per axis, keyed by arrival time, so the path can be
// sampled at any t via GetPositionAt.
type TimedPath struct {
	maxSpeed     float64
	acceleration float64

	waypoints []Waypoint
	totalTime float64

	splineX *keyedSpline
	splineY *keyedSpline
}

// New creates an empty TimedPath with the given max linear speed and linear
// acceleration, fixed for the lifetime of the path.
func New(maxSpeed, acceleration float64) *TimedPath {
	return &TimedPath{maxSpeed: maxSpeed, acceleration: acceleration}
}

// AddWaypoint appends a waypoint, computing its arrival time from the
// Euclidean distance to the previous waypoint (0 for the first waypoint).
// Adding a waypoint after ComputeSpline has run invalidates the existing
// splines; they must be recomputed before further sampling.
func (p *TimedPath) AddWaypoint(position, direction core.Point) {
	var t float64
	if n := len(p.waypoints); n > 0 {
		prev := p.waypoints[n-1]
		d := core.EuclideanDistance(prev.Position, position)
		t = prev.TimeToReach + segmentTime(d, p.maxSpeed, p.acceleration)
	}
	p.waypoints = append(p.waypoints, Waypoint{Position: position, Direction: direction, TimeToReach: t})
	p.totalTime = t
	p.splineX = nil
	p.splineY = nil
}

// segmentTime returns the duration of a symmetric trapezoidal velocity
// profile covering distance d at max speed v and acceleration a.
func segmentTime(d, v, a float64) float64 {
	ta := v / a
	da := 0.5 * a * ta * ta
	if d < 2*da {
		return 2 * math.Sqrt(d/a)
	}
	return 2*ta + (d-2*da)/v
}

// Waypoints returns the accumulated waypoint sequence.
func (p *TimedPath) Waypoints() []Waypoint {
	return p.waypoints
}

// TotalTime returns the last waypoint's arrival time (0 with fewer than two
// waypoints).
func (p *TimedPath) TotalTime() float64 {
	return p.totalTime
}

// ComputeSpline builds the x(t) and y(t) Catmull-Rom splines from the
// current waypoint sequence. With fewer than two waypoints it is a no-op:
// sampling continues to fail until enough waypoints exist and this is
// called again.
func (p *TimedPath) ComputeSpline() {
	if len(p.waypoints) < 2 {
		return
	}
	times := make([]float64, len(p.waypoints))
	xs := make([]float64, len(p.waypoints))
	ys := make([]float64, len(p.waypoints))
	for i, w := range p.waypoints {
		times[i] = w.TimeToReach
		xs[i] = w.Position.X
		ys[i] = w.Position.Y
	}
	p.splineX = newKeyedSpline(times, xs)
	p.splineY = newKeyedSpline(times, ys)
}

// GetPositionAt returns the sampled position at t, or ok=false if the
// splines haven't been computed yet or t falls outside [0, TotalTime()].
func (p *TimedPath) GetPositionAt(t float64) (core.Point, bool) {
	if p.splineX == nil || p.splineY == nil {
		return core.Point{}, false
	}
	if t < 0 || t > p.totalTime {
		return core.Point{}, false
	}
	return core.Point{X: p.splineX.at(t), Y: p.splineY.at(t)}, true
}

// GetTimeAtPosition approximates the nearest-point projection of p onto the
// path by sampling both splines at 101 uniform times across [0, TotalTime()]
// and returning the time whose sampled position is closest to p. This is an
// O(1/N) angular-error approximation intended for coarse tracking, not
// precise arc-length inversion.
func (p *TimedPath) GetTimeAtPosition(point core.Point) (float64, bool) {
	if p.splineX == nil || p.splineY == nil {
		return 0, false
	}

	bestT := 0.0
	bestDist := math.Inf(1)
	for i := 0; i < sampleCount; i++ {
		t := p.totalTime * float64(i) / float64(sampleCount-1)
		sampled, ok := p.GetPositionAt(t)
		if !ok {
			continue
		}
		d := core.EuclideanDistance(sampled, point)
		if d < bestDist {
			bestDist = d
			bestT = t
		}
	}
	return bestT, true
}
