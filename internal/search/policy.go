package search

// Policy configures A*'s neighborhood and proximity-weighting behavior.
// It plays the role orange-dot-mapf-het's Solver constructors play for MAPF
// algorithms (NewPrioritized(100), NewCBS(100), ...), except here there is
// one algorithm (AStar) and the knobs live on a config struct instead of
// being baked into separate constructors, since they are orthogonal to each
// other and to pick style.
type Policy struct {
	PickStyle PickStyle

	// NodeRadiusSearchRadius is the Chebyshev radius (cells) used for the
	// static-obstacle scan; its square is the squared-Euclidean bound passed
	// to the hybrid index.
	NodeRadiusSearchRadius int

	// DoAbsoluteDiscard, when true, skips a neighbor outright once its
	// local obstacle/hybrid density crosses AvgDistanceMinDiscardThreshold.
	DoAbsoluteDiscard bool

	// AvgDistanceMinDiscardThreshold is the average-distance floor below
	// which a neighbor is discarded, when DoAbsoluteDiscard is set.
	AvgDistanceMinDiscardThreshold float64

	// AvgDistanceCost scales the proximity penalty; 0 disables it (and
	// skips computing the average-distance witness set entirely unless
	// DoAbsoluteDiscard also needs it).
	AvgDistanceCost float64
}

// DefaultPolicy returns the reference design's conservative defaults: ALL
// neighbors, radius 1, no discard, proximity cost 1.
func DefaultPolicy() Policy {
	return Policy{
		PickStyle:                      All,
		NodeRadiusSearchRadius:         1,
		DoAbsoluteDiscard:              false,
		AvgDistanceMinDiscardThreshold: 1.0,
		AvgDistanceCost:                1.0,
	}
}
