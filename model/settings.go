package model

// ScoreWeights tunes the candidate scoring used by the packing engine.
// All terms are normalized to roughly [0,1] before weighting, so weights
// are comparable to each other. FloorBias is subtracted (it penalizes
// resting height); keep it modest or the engine spreads cargo in a single
// floor layer instead of stacking toward the ceiling.
type ScoreWeights struct {
	FloorBias float64 `json:"floor_bias" yaml:"floor_bias"` // penalty per normalized resting height
	WidthFit  float64 `json:"width_fit" yaml:"width_fit"`   // tightness against the remaining width gap
	DepthUse  float64 `json:"depth_use" yaml:"depth_use"`   // use of the wall depth
	Area      float64 `json:"area" yaml:"area"`             // cross-sectional footprint area
	Volume    float64 `json:"volume" yaml:"volume"`         // small volume tie-break
}

// PackSettings holds engine configuration.
type PackSettings struct {
	Weights ScoreWeights `json:"weights" yaml:"weights"`

	// DepthCandidates is how many frequency-ranked wall depths are trialed
	// per wall. Minimum 2.
	DepthCandidates int `json:"depth_candidates" yaml:"depth_candidates"`

	// LookaheadWalls is how many walls beyond the current one are simulated
	// when ranking depth candidates. 0 degrades to pure greedy selection.
	LookaheadWalls int `json:"lookahead_walls" yaml:"lookahead_walls"`
}

// DefaultSettings returns the tuned defaults. The historical constants from
// the predecessor system over-penalized stacking and are deliberately not
// reproduced here.
func DefaultSettings() PackSettings {
	return PackSettings{
		Weights: ScoreWeights{
			FloorBias: 0.5,
			WidthFit:  2.0,
			DepthUse:  1.5,
			Area:      1.0,
			Volume:    0.25,
		},
		DepthCandidates: 3,
		LookaheadWalls:  1,
	}
}
