package match

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadOptions - options that would make scores meaningless
var ErrBadOptions = errors.New("match: invalid options")

// Options tunes scoring.
//
//   - StrokeTolerance - references whose stroke count differs from the
//     query's by more than this are not scored at all.
//   - SkipPenalty - cost of leaving one sub-stroke of either side unmatched.
//     Pair costs lie in [0,1], so a penalty below 0.5 makes skipping both of a
//     very dissimilar pair cheaper than matching them, while similar pairs
//     (cost well under 2×SkipPenalty) still match.
//   - DirectionWeight, LengthWeight, CenterWeight - share of each term in a
//     pair cost; they sum to 1.
//   - MinScore - feasibility threshold, a candidate must score above it.
type Options struct {
	StrokeTolerance int
	SkipPenalty     float64
	DirectionWeight float64
	LengthWeight    float64
	CenterWeight    float64
	MinScore        float64
}

// DefaultOptions returns the tuning used by the lookup.
func DefaultOptions() Options {
	return Options{
		StrokeTolerance: 2,
		SkipPenalty:     0.35,
		DirectionWeight: 0.5,
		LengthWeight:    0.2,
		CenterWeight:    0.3,
		MinScore:        0,
	}
}

// Validate checks the invariants documented on Options.
func (o Options) Validate() error {
	if o.StrokeTolerance < 0 {
		return fmt.Errorf("%w: stroke tolerance %d", ErrBadOptions, o.StrokeTolerance)
	}
	if o.SkipPenalty <= 0 || o.SkipPenalty > 0.5 {
		return fmt.Errorf("%w: skip penalty %v outside (0, 0.5]", ErrBadOptions, o.SkipPenalty)
	}
	if o.DirectionWeight < 0 || o.LengthWeight < 0 || o.CenterWeight < 0 {
		return fmt.Errorf("%w: negative weight", ErrBadOptions)
	}
	if sum := o.DirectionWeight + o.LengthWeight + o.CenterWeight; math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("%w: weights sum to %v", ErrBadOptions, sum)
	}
	if o.MinScore < 0 || o.MinScore >= 1 {
		return fmt.Errorf("%w: min score %v outside [0, 1)", ErrBadOptions, o.MinScore)
	}
	return nil
}
