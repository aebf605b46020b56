package sampler

import (
	"math"

	"github.com/katalvlaran/ranpart/partition"
)

// ExpectedSize — Fristedt's method.
//
// Description:
//
//	Draws a partition whose part-size multiplicities are independent
//	geometric random variables tilted by x, so the weight is random with
//	expectation ≈ target. This is the bulk stage the exact samplers
//	build on, and the right call when a random-size sample with correct
//	marginal probabilities is all that is needed.
//
// Algorithm Outline:
//  1. Resolve the tilt x: Options.TiltOverride verbatim if set, else the
//     unrestricted fast path or bisection (see resolveTilt).
//  2. Let L = ln x. For each allowed size i = u(1), u(2), … while
//     i ≤ target and i ≠ 0:
//     draw A uniform in (0,1); the count c = ⌊ln A / (i·L)⌋ is geometric
//     with success probability 1−xⁱ (inverse-CDF transform).
//     Store c only when nonzero.
//
// Returns a freshly built partition; no state is shared between calls.
//
// Complexity: O(k) draws over the k allowed sizes ≤ target, plus the
// tilt solve.
//
// Errors: ErrInfeasibleTarget, ErrTiltOutOfRange, ErrTiltNotConverged.
func ExpectedSize(pol partition.Policy, target uint64, opts Options) (*partition.Partition, Stats, error) {
	if pol == nil {
		pol = partition.Unrestricted{}
	}
	p := partition.New(pol)
	if target == 0 {
		return p, Stats{}, nil
	}
	if err := checkFeasible(pol, target); err != nil {
		return nil, Stats{}, err
	}

	x, st, err := resolveTilt(pol, target, opts)
	if err != nil {
		return nil, st, err
	}

	fillGeometric(p, pol, target, x, opts.source())
	st.Attempts = 1

	return p, st, nil
}

// fillGeometric populates p with one round of Fristedt draws under tilt
// x, consuming one uniform variate per allowed size ≤ target.
func fillGeometric(p *partition.Partition, pol partition.Policy, target uint64, x float64, rng Source) {
	logx := math.Log(x)
	for j := uint64(1); ; j++ {
		i := pol.Part(j)
		if i == 0 || i > target {
			break
		}
		// Both logs are negative, so the ratio is a non-negative float;
		// the uint64 conversion truncates, which is the required floor.
		if c := uint64(math.Log(uniform01(rng)) / (float64(i) * logx)); c > 0 {
			p.Set(i, c)
		}
	}
}

// checkFeasible rejects targets no partition can reach: an empty policy,
// or a smallest allowed size already above the target. Deeper degeneracy
// (sizes that never sum to the target) is the policy contract's domain
// and is bounded only by Options.MaxAttempts.
func checkFeasible(pol partition.Policy, target uint64) error {
	if u1 := pol.Part(1); u1 == 0 || u1 > target {
		return ErrInfeasibleTarget
	}

	return nil
}
