package sampler

import (
	"math"

	"github.com/katalvlaran/ranpart/partition"
)

// PDC — probabilistic divide-and-conquer, deterministic second half.
//
// Description:
//
//	Produces an exactly uniform partition of the target weight with far
//	fewer expected retries than Rejection, by rejecting only on the
//	smallest allowed part size u(1) instead of the whole partition. The
//	output law is identical to Rejection's.
//
// Algorithm Outline, repeated until accepted:
//  1. Run one Fristedt round for every allowed size (the provisional
//     u(1) count included), then discard the u(1) entry.
//  2. partial = current weight, diff = target − partial.
//  3. Accept iff partial ≤ target, diff is an exact multiple of u(1),
//     and a fresh uniform draw is ≤ x^(u(1)·diff) — the likelihood-ratio
//     correction restoring the correct conditional distribution of the
//     u(1) multiplicity given every other realized count.
//  4. On acceptance set the u(1) multiplicity to diff/u(1), making the
//     weight exactly the target. On rejection restart from step 1; the
//     tilt is solved once per call, never per retry.
//
// Complexity: O(attempts·k) draws plus one accept draw per surviving
// round; attempts are markedly fewer than Rejection's at equal targets.
//
// Errors: ErrInfeasibleTarget, ErrTiltOutOfRange, ErrTiltNotConverged,
// ErrAttemptsExceeded.
func PDC(pol partition.Policy, target uint64, opts Options) (*partition.Partition, Stats, error) {
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

	u1 := pol.Part(1)
	rng := opts.source()
	for {
		if opts.MaxAttempts > 0 && st.Attempts >= opts.MaxAttempts {
			return nil, st, ErrAttemptsExceeded
		}
		st.Attempts++

		p.Reset()
		fillGeometric(p, pol, target, x, rng)
		p.Set(u1, 0) // drop the provisional smallest-size count

		partial := p.Weight()
		if partial > target {
			continue
		}
		diff := target - partial
		if diff%u1 != 0 {
			continue
		}
		if uniform01(rng) <= math.Pow(x, float64(u1)*float64(diff)) {
			p.Set(u1, diff/u1)

			return p, st, nil
		}
	}
}
