package sampler

import "github.com/katalvlaran/ranpart/partition"

// Rejection — exact-size sampling by full restart.
//
// Description:
//
//	Repeats Fristedt rounds until the drawn weight equals the target
//	exactly. Each candidate carries probability proportional to
//	x^weight, so conditioning on weight == target yields the exactly
//	uniform distribution over all policy-respecting partitions of the
//	target. The tilt is solved once and reused across retries — any
//	fixed x in (0,1) gives the same conditional law, so retries only
//	affect speed, never distribution.
//
// Trials: no intrinsic bound; the expected count grows with the target
// (empirically ~√n for the unrestricted policy). Set Options.MaxAttempts
// to trade completeness for bounded latency; Stats.Attempts reports the
// rounds consumed either way.
//
// Complexity: O(attempts·k) draws, k = number of allowed sizes ≤ target.
//
// Errors: ErrInfeasibleTarget, ErrTiltOutOfRange, ErrTiltNotConverged,
// ErrAttemptsExceeded.
func Rejection(pol partition.Policy, target uint64, opts Options) (*partition.Partition, Stats, error) {
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

	rng := opts.source()
	for {
		if opts.MaxAttempts > 0 && st.Attempts >= opts.MaxAttempts {
			return nil, st, ErrAttemptsExceeded
		}
		st.Attempts++

		p.Reset()
		fillGeometric(p, pol, target, x, rng)
		if p.Weight() == target {
			return p, st, nil
		}
	}
}
