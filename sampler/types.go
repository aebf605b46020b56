package sampler

import "errors"

// Sentinel errors returned by the sampling entry points.
var (
	// ErrInfeasibleTarget indicates that the target weight is nonzero and
	// the policy's smallest allowed part already exceeds it (or the policy
	// admits no sizes at all), so no partition can reach the target.
	ErrInfeasibleTarget = errors.New("sampler: no allowed part size fits the target")

	// ErrTiltOutOfRange indicates a manual tilt override outside the open
	// interval (0,1).
	ErrTiltOutOfRange = errors.New("sampler: manual tilt must lie in (0,1)")

	// ErrTiltNotConverged indicates the bisection solver hit its iteration
	// cap before meeting tolerance, and Options.StrictTilt demanded a
	// converged tilt. Without StrictTilt the best midpoint is used silently.
	ErrTiltNotConverged = errors.New("sampler: tilt bisection did not converge")

	// ErrAttemptsExceeded indicates the accept/reject loop exhausted
	// Options.MaxAttempts before producing an exact-size partition.
	ErrAttemptsExceeded = errors.New("sampler: attempt budget exhausted")
)

// Options configures a sampling call.
//
//   - TiltOverride: manual tilt x; 0 means "solve for it". A nonzero
//     value must lie in (0,1) and is used verbatim, bypassing the solver
//     entirely (workaround for numerical instability on extreme
//     restriction sets).
//   - Seed: seed for the default MT19937-64 stream when Rand is nil.
//     Seed 0 maps to a fixed default seed, so the zero Options value is
//     still fully deterministic.
//   - Rand: injected random source; overrides Seed when non-nil.
//   - MaxAttempts: cap on accept/reject attempts for the exact samplers.
//     0 means unlimited.
//   - StrictTilt: turn a non-converged bisection into ErrTiltNotConverged
//     instead of silently using the best midpoint.
type Options struct {
	TiltOverride float64 // manual tilt in (0,1); 0 = solve
	Seed         int64   // deterministic seed for the default source
	Rand         Source  // explicit random source (wins over Seed)
	MaxAttempts  uint64  // retry budget; 0 = unlimited
	StrictTilt   bool    // error on solver non-convergence
}

// DefaultOptions returns the production defaults: solved tilt, seed 0
// (fixed default stream), unlimited attempts, best-effort solver.
func DefaultOptions() Options {
	return Options{}
}

// Stats reports per-call diagnostics. It is always populated as far as
// the call progressed, including on error returns.
type Stats struct {
	// Tilt is the tilt parameter the call sampled under.
	Tilt float64

	// TiltFastPath is true when the unrestricted table/asymptotic path
	// supplied the tilt instead of bisection.
	TiltFastPath bool

	// TiltIters is the number of bisection iterations performed
	// (0 on the fast path or with a manual override).
	TiltIters int

	// TiltConverged reports whether the tilt is trusted: bisection met
	// tolerance, or the fast path / a manual override was used.
	TiltConverged bool

	// Attempts counts accept/reject rounds, 1 for ExpectedSize.
	Attempts uint64
}
