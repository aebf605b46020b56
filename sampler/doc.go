// Package sampler implements random generation of restricted integer
// partitions: Fristedt's expected-size method, exact-size rejection
// sampling, and the probabilistic divide-and-conquer method with a
// deterministic second half (PDC-DSH).
//
// The algorithms offered are:
//
//   - ExpectedSize — Fristedt's method.
//
//   - Method: independent geometric multiplicities under a tilt x chosen
//     so the expected weight equals the target.
//
//   - Output: a partition of *random* weight with expectation ≈ target.
//
//   - Time:   O(k) draws, k = number of allowed sizes ≤ target.
//
//   - Rejection — exact size, uniform law.
//
//   - Method: repeat ExpectedSize until the weight hits the target exactly.
//
//   - Output: an exactly uniform partition of the target weight.
//
//   - Trials: grows with the target (empirically ~√n unrestricted).
//
//   - PDC — exact size, uniform law, deterministic second half.
//
//   - Method: sample every size except the smallest allowed one, then
//     resolve the smallest size's multiplicity with a single calibrated
//     accept/reject test.
//
//   - Output: identical law to Rejection with markedly fewer retries.
//
//   - This is the recommended exact sampler; Sample delegates to it.
//
// # Tilt solving
//
// Both exact samplers and ExpectedSize need the tilt x ∈ (0,1) solving
// ExpectedWeight(x) = target. Two paths coexist, and which one runs is
// explicit: the Unrestricted policy takes TiltUnrestricted (a 201-entry
// table for small targets plus the asymptotic 1−π/√(6n)), every other
// policy takes SolveTilt's bisection. A manual Options.TiltOverride in
// (0,1) bypasses both, for numerical-instability workarounds.
//
// # Randomness
//
// There is no hidden global generator. Every call derives its stream from
// Options: an injected Source (any Uint64() — *rand.Rand qualifies), or a
// deterministic gonum MT19937-64 seeded from Options.Seed, where seed 0
// maps to a fixed default seed. Same options ⇒ identical output.
//
// # Diagnostics
//
// Calls return Stats alongside the partition: the tilt used, bisection
// iteration count and convergence flag, and the number of accept/reject
// attempts. Nothing is logged and nothing panics.
//
// # Errors
//
//	ErrInfeasibleTarget — no allowed part size fits a nonzero target.
//	ErrTiltOutOfRange   — manual tilt override outside (0,1).
//	ErrTiltNotConverged — bisection cap hit with Options.StrictTilt set.
//	ErrAttemptsExceeded — Options.MaxAttempts exhausted before success.
//
// The retry loops are almost surely finite for feasible targets but carry
// no intrinsic bound; latency-sensitive callers should set MaxAttempts.
package sampler
