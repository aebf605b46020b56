package sampler

import (
	"math"

	"github.com/katalvlaran/ranpart/partition"
)

// Bisection bracket and termination constants.
const (
	// bisectC = π/√6, the coefficient of the asymptotic tilt 1−c/√n.
	bisectC = 1.2825498301618643

	// bisectTol is the residual-gap tolerance |r_lo − r_hi| that ends
	// the search.
	bisectTol = 1e-5

	// bisectMaxIters caps the bisection loop; without Options.StrictTilt
	// the best midpoint is returned silently when the cap is hit.
	bisectMaxIters = 1000

	// tiltCeiling is the upper bracket edge, numerically the largest
	// float64 strictly below 1.
	tiltCeiling = 1.0 - 1e-16

	// tiltFloor keeps the lower bracket edge positive for tiny targets,
	// where 1−c/√n would go non-positive.
	tiltFloor = 1e-9
)

// tiltTableMax bounds the unrestricted lookup table; targets at or above
// it use the asymptotic formula.
const tiltTableMax = 201

// unrestrictedTilt[n] solves ExpectedWeight(x, n, Unrestricted) = n to
// five digits, for 1 ≤ n < 201. Entry 0 is a placeholder.
var unrestrictedTilt = [tiltTableMax]float64{
	0, 0.5, 0.54031, 0.57202, 0.59784, 0.61942, 0.63781, 0.65374, 0.6677,
	0.68009, 0.69116, 0.70114, 0.7102, 0.71847, 0.72606, 0.73306, 0.73954,
	0.74555, 0.75117, 0.75641, 0.76134, 0.76597, 0.77033, 0.77445, 0.77836,
	0.78206, 0.78558, 0.78892, 0.79212, 0.79516, 0.79808, 0.80087, 0.80354,
	0.80611, 0.80857, 0.81094, 0.81322, 0.81542, 0.81754, 0.81959, 0.82157,
	0.82348, 0.82533, 0.82712, 0.82885, 0.83054, 0.83217, 0.83375, 0.83529,
	0.83679, 0.83824, 0.83966, 0.84104, 0.84238, 0.84368, 0.84496, 0.8462,
	0.84741, 0.8486, 0.84975, 0.85088, 0.85198, 0.85306, 0.85411, 0.85514,
	0.85615, 0.85714, 0.8581, 0.85905, 0.85998, 0.86089, 0.86178, 0.86265,
	0.86351, 0.86435, 0.86517, 0.86598, 0.86677, 0.86755, 0.86832, 0.86907,
	0.86981, 0.87054, 0.87125, 0.87195, 0.87264, 0.87332, 0.87399, 0.87465,
	0.87529, 0.87593, 0.87656, 0.87717, 0.87778, 0.87838, 0.87897, 0.87955,
	0.88012, 0.88068, 0.88124, 0.88179, 0.88233, 0.88286, 0.88339, 0.8839,
	0.88442, 0.88492, 0.88542, 0.88591, 0.88639, 0.88687, 0.88734, 0.88781,
	0.88827, 0.88872, 0.88917, 0.88962, 0.89005, 0.89049, 0.89091, 0.89134,
	0.89175, 0.89216, 0.89257, 0.89298, 0.89337, 0.89377, 0.89416, 0.89454,
	0.89492, 0.8953, 0.89567, 0.89604, 0.8964, 0.89676, 0.89712, 0.89747,
	0.89782, 0.89817, 0.89851, 0.89885, 0.89918, 0.89952, 0.89984, 0.90017,
	0.90049, 0.90081, 0.90113, 0.90144, 0.90175, 0.90205, 0.90236, 0.90266,
	0.90296, 0.90325, 0.90354, 0.90383, 0.90412, 0.90441, 0.90469, 0.90497,
	0.90524, 0.90552, 0.90579, 0.90606, 0.90633, 0.90659, 0.90685, 0.90712,
	0.90737, 0.90763, 0.90788, 0.90813, 0.90838, 0.90863, 0.90888, 0.90912,
	0.90936, 0.9096, 0.90984, 0.91008, 0.91031, 0.91054, 0.91077, 0.911,
	0.91123, 0.91145, 0.91167, 0.9119, 0.91212, 0.91233, 0.91255, 0.91276,
	0.91298, 0.91319, 0.9134, 0.91361, 0.91382, 0.91402, 0.91422, 0.91443,
}

// ExpectedWeight returns Σ i·xⁱ/(1−xⁱ) over allowed sizes i ≤ n, the
// expected weight of a partition whose size-i multiplicities are
// independent geometric variables with success probability 1−xⁱ.
//
// The sum iterates the policy in increasing order and stops at the first
// size above n or at the 0 sentinel, so finite restriction sets
// terminate early. For a fixed policy with at least one allowed size ≤ n
// the sum is strictly increasing in x over (0,1), which is what makes
// bisection valid.
//
// Complexity: O(k) with k the number of allowed sizes ≤ n.
func ExpectedWeight(x float64, n uint64, pol partition.Policy) float64 {
	if pol == nil {
		pol = partition.Unrestricted{}
	}

	var res float64
	for j := uint64(1); ; j++ {
		i := pol.Part(j)
		if i == 0 || i > n {
			break
		}
		xi := math.Pow(x, float64(i))
		res += float64(i) * xi / (1.0 - xi)
	}

	return res
}

// SolveTilt finds x ∈ (0,1) with ExpectedWeight(x, n, pol) ≈ n by
// bisection over [1−c/√n, 1−1e−16]. This is the general path, valid for
// every restriction policy.
//
// Termination: when the two bracket residuals differ by less than 1e−5
// in absolute value, or after 1000 iterations. converged reports whether
// the tolerance was met; on a cap hit the current midpoint is still
// returned (silent best effort — callers wanting a hard failure set
// Options.StrictTilt on the sampling call instead).
//
// Complexity: O(iters·k) evaluations of ExpectedWeight.
func SolveTilt(n uint64, pol partition.Policy) (x float64, iters int, converged bool) {
	lo := 1.0 - bisectC/math.Sqrt(float64(n))
	if lo <= 0 {
		lo = tiltFloor
	}
	hi := tiltCeiling

	rlo := ExpectedWeight(lo, n, pol) - float64(n)
	rhi := ExpectedWeight(hi, n, pol) - float64(n)

	mid := (lo + hi) / 2.0
	for math.Abs(rlo-rhi) > bisectTol && iters < bisectMaxIters {
		mid = (lo + hi) / 2.0
		rm := ExpectedWeight(mid, n, pol) - float64(n)
		if rm < 0 {
			lo, rlo = mid, rm
		} else {
			hi, rhi = mid, rm
		}
		iters++
	}

	return mid, iters, math.Abs(rlo-rhi) <= bisectTol
}

// TiltUnrestricted returns the tilt for the Unrestricted policy without
// bisection: a five-digit table lookup for n < 201, the asymptotic
// 1−π/√(6n) beyond. Valid ONLY for the unrestricted part-size set; the
// samplers take this path automatically when handed
// partition.Unrestricted and fall back to SolveTilt otherwise.
//
// Complexity: O(1).
func TiltUnrestricted(n uint64) float64 {
	if n >= tiltTableMax {
		return 1.0 - math.Pi/math.Sqrt(6.0*float64(n))
	}

	return unrestrictedTilt[n]
}

// resolveTilt settles the tilt for one sampling call, in precedence
// order: manual override, unrestricted fast path, bisection. The
// returned Stats carries the solver diagnostics.
func resolveTilt(pol partition.Policy, target uint64, opts Options) (float64, Stats, error) {
	var st Stats

	if t := opts.TiltOverride; t != 0 {
		if t <= 0 || t >= 1 {
			return 0, st, ErrTiltOutOfRange
		}
		st.Tilt = t
		st.TiltConverged = true

		return t, st, nil
	}

	if _, ok := pol.(partition.Unrestricted); ok {
		x := TiltUnrestricted(target)
		st.Tilt = x
		st.TiltFastPath = true
		st.TiltConverged = true

		return x, st, nil
	}

	x, iters, converged := SolveTilt(target, pol)
	st.Tilt = x
	st.TiltIters = iters
	st.TiltConverged = converged
	if !converged && opts.StrictTilt {
		return 0, st, ErrTiltNotConverged
	}

	return x, st, nil
}
