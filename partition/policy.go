package partition

// Policy enumerates the admissible part sizes of a restricted partition
// as a strictly increasing sequence, addressed by 1-based index.
//
// Contract:
//   - Part(1) < Part(2) < Part(3) < … over all nonzero outputs.
//   - A return of 0 is a sentinel meaning "no further allowed sizes";
//     every larger index must also yield 0.
//
// Policies are stateless and shared read-only across sampling calls.
type Policy interface {
	// Part returns the i-th allowed part size, or 0 past the end of a
	// finite sequence. Indexing is 1-based; Part(0) is never queried.
	Part(i uint64) uint64
}

// PolicyFunc adapts an ordinary function to the Policy interface, for
// one-off restriction sets such as perfect cubes:
//
//	cubes := partition.PolicyFunc(func(i uint64) uint64 { return i * i * i })
type PolicyFunc func(i uint64) uint64

// Part implements Policy.
func (f PolicyFunc) Part(i uint64) uint64 { return f(i) }

// Unrestricted admits every positive integer: u(i) = i.
type Unrestricted struct{}

// Part implements Policy.
func (Unrestricted) Part(i uint64) uint64 { return i }

// Even admits only even parts: u(i) = 2i.
type Even struct{}

// Part implements Policy.
func (Even) Part(i uint64) uint64 { return 2 * i }

// Odd admits only odd parts: u(i) = 2i−1.
type Odd struct{}

// Part implements Policy.
func (Odd) Part(i uint64) uint64 { return 2*i - 1 }

// Triangular admits the triangular numbers: u(i) = i(i+1)/2.
type Triangular struct{}

// Part implements Policy.
func (Triangular) Part(i uint64) uint64 { return i * (i + 1) / 2 }

// Residue admits the arithmetic progression u(i) = M·(i−1)+J, i.e. all
// part sizes congruent to J modulo M. J must satisfy 1 ≤ J ≤ M for the
// sequence to be strictly increasing and positive.
type Residue struct {
	J uint64 // least admissible size (the residue)
	M uint64 // modulus (common difference)
}

// Part implements Policy.
func (r Residue) Part(i uint64) uint64 { return r.M*(i-1) + r.J }

// MaxPart admits all sizes up to and including Limit: u(i) = i for
// i ≤ Limit, then the 0 sentinel. The allowed set is finite.
type MaxPart struct {
	Limit uint64 // largest admissible part size
}

// Part implements Policy.
func (m MaxPart) Part(i uint64) uint64 {
	if i > m.Limit {
		return 0
	}

	return i
}

// MinPart admits all sizes from Min upward: u(i) = i + Min − 1.
type MinPart struct {
	Min uint64 // smallest admissible part size
}

// Part implements Policy.
func (m MinPart) Part(i uint64) uint64 { return i + m.Min - 1 }
