// Package partition defines the data model for restricted integer
// partitions: the restriction Policy describing which part sizes are
// admissible, and the Partition value holding one multiset of parts as a
// size→multiplicity map.
//
// # Restriction policies
//
// A Policy enumerates the allowed part sizes as a strictly increasing
// sequence u(1) < u(2) < u(3) < …, addressed by 1-based index. Returning
// 0 marks the end of a finite sequence; every index past the first 0 must
// also yield 0. The strict-increase contract is the caller's obligation —
// it is documented, not enforced, exactly like a comparator contract.
//
// Canonical policies:
//
//	Unrestricted  — u(i) = i            (all positive integers)
//	Even          — u(i) = 2i           (even parts only)
//	Odd           — u(i) = 2i−1         (odd parts only)
//	Triangular    — u(i) = i(i+1)/2     (triangular numbers)
//	Residue{J,M}  — u(i) = M(i−1)+J     (parts ≡ J mod M)
//	MaxPart{L}    — u(i) = i for i ≤ L  (parts no larger than L)
//	MinPart{Min}  — u(i) = i+Min−1      (parts no smaller than Min)
//	PolicyFunc    — any custom sequence, e.g. perfect cubes
//
// # Partition values
//
// A Partition stores multiplicities for its distinct part sizes and keeps
// its total weight Σ size·count incrementally, so Weight is O(1). Parts
// returns the classical descending expansion (each size repeated per its
// multiplicity); String renders it as a comma list and WriteFerrers draws
// the Ferrers diagram.
//
// Partition values are not safe for concurrent mutation; each sampling
// call in the sampler package builds and returns a fresh instance, so no
// sharing arises unless the caller introduces it.
package partition
