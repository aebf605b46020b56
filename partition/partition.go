package partition

import (
	"slices"
	"strconv"
	"strings"
)

// Partition is one integer partition stored as a size→multiplicity map,
// restricted to part sizes drawn from its Policy.
//
// Invariants:
//   - No stored entry has multiplicity zero (Set with count 0 deletes).
//   - Weight() == Σ size·count over all entries, tracked incrementally.
//
// The zero value is not usable; construct with New.
type Partition struct {
	policy Policy
	mult   map[uint64]uint64
	weight uint64
}

// New returns an empty partition bound to the given restriction policy.
// A nil policy defaults to Unrestricted.
//
// Complexity: O(1).
func New(p Policy) *Partition {
	if p == nil {
		p = Unrestricted{}
	}

	return &Partition{
		policy: p,
		mult:   make(map[uint64]uint64),
	}
}

// Policy returns the restriction policy this partition is bound to.
func (p *Partition) Policy() Policy { return p.policy }

// Weight returns the partition's total Σ size·multiplicity.
//
// Complexity: O(1) — the total is maintained by Set.
func (p *Partition) Weight() uint64 { return p.weight }

// Multiplicity returns the stored count for the given part size, or 0 if
// the size is absent.
func (p *Partition) Multiplicity(size uint64) uint64 { return p.mult[size] }

// Set assigns the multiplicity of a part size. A count of 0 removes the
// entry, preserving the no-zero-entries invariant. Sizes outside the
// policy's image are the caller's contract violation, mirroring the
// policy contract itself.
func (p *Partition) Set(size, count uint64) {
	if size == 0 {
		return
	}
	old := p.mult[size]
	p.weight += size * count
	p.weight -= size * old
	if count == 0 {
		delete(p.mult, size)

		return
	}
	p.mult[size] = count
}

// Reset removes every entry, returning the partition to weight 0.
func (p *Partition) Reset() {
	clear(p.mult)
	p.weight = 0
}

// Distinct returns the number of distinct part sizes present.
func (p *Partition) Distinct() int { return len(p.mult) }

// Parts returns the parts of the partition in descending order, each
// size repeated according to its multiplicity. The slice is freshly
// allocated on every call and carries no hidden state.
//
// Asymptotically a uniform partition of n has ~√n·ln(n)/c parts, so the
// expansion is modest relative to n.
//
// Complexity: O(p·log d) for p parts over d distinct sizes.
func (p *Partition) Parts() []uint64 {
	sizes := make([]uint64, 0, len(p.mult))
	for size := range p.mult {
		sizes = append(sizes, size)
	}
	slices.SortFunc(sizes, func(a, b uint64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})

	var parts []uint64
	for _, size := range sizes {
		for c := uint64(0); c < p.mult[size]; c++ {
			parts = append(parts, size)
		}
	}

	return parts
}

// String renders the partition as its descending parts joined by commas,
// e.g. "17,7,4,4,1,1". The empty partition renders as "".
func (p *Partition) String() string {
	parts := p.Parts()
	strs := make([]string, len(parts))
	for i, v := range parts {
		strs[i] = strconv.FormatUint(v, 10)
	}

	return strings.Join(strs, ",")
}
