// Package sampler_test shared helpers.
package sampler_test

import (
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/katalvlaran/ranpart/sampler"
)

// newStream builds a deterministic MT19937-64 source for tests that need
// one continuous stream across many sampling calls (the per-call Seed
// option would restart the stream on every call).
func newStream(seed int64) sampler.Source {
	src := prng.NewMT19937_64()
	src.Seed(uint64(seed))

	return src
}
