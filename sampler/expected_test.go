package sampler_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ranpart/partition"
	"github.com/katalvlaran/ranpart/sampler"
)

// TestExpectedSize_ZeroTarget verifies the zero case: an empty partition
// for every policy, no draws, no error.
func TestExpectedSize_ZeroTarget(t *testing.T) {
	pols := []partition.Policy{
		partition.Unrestricted{},
		partition.Even{},
		partition.Triangular{},
		partition.MaxPart{Limit: 10},
	}

	for _, pol := range pols {
		p, st, err := sampler.ExpectedSize(pol, 0, sampler.DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, uint64(0), p.Weight())
		assert.Equal(t, 0, p.Distinct())
		assert.Equal(t, uint64(0), st.Attempts, "zero target must not consume an attempt")
	}
}

// TestExpectedSize_SeedDeterminism verifies that identical options give
// identical partitions, and that distinct seeds diverge.
func TestExpectedSize_SeedDeterminism(t *testing.T) {
	opts := sampler.DefaultOptions()
	opts.Seed = 42

	a, _, err := sampler.ExpectedSize(partition.Unrestricted{}, 200, opts)
	require.NoError(t, err)
	b, _, err := sampler.ExpectedSize(partition.Unrestricted{}, 200, opts)
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String(), "same seed must reproduce the same partition")

	opts.Seed = 43
	c, _, err := sampler.ExpectedSize(partition.Unrestricted{}, 200, opts)
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String(), "different seeds should diverge")
}

// TestExpectedSize_RestrictionMembership verifies that every stored size
// lies in the policy's image.
func TestExpectedSize_RestrictionMembership(t *testing.T) {
	cases := []struct {
		name string
		pol  partition.Policy
		ok   func(size uint64) bool
	}{
		{"even", partition.Even{}, func(s uint64) bool { return s%2 == 0 }},
		{"odd", partition.Odd{}, func(s uint64) bool { return s%2 == 1 }},
		{"max part 10", partition.MaxPart{Limit: 10}, func(s uint64) bool { return s <= 10 }},
		{"residue 5 mod 7", partition.Residue{J: 5, M: 7}, func(s uint64) bool { return s%7 == 5 }},
		{"min part 4", partition.MinPart{Min: 4}, func(s uint64) bool { return s >= 4 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := sampler.DefaultOptions()
			var seed int64
			for seed = 1; seed <= 25; seed++ {
				opts.Seed = seed
				p, _, err := sampler.ExpectedSize(tc.pol, 150, opts)
				require.NoError(t, err)

				for _, part := range p.Parts() {
					assert.True(t, tc.ok(part), "part %d violates the %s restriction", part, tc.name)
				}
			}
		})
	}
}

// TestExpectedSize_WeightCentersOnTarget verifies Fristedt's defining
// property: the mean weight over many draws approaches the target.
func TestExpectedSize_WeightCentersOnTarget(t *testing.T) {
	const (
		target = 100
		trials = 4000
	)

	opts := sampler.DefaultOptions()
	opts.Seed = 7

	var sum float64
	rng := rand.New(rand.NewSource(7))
	opts.Rand = rng // one continuous stream across all trials
	for i := 0; i < trials; i++ {
		p, _, err := sampler.ExpectedSize(partition.Unrestricted{}, target, opts)
		require.NoError(t, err)
		sum += float64(p.Weight())
	}

	mean := sum / trials
	// The weight's standard deviation is O(n^{ 3/4 }); with 4000 trials
	// the sample mean should sit well within ±5 of the target.
	assert.InDelta(t, float64(target), mean, 5.0)
}

// TestExpectedSize_TiltOverrideVerbatim verifies that a manual tilt
// bypasses both solver paths and is used exactly as given.
func TestExpectedSize_TiltOverrideVerbatim(t *testing.T) {
	opts := sampler.DefaultOptions()
	opts.TiltOverride = 0.8

	_, st, err := sampler.ExpectedSize(partition.Unrestricted{}, 100, opts)
	require.NoError(t, err)

	assert.Equal(t, 0.8, st.Tilt, "override must be used verbatim")
	assert.Zero(t, st.TiltIters, "override must not invoke the bisection solver")
	assert.False(t, st.TiltFastPath, "override must not invoke the fast path")
	assert.True(t, st.TiltConverged)
}

// TestExpectedSize_TiltOverrideOutOfRange verifies the (0,1) guard.
func TestExpectedSize_TiltOverrideOutOfRange(t *testing.T) {
	for _, bad := range []float64{-0.5, 1.0, 1.5} {
		opts := sampler.DefaultOptions()
		opts.TiltOverride = bad

		_, _, err := sampler.ExpectedSize(partition.Unrestricted{}, 100, opts)
		assert.ErrorIs(t, err, sampler.ErrTiltOutOfRange, "override %v must be rejected", bad)
	}
}

// TestExpectedSize_InfeasibleTarget verifies the cheap feasibility guard:
// smallest allowed part above the target, or an empty policy.
func TestExpectedSize_InfeasibleTarget(t *testing.T) {
	// Parts ≥ 10 can never sum to 5.
	_, _, err := sampler.ExpectedSize(partition.MinPart{Min: 10}, 5, sampler.DefaultOptions())
	assert.ErrorIs(t, err, sampler.ErrInfeasibleTarget)

	// A policy with no sizes at all.
	empty := partition.PolicyFunc(func(uint64) uint64 { return 0 })
	_, _, err = sampler.ExpectedSize(empty, 5, sampler.DefaultOptions())
	assert.ErrorIs(t, err, sampler.ErrInfeasibleTarget)
}

// TestExpectedSize_FastPathUnrestricted verifies the explicit tilt-path
// routing: Unrestricted takes the table/asymptotic path, others bisect.
func TestExpectedSize_FastPathUnrestricted(t *testing.T) {
	_, st, err := sampler.ExpectedSize(partition.Unrestricted{}, 100, sampler.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, st.TiltFastPath)
	assert.Zero(t, st.TiltIters)

	_, st, err = sampler.ExpectedSize(partition.Odd{}, 100, sampler.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, st.TiltFastPath)
	assert.Positive(t, st.TiltIters, "restricted policies must go through bisection")
}
