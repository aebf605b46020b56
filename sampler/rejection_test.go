package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ranpart/partition"
	"github.com/katalvlaran/ranpart/sampler"
)

// TestRejection_ExactWeight verifies the exactness contract over several
// policies and feasible targets.
func TestRejection_ExactWeight(t *testing.T) {
	cases := []struct {
		name   string
		pol    partition.Policy
		target uint64
	}{
		{"unrestricted 50", partition.Unrestricted{}, 50},
		{"even 60", partition.Even{}, 60},
		{"odd 51", partition.Odd{}, 51},
		{"triangular 40", partition.Triangular{}, 40},
		{"max part 10, 45", partition.MaxPart{Limit: 10}, 45},
		{"min part 4, 30", partition.MinPart{Min: 4}, 30},
		{"residue 5 mod 7, 55", partition.Residue{J: 5, M: 7}, 55},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := sampler.DefaultOptions()
			var seed int64
			for seed = 1; seed <= 10; seed++ {
				opts.Seed = seed
				p, st, err := sampler.Rejection(tc.pol, tc.target, opts)

				require.NoError(t, err)
				assert.Equal(t, tc.target, p.Weight(), "weight must equal the target exactly")
				assert.Positive(t, st.Attempts, "at least one attempt must be recorded")
			}
		})
	}
}

// TestRejection_ZeroTarget verifies the zero case.
func TestRejection_ZeroTarget(t *testing.T) {
	p, st, err := sampler.Rejection(partition.Odd{}, 0, sampler.DefaultOptions())

	require.NoError(t, err)
	assert.Equal(t, uint64(0), p.Weight())
	assert.Equal(t, 0, p.Distinct())
	assert.Equal(t, uint64(0), st.Attempts)
}

// TestRejection_AttemptBudget verifies ErrAttemptsExceeded on a target no
// attempt can ever hit: even parts can never sum to an odd number, which
// slips past the cheap feasibility guard by construction.
func TestRejection_AttemptBudget(t *testing.T) {
	opts := sampler.DefaultOptions()
	opts.MaxAttempts = 64

	_, st, err := sampler.Rejection(partition.Even{}, 7, opts)

	assert.ErrorIs(t, err, sampler.ErrAttemptsExceeded)
	assert.Equal(t, uint64(64), st.Attempts, "the full budget must be consumed and reported")
}

// TestRejection_Infeasible verifies the guard shared with ExpectedSize.
func TestRejection_Infeasible(t *testing.T) {
	_, _, err := sampler.Rejection(partition.MinPart{Min: 10}, 9, sampler.DefaultOptions())
	assert.ErrorIs(t, err, sampler.ErrInfeasibleTarget)
}
