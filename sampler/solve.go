package sampler

import "github.com/katalvlaran/ranpart/partition"

// Sample returns an exactly uniform random partition of the target
// weight under the given restriction policy. This is the recommended
// default entry point.
//
// It currently delegates to PDC, the fastest correct method implemented,
// and may be re-pointed at a better algorithm in a future release
// without any caller-side change. Callers that want algorithm stability
// rather than best-available performance should call ExpectedSize,
// Rejection, or PDC directly.
//
// A nil policy defaults to partition.Unrestricted.
func Sample(pol partition.Policy, target uint64, opts Options) (*partition.Partition, Stats, error) {
	return PDC(pol, target, opts)
}
