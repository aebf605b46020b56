// Package ranpart is a small library for generating random integer
// partitions — representations of a non-negative integer as an unordered
// sum of positive integers — optionally restricted to parts drawn from a
// strictly increasing (possibly infinite) set of allowed sizes.
//
// 🚀 What does ranpart offer?
//
//	A compact, deterministic, research-grade sampling toolkit:
//		• Restriction policies: unrestricted, even, odd, triangular,
//		  residue classes J mod M, bounded parts, custom functions
//		• Fristedt's method: partitions of random size with a chosen
//		  expected weight, via independently tilted geometric counts
//		• Rejection sampling: exactly uniform partitions of an exact size
//		• PDC deterministic second half: the same uniform law with far
//		  fewer retries, rejecting only on the smallest allowed part
//		• A tilt solver: table + asymptotic fast path for the
//		  unrestricted case, bisection for every restriction
//
// ✨ Why choose ranpart?
//
//   - Deterministic – explicit seeds and injectable random sources,
//     no hidden time-based state
//   - Honest diagnostics – solver iterations, convergence and retry
//     counts are returned, never logged
//   - Pure Go – no cgo; the only runtime dependency is gonum's PRNG
//
// Everything is organized under two subpackages:
//
//	partition/ — restriction policies, the multiplicity-map Partition
//	             value, weights, ordered part lists, Ferrers diagrams
//	sampler/   — the tilt solver and the three generation algorithms,
//	             plus the recommended Sample entry point
//
// Quick ASCII example, one partition of 12 into odd parts:
//
//	5 = * * * * *
//	5 = * * * * *
//	1 = *
//	1 = *
//
// Start with sampler.Sample and partition.Unrestricted, then dive into
// the package docs for restriction policies and algorithm trade-offs.
//
//	go get github.com/katalvlaran/ranpart
package ranpart
