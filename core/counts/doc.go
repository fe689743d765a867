// Package counts implements the per-printing count algebra.
//
// A Map is a sparse, immutable mapping from printing identifier to the number of
// non-foil and foil copies. Identifiers whose counts are all zero are never
// stored. Maps are produced by a Builder, by Aggregator.Aggregate from input
// rows, or by combining maps with Merge and Diff; every operation returns a new
// Map and leaves its inputs untouched.
//
// Laws:
//
//	Merge(Merge(a, b), c) == Merge(a, Merge(b, c))
//	Merge(a, b) == Merge(b, a)
//	Negate(Diff(a, b)) == Diff(b, a)
//	Diff(a, a) == Map{}
package counts
