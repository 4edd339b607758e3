// Package analysis provides order statistics for arrays and recordings.
//
// The package includes tools for characterizing sorting runs:
//
//   - [Inversions]: number of out-of-order pairs, equal to the adjacent swaps bubble sort performs
//   - [IsSorted]: non-decreasing check
//   - [SamePermutation]: multiset equality between input and output
//   - [Check]: all recorder properties for one recording at once
//
// # Property Checks
//
// A recording is sound when its replayed result matches its sorted output:
//
//	if err := analysis.Check(rec); err != nil {
//	    // recorder contract violated
//	}
package analysis
