// Package sorting records the execution of comparison sorts as replayable steps.
//
// The package defines the data model shared by every other part of sortviz:
//
//   - [Value] and [Array]: bounded integer magnitudes and the snapshots built from them
//   - [Step]: one visualization event (marker, comparison or swap)
//   - [Sequence]: the ordered, immutable output of a recording
//   - [Algorithm]: a sort that knows how to narrate itself ([Bubble], [Selection])
//   - [Recording]: input, output and steps of one run, ready for playback
//
// # Example
//
//	steps, sorted := sorting.Record(sorting.Bubble{}, sorting.Array{5, 3, 8, 1})
//	rec := sorting.NewRecording(sorting.Selection{}, sorting.Array{2, 2, 2})
//
// # Purity
//
// [Record] never mutates its input and always yields the same sequence for
// equal arrays, so recordings can be regenerated instead of stored.
package sorting
