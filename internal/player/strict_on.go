//go:build sortviz_strict

package player

// Development builds panic on steps that address positions outside the array.
const strictIndicesDefault = true
