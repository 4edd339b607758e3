//go:build !sortviz_strict

package player

const strictIndicesDefault = false
