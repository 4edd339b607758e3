package player

import (
	"math"
	"time"
)

const (
	// MinTick is the floor applied to any requested tick duration.
	MinTick = 10 * time.Millisecond

	SlowestTick   = 1600 * time.Millisecond
	FastestTick   = 400 * time.Millisecond
	MinMultiplier = 1
	MaxMultiplier = 4

	DefaultTick = FastestTick
)

// TickFor maps a speed multiplier to a tick duration: 1x is SlowestTick and
// each step up divides it, so 4x is FastestTick.
func TickFor(multiplier int) time.Duration {
	if multiplier < MinMultiplier {
		multiplier = MinMultiplier
	}
	if multiplier > MaxMultiplier {
		multiplier = MaxMultiplier
	}
	return SlowestTick / time.Duration(multiplier)
}

// MultiplierFor is the inverse of TickFor, rounded to the nearest level.
func MultiplierFor(d time.Duration) int {
	if d <= 0 {
		return MaxMultiplier
	}
	m := int(math.Round(float64(SlowestTick) / float64(d)))
	if m < MinMultiplier {
		return MinMultiplier
	}
	if m > MaxMultiplier {
		return MaxMultiplier
	}
	return m
}

func clampTick(d time.Duration) time.Duration {
	if d < MinTick {
		return MinTick
	}
	return d
}
