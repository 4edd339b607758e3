package player

import (
	"log/slog"
	"time"

	"github.com/san-kum/sortviz/internal/clock"
)

type Option func(*Player)

func WithClock(c clock.Clock) Option {
	return func(p *Player) { p.clock = c }
}

func WithSpeed(d time.Duration) Option {
	return func(p *Player) { p.speed = clampTick(d) }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Player) { p.log = l }
}

// WithStrictIndices makes out-of-range steps panic instead of being skipped.
func WithStrictIndices(strict bool) Option {
	return func(p *Player) { p.strict = strict }
}
