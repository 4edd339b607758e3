package player

import (
	"log/slog"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/clock"
	"github.com/san-kum/sortviz/internal/sorting"
)

type Player struct {
	mu       sync.Mutex
	clock    clock.Clock
	renderer Renderer
	log      *slog.Logger
	strict   bool

	rec      *sorting.Recording
	original sorting.Array
	cursor   int
	state    State
	speed    time.Duration

	// timer is the single pending tick; gen invalidates ticks from
	// timers cancelled after they already fired.
	timer clock.Timer
	gen   uint64
}

func New(r Renderer, opts ...Option) *Player {
	if r == nil {
		r = NopRenderer{}
	}
	p := &Player{
		clock:    clock.Real(),
		renderer: r,
		log:      slog.Default(),
		strict:   strictIndicesDefault,
		speed:    DefaultTick,
		state:    Idle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load replaces the active recording and rewinds to its first step.
func (p *Player) Load(rec sorting.Recording) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	r := rec
	p.rec = &r
	p.original = rec.Original.Clone()
	p.cursor = 0
	p.state = Stepping
	p.log.Debug("sequence loaded", "algorithm", rec.Algorithm, "steps", len(rec.Steps), "array", rec.Original.String())
	p.renderer.RenderIdle(p.original.Clone())
}

// Play starts auto-advancing. It is a no-op while playing, once finished,
// or with nothing loaded.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rec == nil {
		p.log.Debug("play ignored: no sequence loaded")
		return
	}
	if p.state == Playing || p.state == Finished {
		return
	}
	p.state = Playing
	p.scheduleLocked()
	p.log.Debug("playing", "cursor", p.cursor, "speed", p.speed)
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauseLocked()
}

func (p *Player) pauseLocked() {
	if p.state != Playing {
		return
	}
	p.cancelLocked()
	p.state = Stepping
	p.log.Debug("paused", "cursor", p.cursor)
}

// Step renders the next step, pausing first if playing. Past the last step
// it reports the finished state once; further calls do nothing.
func (p *Player) Step() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pauseLocked()
	if p.rec == nil {
		p.log.Debug("step ignored: no sequence loaded")
		return
	}
	if p.state == Finished {
		return
	}
	p.state = Stepping
	p.advanceLocked()
}

// Reset stops playback, forgets the sequence and restores the pristine array.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	p.rec = nil
	p.cursor = 0
	p.state = Idle
	p.log.Debug("reset")
	p.renderer.RenderIdle(p.original.Clone())
}

// SetSpeed changes the tick duration. A running timer is replaced at once.
func (p *Player) SetSpeed(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.speed = clampTick(d)
	if p.state == Playing {
		p.scheduleLocked()
	}
	p.log.Debug("speed changed", "tick", p.speed)
}

func (p *Player) State() PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := PlaybackState{
		State:   p.state,
		Cursor:  p.cursor,
		Playing: p.state == Playing,
		Speed:   p.speed,
		Loaded:  p.rec != nil,
	}
	if p.rec != nil {
		st.Length = len(p.rec.Steps)
		st.Algorithm = p.rec.Algorithm
	}
	return st
}

// Clock returns the clock ticks are scheduled on.
func (p *Player) Clock() clock.Clock { return p.clock }

func (p *Player) scheduleLocked() {
	p.cancelLocked()
	gen := p.gen
	p.timer = p.clock.AfterFunc(p.speed, func() { p.tick(gen) })
}

func (p *Player) cancelLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.gen++
}

func (p *Player) tick(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen || p.state != Playing {
		return
	}
	p.timer = nil
	p.advanceLocked()
	if p.state == Playing {
		p.scheduleLocked()
	}
}

func (p *Player) advanceLocked() {
	steps := p.rec.Steps
	if p.cursor >= len(steps) {
		p.finishLocked()
		return
	}
	st := steps[p.cursor]
	if err := sorting.CheckStep(p.cursor, st, len(p.original)); err != nil {
		if p.strict {
			panic(err)
		}
		p.log.Error("skipping invalid step", "err", err)
	} else {
		p.renderer.RenderStep(st)
	}
	p.cursor++
}

func (p *Player) finishLocked() {
	p.cancelLocked()
	p.state = Finished
	p.log.Debug("finished", "algorithm", p.rec.Algorithm, "sorted", p.rec.Sorted.String())
	p.renderer.RenderFinished(p.rec.Sorted.Clone())
}
