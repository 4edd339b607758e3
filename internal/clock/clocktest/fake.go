// Package clocktest provides a deterministic clock for tests.
package clocktest

import (
	"sort"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/clock"
)

// Fake is a manually advanced clock.Clock. Callbacks run synchronously on
// the goroutine calling Advance, in deadline order.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer

	// Scheduled counts every AfterFunc call.
	Scheduled int
}

type fakeTimer struct {
	fake     *Fake
	deadline time.Time
	seq      int
	f        func()
	stopped  bool
	fired    bool
}

var _ clock.Clock = (*Fake)(nil)

// NewFake returns a Fake starting at a fixed instant.
func NewFake() *Fake {
	return &Fake{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) clock.Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	f.Scheduled++
	t := &fakeTimer{fake: f, deadline: f.now.Add(d), seq: f.seq, f: fn}
	f.timers = append(f.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.fake.mu.Lock()
	defer t.fake.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.fake.removeLocked(t)
	return true
}

func (f *Fake) removeLocked(t *fakeTimer) {
	for i, ft := range f.timers {
		if ft == t {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			return
		}
	}
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

// Advance moves time forward by d, firing every timer due on the way,
// including timers scheduled by callbacks that fall inside the window.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		sort.SliceStable(f.timers, func(i, j int) bool {
			if f.timers[i].deadline.Equal(f.timers[j].deadline) {
				return f.timers[i].seq < f.timers[j].seq
			}
			return f.timers[i].deadline.Before(f.timers[j].deadline)
		})
		if len(f.timers) == 0 || f.timers[0].deadline.After(target) {
			f.now = target
			f.mu.Unlock()
			return
		}
		t := f.timers[0]
		f.timers = f.timers[1:]
		t.fired = true
		if t.deadline.After(f.now) {
			f.now = t.deadline
		}
		f.mu.Unlock()

		t.f()
	}
}

// Fire runs the earliest pending timer regardless of its deadline and
// reports whether one existed.
func (f *Fake) Fire() bool {
	f.mu.Lock()
	if len(f.timers) == 0 {
		f.mu.Unlock()
		return false
	}
	sort.SliceStable(f.timers, func(i, j int) bool {
		return f.timers[i].deadline.Before(f.timers[j].deadline)
	})
	t := f.timers[0]
	f.timers = f.timers[1:]
	t.fired = true
	if t.deadline.After(f.now) {
		f.now = t.deadline
	}
	f.mu.Unlock()

	t.f()
	return true
}
