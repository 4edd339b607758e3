package player_test

import (
	"io"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/clock"
	"github.com/san-kum/sortviz/internal/clock/clocktest"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/sorting"
)

type spyRenderer struct {
	steps    []sorting.Step
	idle     []sorting.Array
	finished []sorting.Array
}

func (s *spyRenderer) RenderStep(st sorting.Step)     { s.steps = append(s.steps, st) }
func (s *spyRenderer) RenderIdle(a sorting.Array)     { s.idle = append(s.idle, a) }
func (s *spyRenderer) RenderFinished(a sorting.Array) { s.finished = append(s.finished, a) }

const tick = 100 * time.Millisecond

// lateClock models timers that already fired when Stop is called: Stop
// always reports false and every callback stays available to run later.
type lateClock struct {
	callbacks []func()
}

type lateTimer struct{}

func (lateTimer) Stop() bool { return false }

func (c *lateClock) Now() time.Time { return time.Time{} }

func (c *lateClock) AfterFunc(_ time.Duration, f func()) clock.Timer {
	c.callbacks = append(c.callbacks, f)
	return lateTimer{}
}

var _ = Describe("Player", func() {
	var (
		clk *clocktest.Fake
		spy *spyRenderer
		p   *player.Player
		rec sorting.Recording
	)

	BeforeEach(func() {
		clk = clocktest.NewFake()
		spy = &spyRenderer{}
		p = player.New(spy,
			player.WithClock(clk),
			player.WithSpeed(tick),
			player.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		)
		rec = sorting.NewRecording(sorting.Bubble{}, sorting.Array{5, 3, 8, 1})
	})

	expectInvariants := func() {
		st := p.State()
		Expect(st.Cursor).To(BeNumerically(">=", 0))
		Expect(st.Cursor).To(BeNumerically("<=", st.Length))
		if st.Playing {
			Expect(clk.Pending()).To(Equal(1))
		} else {
			Expect(clk.Pending()).To(BeZero())
		}
	}

	Describe("without a sequence", func() {
		It("starts idle", func() {
			st := p.State()
			Expect(st.State).To(Equal(player.Idle))
			Expect(st.Cursor).To(BeZero())
			Expect(st.Playing).To(BeFalse())
			Expect(st.Loaded).To(BeFalse())
		})

		It("treats play and step as no-ops", func() {
			p.Play()
			p.Step()
			Expect(p.State().State).To(Equal(player.Idle))
			Expect(clk.Pending()).To(BeZero())
			Expect(spy.steps).To(BeEmpty())
			Expect(spy.finished).To(BeEmpty())
		})
	})

	Describe("Load", func() {
		It("moves to stepping at cursor zero and shows the original", func() {
			p.Load(rec)
			st := p.State()
			Expect(st.State).To(Equal(player.Stepping))
			Expect(st.Cursor).To(BeZero())
			Expect(st.Length).To(Equal(len(rec.Steps)))
			Expect(st.Algorithm).To(Equal("bubble"))
			Expect(spy.idle).To(Equal([]sorting.Array{{5, 3, 8, 1}}))
		})

		It("cancels a running timer", func() {
			p.Load(rec)
			p.Play()
			p.Load(sorting.NewRecording(sorting.Selection{}, sorting.Array{2, 1}))
			Expect(clk.Pending()).To(BeZero())
			Expect(p.State().State).To(Equal(player.Stepping))
			clk.Advance(10 * tick)
			Expect(spy.steps).To(BeEmpty())
		})
	})

	Describe("Play", func() {
		BeforeEach(func() { p.Load(rec) })

		It("renders one step per tick in order", func() {
			p.Play()
			Expect(p.State().Playing).To(BeTrue())
			clk.Advance(3 * tick)
			Expect(spy.steps).To(Equal([]sorting.Step(rec.Steps[:3])))
			Expect(p.State().Cursor).To(Equal(3))
			expectInvariants()
		})

		It("finishes on the tick after the last step", func() {
			p.Play()
			clk.Advance(time.Duration(len(rec.Steps)) * tick)
			Expect(spy.finished).To(BeEmpty())
			Expect(p.State().State).To(Equal(player.Playing))

			clk.Advance(tick)
			Expect(spy.finished).To(Equal([]sorting.Array{{1, 3, 5, 8}}))
			Expect(p.State().State).To(Equal(player.Finished))
			Expect(clk.Pending()).To(BeZero())
			Expect(spy.steps).To(Equal([]sorting.Step(rec.Steps)))
		})

		It("does not spawn a second timer when called repeatedly", func() {
			p.Play()
			p.Play()
			p.Play()
			Expect(clk.Pending()).To(Equal(1))
			clk.Advance(tick)
			Expect(spy.steps).To(HaveLen(1))
		})

		It("is a no-op once finished", func() {
			for i := 0; i < len(rec.Steps)+1; i++ {
				p.Step()
			}
			p.Play()
			Expect(p.State().State).To(Equal(player.Finished))
			Expect(clk.Pending()).To(BeZero())
		})
	})

	Describe("Pause", func() {
		BeforeEach(func() { p.Load(rec) })

		It("stops rendering immediately and keeps the cursor", func() {
			p.Play()
			clk.Advance(2 * tick)
			p.Pause()
			st := p.State()
			Expect(st.State).To(Equal(player.Stepping))
			Expect(st.Cursor).To(Equal(2))
			clk.Advance(10 * tick)
			Expect(spy.steps).To(HaveLen(2))
			expectInvariants()
		})

		It("resumes from the same cursor", func() {
			p.Play()
			clk.Advance(2 * tick)
			p.Pause()
			p.Play()
			clk.Advance(tick)
			Expect(spy.steps).To(Equal([]sorting.Step(rec.Steps[:3])))
		})

		It("ignores pause when not playing", func() {
			p.Pause()
			Expect(p.State().State).To(Equal(player.Stepping))
		})
	})

	Describe("Step", func() {
		BeforeEach(func() { p.Load(rec) })

		It("reports finished exactly once after length+1 calls", func() {
			n := len(rec.Steps)
			for i := 0; i < n; i++ {
				p.Step()
			}
			Expect(spy.finished).To(BeEmpty())
			Expect(p.State().Cursor).To(Equal(n))

			p.Step()
			Expect(spy.finished).To(HaveLen(1))
			Expect(p.State().State).To(Equal(player.Finished))

			p.Step()
			p.Step()
			Expect(spy.finished).To(HaveLen(1))
			Expect(spy.steps).To(HaveLen(n))
		})

		It("pauses playback first", func() {
			p.Play()
			clk.Advance(tick)
			p.Step()
			st := p.State()
			Expect(st.State).To(Equal(player.Stepping))
			Expect(st.Cursor).To(Equal(2))
			Expect(clk.Pending()).To(BeZero())
			clk.Advance(5 * tick)
			Expect(spy.steps).To(HaveLen(2))
		})

		It("finishes an empty sequence on the first call", func() {
			p.Load(sorting.NewRecording(sorting.Bubble{}, sorting.Array{}))
			p.Step()
			Expect(spy.finished).To(Equal([]sorting.Array{{}}))
			Expect(p.State().State).To(Equal(player.Finished))
		})
	})

	Describe("Reset", func() {
		BeforeEach(func() { p.Load(rec) })

		It("cancels playback, clears the sequence and restores the original", func() {
			p.Play()
			clk.Advance(4 * tick)
			p.Reset()

			st := p.State()
			Expect(st.State).To(Equal(player.Idle))
			Expect(st.Cursor).To(BeZero())
			Expect(st.Loaded).To(BeFalse())
			Expect(clk.Pending()).To(BeZero())
			Expect(spy.idle).To(HaveLen(2))
			Expect(spy.idle[1]).To(Equal(sorting.Array{5, 3, 8, 1}))

			clk.Advance(10 * tick)
			Expect(spy.steps).To(HaveLen(4))
		})

		It("leaves play and step as no-ops afterwards", func() {
			p.Reset()
			p.Play()
			p.Step()
			Expect(p.State().State).To(Equal(player.Idle))
			Expect(spy.steps).To(BeEmpty())
		})
	})

	Describe("SetSpeed", func() {
		BeforeEach(func() { p.Load(rec) })

		It("restarts the running timer at the new speed", func() {
			p.Play()
			clk.Advance(tick / 2)
			p.SetSpeed(3 * tick)
			Expect(clk.Pending()).To(Equal(1))

			clk.Advance(tick)
			Expect(spy.steps).To(BeEmpty())
			clk.Advance(2 * tick)
			Expect(spy.steps).To(HaveLen(1))
			clk.Advance(3 * tick)
			Expect(spy.steps).To(Equal([]sorting.Step(rec.Steps[:2])))
			expectInvariants()
		})

		It("never doubles or skips steps under repeated changes", func() {
			p.Play()
			for i := 0; i < 20; i++ {
				p.SetSpeed(tick + time.Duration(i)*time.Millisecond)
				Expect(clk.Pending()).To(Equal(1))
			}
			clk.Advance(time.Duration(len(rec.Steps)+1) * 2 * tick)
			Expect(spy.steps).To(Equal([]sorting.Step(rec.Steps)))
			Expect(spy.finished).To(HaveLen(1))
		})

		It("clamps non-positive durations", func() {
			p.SetSpeed(0)
			Expect(p.State().Speed).To(Equal(player.MinTick))
			p.SetSpeed(-time.Second)
			Expect(p.State().Speed).To(Equal(player.MinTick))
		})

		It("does not start a timer when not playing", func() {
			p.SetSpeed(2 * tick)
			Expect(clk.Pending()).To(BeZero())
			Expect(p.State().State).To(Equal(player.Stepping))
		})
	})

	Describe("invalid steps", func() {
		var bad sorting.Recording

		BeforeEach(func() {
			bad = sorting.Recording{
				Algorithm: "bubble",
				Original:  sorting.Array{2, 1},
				Sorted:    sorting.Array{1, 2},
				Steps:     sorting.Sequence{sorting.Swap(0, 5), sorting.Swap(0, 1)},
			}
		})

		It("skips them by default", func() {
			p.Load(bad)
			p.Step()
			p.Step()
			Expect(spy.steps).To(ConsistOf(sorting.Swap(0, 1)))
			Expect(p.State().Cursor).To(Equal(2))
		})

		It("panics in strict mode", func() {
			strict := player.New(spy, player.WithClock(clk), player.WithStrictIndices(true),
				player.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
			strict.Load(bad)
			Expect(strict.Step).To(PanicWith(BeAssignableToTypeOf(&sorting.StepError{})))
		})
	})

	Describe("ticks from cancelled timers", func() {
		var (
			late *lateClock
			lp   *player.Player
		)

		BeforeEach(func() {
			late = &lateClock{}
			lp = player.New(spy,
				player.WithClock(late),
				player.WithSpeed(tick),
				player.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
			)
			lp.Load(rec)
		})

		It("drops every tick once paused", func() {
			lp.Play()
			lp.SetSpeed(tick / 2)
			lp.Pause()
			Expect(late.callbacks).To(HaveLen(2))

			for _, f := range late.callbacks {
				f()
			}
			Expect(spy.steps).To(BeEmpty())
			st := lp.State()
			Expect(st.Cursor).To(BeZero())
			Expect(st.State).To(Equal(player.Stepping))
		})

		It("drops the replaced tick but honours the current one", func() {
			lp.Play()
			lp.SetSpeed(tick / 2)
			Expect(late.callbacks).To(HaveLen(2))

			late.callbacks[0]()
			Expect(spy.steps).To(BeEmpty())

			late.callbacks[1]()
			Expect(spy.steps).To(HaveLen(1))
			Expect(lp.State().Cursor).To(Equal(1))
			Expect(late.callbacks).To(HaveLen(3))
		})
	})

	It("keeps its invariants under a random command mix", func() {
		p.Load(rec)
		commands := []func(){
			p.Play, p.Pause, p.Step, p.Play,
			func() { clk.Advance(tick) },
			func() { p.SetSpeed(tick / 2) },
			p.Reset,
			func() { p.Load(rec) },
		}
		for i := 0; i < 400; i++ {
			commands[(i*7+i/3)%len(commands)]()
			expectInvariants()
		}
	})
})
