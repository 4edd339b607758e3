// Package session binds user-facing controls to a player.
//
// A Session owns the current array and algorithm, records a sequence when
// transport is first used, and enforces the rules the UI relies on: switching
// algorithms stops playback before anything new is recorded, and rapid
// play/pause toggles are debounced.
//
// Sessions are NOT safe for concurrent use; drive one from a single UI goroutine.
package session

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/sorting"
)

// DefaultDebounce matches the click debounce of the play/pause control.
const DefaultDebounce = 180 * time.Millisecond

type Session struct {
	player     *player.Player
	alg        sorting.Algorithm
	array      sorting.Array
	bounds     sorting.Bounds
	rng        *rand.Rand
	log        *slog.Logger
	debounce   time.Duration
	lastToggle time.Time
	multiplier int
}

type Option func(*Session)

func WithBounds(b sorting.Bounds) Option {
	return func(s *Session) { s.bounds = b }
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

func WithDebounce(d time.Duration) Option {
	return func(s *Session) { s.debounce = d }
}

// New creates a session and loads a recording of arr so the first frame
// shows the array.
func New(p *player.Player, alg sorting.Algorithm, arr sorting.Array, opts ...Option) *Session {
	s := &Session{
		player:   p,
		alg:      alg,
		array:    arr.Clone(),
		bounds:   sorting.DefaultBounds(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      slog.Default(),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.multiplier = player.MultiplierFor(p.State().Speed)
	s.prepare()
	return s
}

func (s *Session) Player() *player.Player       { return s.player }
func (s *Session) Algorithm() sorting.Algorithm { return s.alg }
func (s *Session) Array() sorting.Array         { return s.array.Clone() }
func (s *Session) Bounds() sorting.Bounds       { return s.bounds }
func (s *Session) State() player.PlaybackState  { return s.player.State() }
func (s *Session) Multiplier() int              { return s.multiplier }

// Recording returns the recording of the current array and algorithm.
func (s *Session) Recording() sorting.Recording {
	return sorting.NewRecording(s.alg, s.array)
}

// SetAlgorithm switches algorithms. Playback is paused before the player is
// reset, so no step of the old sequence reaches the fresh display.
func (s *Session) SetAlgorithm(alg sorting.Algorithm) {
	if alg == nil || alg.Name() == s.alg.Name() {
		return
	}
	if s.player.State().Playing {
		s.player.Pause()
	}
	s.alg = alg
	s.player.Reset()
	s.log.Info("algorithm selected", "algorithm", alg.Name())
}

// NextAlgorithm cycles to the next supported algorithm.
func (s *Session) NextAlgorithm() {
	s.SetAlgorithm(sorting.Next(s.alg))
}

// SetArray replaces the array and loads a fresh recording of it.
func (s *Session) SetArray(arr sorting.Array) error {
	if err := s.bounds.Check(arr); err != nil {
		return err
	}
	s.array = arr.Clone()
	s.prepare()
	return nil
}

// LoadText parses comma-separated values. When nothing usable remains the
// current array is kept and ok is false.
func (s *Session) LoadText(text string) (notice input.Notice, ok bool) {
	arr, notice, ok := input.Parse(text, s.bounds)
	if !ok {
		s.log.Warn("array input ignored", "text", text)
		return notice, false
	}
	if !notice.Empty() {
		s.log.Info("array input repaired", "notice", notice.String())
	}
	if err := s.SetArray(arr); err != nil {
		s.log.Error("parsed array rejected", "err", err)
		return notice, false
	}
	return notice, true
}

// Generate loads a random array of length n.
func (s *Session) Generate(n int) {
	arr := input.Random(s.rng, n, s.bounds)
	if err := s.SetArray(arr); err != nil {
		s.log.Error("generated array rejected", "err", err)
	}
}

// Play records the current array first when nothing is loaded.
func (s *Session) Play() {
	if !s.player.State().Loaded {
		s.prepare()
	}
	s.player.Play()
}

func (s *Session) Pause() { s.player.Pause() }

// Step records the current array first when nothing is loaded.
func (s *Session) Step() {
	if !s.player.State().Loaded {
		s.prepare()
	}
	s.player.Step()
}

func (s *Session) Reset() { s.player.Reset() }

// Toggle plays or pauses. Toggles arriving within the debounce window of
// the previous accepted one are dropped; the result reports acceptance.
func (s *Session) Toggle() bool {
	now := s.player.Clock().Now()
	if !s.lastToggle.IsZero() && now.Sub(s.lastToggle) < s.debounce {
		s.log.Debug("toggle debounced")
		return false
	}
	s.lastToggle = now
	if s.player.State().Playing {
		s.Pause()
	} else {
		s.Play()
	}
	return true
}

// SetSpeed applies a 1x..4x multiplier.
func (s *Session) SetSpeed(multiplier int) {
	if multiplier < player.MinMultiplier {
		multiplier = player.MinMultiplier
	}
	if multiplier > player.MaxMultiplier {
		multiplier = player.MaxMultiplier
	}
	s.multiplier = multiplier
	s.player.SetSpeed(player.TickFor(multiplier))
}

func (s *Session) Faster() { s.SetSpeed(s.multiplier + 1) }
func (s *Session) Slower() { s.SetSpeed(s.multiplier - 1) }

func (s *Session) prepare() {
	rec := sorting.NewRecording(s.alg, s.array)
	s.player.Load(rec)
}
