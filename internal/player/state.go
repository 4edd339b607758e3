package player

import "time"

type State int

const (
	Idle State = iota
	Stepping
	Playing
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Stepping:
		return "stepping"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// PlaybackState is a snapshot of the player for binding controls.
type PlaybackState struct {
	State     State
	Cursor    int
	Length    int
	Playing   bool
	Speed     time.Duration
	Algorithm string
	Loaded    bool
}

// Progress returns the fraction of steps rendered, in [0,1].
func (s PlaybackState) Progress() float64 {
	if s.Length == 0 {
		if s.State == Finished {
			return 1
		}
		return 0
	}
	return float64(s.Cursor) / float64(s.Length)
}
