// Package player drives a cursor through a recorded step sequence.
//
// A [Player] owns the playback state of exactly one [sorting.Recording] and
// renders one step per timer tick or per manual [Player.Step]:
//
//	Idle ──Load──▶ Stepping ──Play──▶ Playing ──tick at end──▶ Finished
//	                  ▲                  │
//	                  └──────Pause───────┘
//
// [Player.Reset] returns to Idle from anywhere and [Player.Load] replaces the
// recording from anywhere.
//
// # Timing
//
// Ticks are scheduled on an injected [clock.Clock]. At most one timer is
// pending at any time and a tick from a cancelled timer is discarded, so
// Pause and Reset are immediate even when the timer has already fired.
//
// # Thread Safety
//
// All methods are safe for concurrent use. Renderer callbacks run while the
// player lock is held and must not call back into the Player.
package player
