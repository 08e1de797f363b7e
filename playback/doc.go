// Package playback implements the animation state machine that replays a
// recorded trace.
//
// A Player moves through Idle → Ready → {Playing, Paused} → Finished.
// Load, Play, Pause, Step, Reset and SetSpeed are synchronous; only Play
// schedules further advances, through a Scheduler that defaults to
// time.AfterFunc. The inter-step delay is BaseDelay*(11-speed).
//
// Determinism: the overlay after n advances equals trace.Replay(steps, n)
// whatever the cadence, so stepping a trace to the end and playing it to the
// end produce the same final overlay.
package playback
