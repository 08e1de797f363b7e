package playback

import (
	"fmt"
	"time"

	"github.com/katalvlaran/stepgraph/trace"
)

// State is the position of a Player in its life cycle.
//
//	Idle ──Load──► Ready ──Play──► Playing ──Pause──► Paused
//	                 │                │                  │
//	                 └─────Step───────┴──────Step────────┘
//	                                  │
//	                      cursor == total ──► Finished
type State int

const (
	// StateIdle holds no trace.
	StateIdle State = iota
	// StateReady holds a trace with the cursor at 0.
	StateReady
	// StatePlaying advances on scheduled ticks.
	StatePlaying
	// StatePaused waits for Play or Step.
	StatePaused
	// StateFinished has replayed every step.
	StateFinished
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// MarshalText encodes s by name, so Status reads well as JSON.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Speed bounds and defaults.
const (
	MinSpeed     = 1
	MaxSpeed     = 10
	DefaultSpeed = 5

	// DefaultBaseDelay is the tick delay at MaxSpeed.
	DefaultBaseDelay = 100 * time.Millisecond
)

// ClampSpeed maps n into [MinSpeed, MaxSpeed].
func ClampSpeed(n int) int {
	switch {
	case n < MinSpeed:
		return MinSpeed
	case n > MaxSpeed:
		return MaxSpeed
	default:
		return n
	}
}

// Delay returns the inter-step delay for speed: base*(11-speed), so speed 1
// waits ten times longer than speed 10.
func Delay(base time.Duration, speed int) time.Duration {
	return base * time.Duration(MaxSpeed+1-ClampSpeed(speed))
}

// Status is the read-only progress view of a Player.
type Status struct {
	ID     string `json:"id"`
	State  State  `json:"state"`
	Cursor int    `json:"cursor"`
	Total  int    `json:"total"`
	Speed  int    `json:"speed"`
}

// Frame is what a Player hands its listeners after every transition.
// Step is the step applied by the transition, nil for Load, Reset, Pause and
// speed changes.
type Frame struct {
	Status  Status        `json:"status"`
	Overlay trace.Overlay `json:"overlay"`
	Step    *trace.Step   `json:"step,omitempty"`
}

// Timer is a pending scheduled call.
type Timer interface {
	// Stop cancels the call; it reports false if the call already fired.
	Stop() bool
}

// Scheduler runs f once after d. The default uses time.AfterFunc; tests
// inject a manual one.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
