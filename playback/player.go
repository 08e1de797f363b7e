package playback

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepgraph/trace"
)

// Option configures a Player.
type Option func(*Player)

// WithScheduler replaces the time.AfterFunc scheduler.
func WithScheduler(s Scheduler) Option {
	return func(p *Player) {
		if s != nil {
			p.sched = s
		}
	}
}

// WithBaseDelay sets the delay at MaxSpeed. Non-positive values are ignored.
func WithBaseDelay(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.base = d
		}
	}
}

// WithSpeed sets the initial speed, clamped to [MinSpeed, MaxSpeed].
func WithSpeed(n int) Option {
	return func(p *Player) { p.speed = ClampSpeed(n) }
}

// WithLogger sets the logger used for transition debug logs.
func WithLogger(l *slog.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

// WithListener registers fn to receive a Frame after every transition.
// Listeners run under the player lock and must not call back into the Player.
func WithListener(fn func(Frame)) Option {
	return func(p *Player) {
		if fn != nil {
			p.listeners = append(p.listeners, fn)
		}
	}
}

// Player replays a recorded trace one step at a time, either on demand
// (Step) or on a timer (Play).
//
// Cancellation uses a generation counter: every scheduled tick remembers the
// generation it was scheduled in, and Pause, Reset, Load and Step bump the
// generation before stopping the timer. A tick that already fired but lost
// the race for the lock sees a stale generation and returns without touching
// state, so cancellation always wins.
//
// Player is safe for concurrent use.
type Player struct {
	mu sync.Mutex

	sched     Scheduler
	base      time.Duration
	log       *slog.Logger
	listeners []func(Frame)

	id      string
	steps   []trace.Step
	cursor  int
	state   State
	speed   int
	overlay trace.Overlay

	gen   uint64
	timer Timer
}

// New returns an Idle Player.
func New(opts ...Option) *Player {
	p := &Player{
		sched: clockScheduler{},
		base:  DefaultBaseDelay,
		log:   slog.Default(),
		speed: DefaultSpeed,
		state: StateIdle,
	}
	p.overlay.Clear()
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With(slog.String("component", "playback"))

	return p
}

// Load replaces the trace from any state. A pending tick is cancelled, the
// cursor returns to 0 and the overlay is cleared. Every Load starts a new
// animation with a fresh ID.
func (p *Player) Load(steps []trace.Step) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	p.id = uuid.NewString()
	p.steps = slices.Clone(steps)
	p.cursor = 0
	p.overlay.Clear()
	p.setStateLocked(StateReady)
	p.log.Debug("trace loaded", "animation", p.id, "steps", len(p.steps))
	p.notifyLocked(nil)
}

// Unload drops the trace and returns to Idle, cancelling any pending tick.
// A session calls it when the graph the trace was recorded on is replaced.
func (p *Player) Unload() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	p.steps = nil
	p.cursor = 0
	p.overlay.Clear()
	p.setStateLocked(StateIdle)
	p.notifyLocked(nil)
}

// Play starts autonomous advancing from Ready or Paused. It reports whether
// playback started; it is a no-op on an empty trace or at the end.
func (p *Player) Play() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateReady && p.state != StatePaused {
		return false
	}
	if p.cursor >= len(p.steps) {
		return false
	}
	p.setStateLocked(StatePlaying)
	p.scheduleLocked()
	p.notifyLocked(nil)

	return true
}

// Pause stops autonomous advancing. Only Playing can pause.
func (p *Player) Pause() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StatePlaying {
		return false
	}
	p.cancelLocked()
	p.setStateLocked(StatePaused)
	p.notifyLocked(nil)

	return true
}

// Step advances exactly one step from Ready, Paused or Playing (which first
// pauses) and leaves the Player Paused, or Finished at the end of the trace.
// It is a no-op in Idle and Finished.
func (p *Player) Step() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case StateReady, StatePaused, StatePlaying:
	default:
		return false
	}
	p.cancelLocked()
	p.advanceLocked(StatePaused)

	return true
}

// Reset cancels any pending tick and rewinds to cursor 0 with a cleared
// overlay. With a trace loaded the Player is Ready afterwards; an Idle
// Player has nothing to be ready with and stays Idle.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	p.cursor = 0
	p.overlay.Clear()
	if p.state != StateIdle {
		p.setStateLocked(StateReady)
	}
	p.notifyLocked(nil)
}

// SetSpeed sets the speed, clamping n to [MinSpeed, MaxSpeed], and returns
// the applied value. A running animation picks it up on its next tick.
func (p *Player) SetSpeed(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.speed = ClampSpeed(n)
	p.notifyLocked(nil)

	return p.speed
}

// Status returns the current progress.
func (p *Player) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.statusLocked()
}

// Overlay returns a copy of the overlay derived from the replayed prefix.
func (p *Player) Overlay() trace.Overlay {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.overlay.Clone()
}

// Steps returns a copy of the loaded trace.
func (p *Player) Steps() []trace.Step {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.steps)
}

// Close cancels any pending tick. The Player stays usable.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	if p.state == StatePlaying {
		p.setStateLocked(StatePaused)
	}
}

// tick is the scheduled callback.
func (p *Player) tick(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen || p.state != StatePlaying {
		p.log.Debug("stale tick dropped", "animation", p.id, "tick_gen", gen, "gen", p.gen)
		return
	}
	p.timer = nil
	p.advanceLocked(StatePlaying)
	if p.state == StatePlaying {
		p.scheduleLocked()
	}
}

// advanceLocked applies the step under the cursor and moves to next, or to
// Finished when the cursor reaches the end.
func (p *Player) advanceLocked(next State) {
	if p.cursor >= len(p.steps) {
		p.setStateLocked(StateFinished)
		p.notifyLocked(nil)
		return
	}
	s := p.steps[p.cursor]
	p.overlay.Apply(s)
	p.cursor++
	if p.cursor == len(p.steps) {
		next = StateFinished
	}
	p.setStateLocked(next)
	p.notifyLocked(&s)
}

func (p *Player) scheduleLocked() {
	gen := p.gen
	p.timer = p.sched.AfterFunc(Delay(p.base, p.speed), func() { p.tick(gen) })
}

func (p *Player) cancelLocked() {
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Player) setStateLocked(s State) {
	if p.state == s {
		return
	}
	p.log.Debug("state change", "animation", p.id, "from", p.state, "to", s, "cursor", p.cursor)
	p.state = s
}

func (p *Player) statusLocked() Status {
	return Status{
		ID:     p.id,
		State:  p.state,
		Cursor: p.cursor,
		Total:  len(p.steps),
		Speed:  p.speed,
	}
}

func (p *Player) notifyLocked(s *trace.Step) {
	if len(p.listeners) == 0 {
		return
	}
	f := Frame{Status: p.statusLocked(), Overlay: p.overlay.Clone()}
	if s != nil {
		c := *s
		f.Step = &c
	}
	for _, fn := range p.listeners {
		fn(f)
	}
}
