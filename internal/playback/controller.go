// Package playback drives a cursor over a trace on a timer.
//
// The Controller is the only writer of the cursor. It keeps at most one timer
// armed: every arm is tagged with an epoch, and cancelling bumps the epoch, so
// a callback that already fired while Pause or Stop was running finds a stale
// tag and does nothing. Observers are called without the controller lock, so
// they may call back into transport methods. The next tick is armed only after
// the observers of the current tick return, which keeps auto-play in order.
package playback

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mabhi256/dsaviz/internal/trace"
)

const (
	MinSpeed     = 100
	MaxSpeed     = 900
	DefaultSpeed = 300
)

var (
	// ErrNoTrace is returned by transport calls made without a loaded trace.
	ErrNoTrace = errors.New("playback: no trace loaded")
	// ErrDisposed is returned by calls made after Dispose.
	ErrDisposed = errors.New("playback: controller disposed")
)

const (
	narrationReady    = "Ready to visualize"
	narrationStopped  = "Visualization stopped"
	narrationComplete = "✅ Algorithm Completed Successfully!"
)

// ClampSpeed limits v to [MinSpeed, MaxSpeed].
func ClampSpeed(v int) int {
	return min(max(v, MinSpeed), MaxSpeed)
}

// Interval is the delay between ticks at speed v: faster speeds, shorter gaps.
func Interval(v int) time.Duration {
	return time.Duration(1000-ClampSpeed(v)) * time.Millisecond
}

// State is a read-only snapshot of the playback state.
type State struct {
	Cursor    int
	Len       int
	Running   bool
	Speed     int
	Narration string
}

// AtEnd reports whether the cursor sits on the last step.
func (s State) AtEnd() bool {
	return s.Len > 0 && s.Cursor >= s.Len-1
}

type Option func(*Controller)

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.sched = s
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithSpeed(v int) Option {
	return func(c *Controller) {
		c.speed = ClampSpeed(v)
	}
}

// pendingTick is the one armed timer. A nil *pendingTick means none.
type pendingTick struct {
	timer Timer
	epoch uint64
}

type subscriber struct {
	id int
	fn Observer
}

type Controller struct {
	mu     sync.Mutex
	sched  Scheduler
	logger *zap.Logger

	trace     *trace.Trace
	cursor    int
	running   bool
	speed     int
	narration string

	pending *pendingTick
	epoch   uint64

	subs     []subscriber
	nextSub  int
	disposed bool
}

func New(opts ...Option) *Controller {
	c := &Controller{
		sched:     RealScheduler(),
		logger:    zap.NewNop(),
		speed:     DefaultSpeed,
		narration: narrationReady,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces the trace, cancels any playback and rewinds to step 0.
// Loading nil clears the controller.
func (c *Controller) Load(t *trace.Trace) error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return ErrDisposed
	}

	c.cancelLocked()
	c.running = false
	c.trace = t
	c.cursor = 0
	c.narration = narrationReady
	if t.Len() == 0 {
		c.trace = nil
		c.mu.Unlock()
		return nil
	}
	ev := c.eventLocked(EventLoaded)
	c.mu.Unlock()

	c.logger.Debug("trace loaded",
		zap.String("algorithm", t.Algorithm()),
		zap.Int("steps", t.Len()))
	c.notify(ev)
	return nil
}

// Play starts auto-advance from the cursor, or from step 0 when the cursor is
// on the last step. A timer that is already armed is cancelled first, so
// calling Play while running never doubles the tick rate.
func (c *Controller) Play() error {
	c.mu.Lock()
	if err := c.usableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}

	c.cancelLocked()
	if c.cursor >= c.trace.Len()-1 {
		c.cursor = 0
	}

	if c.cursor >= c.trace.Len()-1 {
		c.running = false
		c.narration = narrationComplete
		ev := c.eventLocked(EventFinished)
		c.mu.Unlock()
		c.notify(ev)
		return nil
	}

	c.running = true
	c.armLocked()
	ev := c.eventLocked(EventPlaying)
	speed := c.speed
	c.mu.Unlock()

	c.logger.Debug("playback started", zap.Int("cursor", ev.State.Cursor), zap.Int("speed", speed))
	c.notify(ev)
	return nil
}

// Pause cancels the timer if one is armed. Pausing an idle controller is a
// no-op.
//
// Called from a goroutine other than the scheduler's, Pause can return while
// the tick that was already firing is still being delivered to observers.
// That tick is the last one: nothing is armed after it.
func (c *Controller) Pause() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	wasRunning := c.running
	c.cancelLocked()
	c.running = false
	ev := c.eventLocked(EventPaused)
	c.mu.Unlock()

	if wasRunning {
		c.logger.Debug("playback paused", zap.Int("cursor", ev.State.Cursor))
		c.notify(ev)
	}
}

// Stop is Pause plus a reset of the narration. Like Pause, it is a no-op
// when nothing is running.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.disposed || !c.running {
		c.mu.Unlock()
		return
	}
	c.cancelLocked()
	c.running = false
	c.narration = narrationStopped
	ev := c.eventLocked(EventStopped)
	c.mu.Unlock()

	c.logger.Debug("playback stopped", zap.Int("cursor", ev.State.Cursor))
	c.notify(ev)
}

func (c *Controller) StepForward() error {
	return c.move(func(cur int) int { return cur + 1 })
}

func (c *Controller) StepBackward() error {
	return c.move(func(cur int) int { return cur - 1 })
}

// Seek moves the cursor to i, clamped to the trace bounds. It never starts
// or stops the timer.
func (c *Controller) Seek(i int) error {
	return c.move(func(int) int { return i })
}

func (c *Controller) move(to func(cur int) int) error {
	c.mu.Lock()
	if err := c.usableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.cursor = min(max(to(c.cursor), 0), c.trace.Len()-1)
	step, _ := c.trace.At(c.cursor)
	c.narration = step.Description
	ev := c.eventLocked(EventSeek)
	c.mu.Unlock()

	c.notify(ev)
	return nil
}

// SetSpeed changes the interval used for the next armed tick. A tick that is
// already pending keeps its deadline.
func (c *Controller) SetSpeed(v int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = ClampSpeed(v)
}

// Interval is the delay the next armed tick will use.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Interval(c.speed)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Current returns the step under the cursor.
func (c *Controller) Current() (trace.Step, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trace.At(c.cursor)
}

func (c *Controller) Trace() *trace.Trace {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trace
}

func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trace.Len()
}

// Subscribe registers an observer and returns a function that removes it.
func (c *Controller) Subscribe(fn Observer) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed || fn == nil {
		return func() {}
	}

	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, s := range c.subs {
				if s.id == id {
					c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// Dispose cancels any armed timer and detaches all observers. Every later
// call is a no-op or returns ErrDisposed.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.cancelLocked()
	c.running = false
	c.disposed = true
	c.subs = nil
	c.logger.Debug("playback disposed")
}

func (c *Controller) usableLocked() error {
	if c.disposed {
		return ErrDisposed
	}
	if c.trace.Len() == 0 {
		return ErrNoTrace
	}
	return nil
}

func (c *Controller) armLocked() {
	c.epoch++
	epoch := c.epoch
	p := &pendingTick{epoch: epoch}
	c.pending = p
	p.timer = c.sched.AfterFunc(Interval(c.speed), func() { c.tick(epoch) })
}

// cancelLocked always bumps the epoch, so a tick that is mid-delivery when
// Pause or Stop runs sees the change and does not re-arm.
func (c *Controller) cancelLocked() {
	c.epoch++
	if c.pending == nil {
		return
	}
	c.pending.timer.Stop()
	c.pending = nil
}

func (c *Controller) tick(epoch uint64) {
	c.mu.Lock()
	if c.disposed || c.pending == nil || c.pending.epoch != epoch {
		c.mu.Unlock()
		return
	}
	c.pending = nil

	last := c.trace.Len() - 1
	if c.cursor < last {
		c.cursor++
	}
	step, _ := c.trace.At(c.cursor)
	c.narration = step.Description

	kind := EventTick
	finished := c.cursor >= last
	if finished {
		c.running = false
		c.narration = narrationComplete
		kind = EventFinished
	}
	ev := c.eventLocked(kind)
	c.mu.Unlock()

	if finished {
		c.logger.Debug("playback finished", zap.Int("steps", ev.State.Len))
	}
	c.notify(ev)

	if finished {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// An observer may have paused, stopped, re-armed or disposed meanwhile.
	if !c.disposed && c.running && c.pending == nil && c.epoch == epoch {
		c.armLocked()
	}
}

func (c *Controller) stateLocked() State {
	return State{
		Cursor:    c.cursor,
		Len:       c.trace.Len(),
		Running:   c.running,
		Speed:     c.speed,
		Narration: c.narration,
	}
}

func (c *Controller) eventLocked(kind EventKind) Event {
	step, _ := c.trace.At(c.cursor)
	return Event{
		Kind:  kind,
		State: c.stateLocked(),
		Step:  step,
	}
}

func (c *Controller) notify(ev Event) {
	c.mu.Lock()
	subs := make([]Observer, 0, len(c.subs))
	for _, s := range c.subs {
		subs = append(subs, s.fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}
