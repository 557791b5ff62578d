package countdown

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/anduckhmt146/leetpick/internal/logging"
	"github.com/anduckhmt146/leetpick/internal/store"
)

// DefaultDuration is the length of a study countdown.
const DefaultDuration = time.Hour

// TickInterval is how often the owning view recomputes the remaining time.
const TickInterval = time.Second

// State is the countdown lifecycle.
type State int

const (
	Idle State = iota
	Running
	Expired
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Expired:
		return "expired"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options configures a Countdown.
type Options struct {
	Duration time.Duration

	// Resume reuses a persisted anchor instead of restarting the countdown.
	Resume bool

	// KV persists the anchor. Nil disables persistence.
	KV store.KV

	// Now defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// Countdown is a wall-clock anchored timer. Remaining time is derived from
// the anchor on every read, so it does not drift with render cadence.
type Countdown struct {
	duration time.Duration
	resume   bool
	kv       store.KV
	now      func() time.Time
	logger   *slog.Logger

	start time.Time
	state State
}

// New returns an idle Countdown.
func New(opts Options) *Countdown {
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Countdown{
		duration: opts.Duration,
		resume:   opts.Resume,
		kv:       opts.KV,
		now:      opts.Now,
		logger:   logging.OrDiscard(opts.Logger),
	}
}

// Start anchors the countdown and moves it out of Idle. Calling Start on a
// countdown that is already running or expired is a no-op. The returned
// error reports a failure to persist the anchor; the countdown runs anyway.
func (c *Countdown) Start(ctx context.Context) error {
	if c.state != Idle {
		return nil
	}

	if c.resume {
		if anchor, ok := c.loadAnchor(ctx); ok {
			c.start = anchor
			c.state = Running
			c.logger.Info("countdown resumed", "anchor", anchor, "remaining", c.Remaining())
			c.Tick()
			return nil
		}
	}

	c.start = c.now()
	c.state = Running
	c.logger.Info("countdown started", "duration", c.duration)
	return c.saveAnchor(ctx)
}

// Reset returns the countdown to Idle and forgets the persisted anchor.
func (c *Countdown) Reset(ctx context.Context) error {
	c.state = Idle
	c.start = time.Time{}
	if c.kv == nil {
		return nil
	}
	if err := c.kv.Delete(ctx, store.KeyCountdownStart); err != nil {
		return fmt.Errorf("clear countdown anchor: %w", err)
	}
	return nil
}

// Restart resets and starts the countdown from now, ignoring Resume.
func (c *Countdown) Restart(ctx context.Context) error {
	resume := c.resume
	c.resume = false
	defer func() { c.resume = resume }()

	if err := c.Reset(ctx); err != nil {
		return err
	}
	return c.Start(ctx)
}

// Tick recomputes the remaining time and moves a running countdown to
// Expired once it reaches zero.
func (c *Countdown) Tick() (time.Duration, State) {
	rem := c.Remaining()
	if c.state == Running && rem == 0 {
		c.state = Expired
		c.logger.Info("countdown expired")
	}
	return rem, c.state
}

// Remaining returns the time left at the current clock reading.
func (c *Countdown) Remaining() time.Duration {
	return c.RemainingAt(c.now())
}

// RemainingAt returns max(0, duration - elapsed) at now. An idle countdown
// reports its full duration.
func (c *Countdown) RemainingAt(now time.Time) time.Duration {
	if c.state == Idle {
		return c.duration
	}
	return Remaining(c.duration, now.Sub(c.start))
}

// State returns the current lifecycle state.
func (c *Countdown) State() State {
	return c.state
}

// Duration returns the configured countdown length.
func (c *Countdown) Duration() time.Duration {
	return c.duration
}

// StartedAt returns the anchor timestamp, zero while idle.
func (c *Countdown) StartedAt() time.Time {
	return c.start
}

// Remaining computes max(0, duration - elapsed). Negative elapsed time
// counts as zero, so the result never exceeds duration.
func Remaining(duration, elapsed time.Duration) time.Duration {
	if elapsed < 0 {
		elapsed = 0
	}
	rem := duration - elapsed
	if rem < 0 {
		return 0
	}
	return rem
}

// Format renders d as mm:ss. Minutes are not wrapped into hours, so a full
// hour reads 60:00.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (c *Countdown) loadAnchor(ctx context.Context) (time.Time, bool) {
	if c.kv == nil {
		return time.Time{}, false
	}
	raw, ok, err := c.kv.Get(ctx, store.KeyCountdownStart)
	if err != nil {
		c.logger.Warn("read countdown anchor", "error", err)
		return time.Time{}, false
	}
	if !ok {
		return time.Time{}, false
	}
	// Stored as a bare number, but tolerate a JSON string too.
	ms, err := strconv.ParseInt(strings.Trim(strings.TrimSpace(raw), `"`), 10, 64)
	if err != nil || ms <= 0 {
		c.logger.Warn("discarding corrupt countdown anchor", "value", raw)
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

func (c *Countdown) saveAnchor(ctx context.Context) error {
	if c.kv == nil {
		return nil
	}
	raw := strconv.FormatInt(c.start.UnixMilli(), 10)
	if err := c.kv.Set(ctx, store.KeyCountdownStart, raw); err != nil {
		c.logger.Error("persist countdown anchor", "error", err)
		return fmt.Errorf("persist countdown anchor: %w", err)
	}
	return nil
}
