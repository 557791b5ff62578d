package countdown

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anduckhmt146/leetpick/internal/store"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

var errWrite = errors.New("disk full")

type failingKV struct {
	*store.Memory
}

func (failingKV) Set(context.Context, string, string) error { return errWrite }

func TestNew_Defaults(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, DefaultDuration, c.Duration())
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, DefaultDuration, c.Remaining())
	assert.True(t, c.StartedAt().IsZero())
}

func TestStart_PersistsAnchor(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	kv := store.NewMemory()

	c := New(Options{Duration: time.Hour, KV: kv, Now: clock.Now})
	require.NoError(t, c.Start(ctx))

	assert.Equal(t, Running, c.State())
	assert.Equal(t, clock.t, c.StartedAt())

	raw, ok, err := kv.Get(ctx, store.KeyCountdownStart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, strconv.FormatInt(clock.t.UnixMilli(), 10), raw)
}

func TestStart_IdempotentWhileRunning(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	c := New(Options{Duration: time.Hour, Now: clock.Now})
	require.NoError(t, c.Start(ctx))
	anchor := c.StartedAt()

	clock.Advance(5 * time.Minute)
	require.NoError(t, c.Start(ctx))
	assert.Equal(t, anchor, c.StartedAt())
}

func TestTick_CountsDownAndExpires(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	c := New(Options{Duration: 10 * time.Second, Now: clock.Now})
	require.NoError(t, c.Start(ctx))

	rem, state := c.Tick()
	assert.Equal(t, 10*time.Second, rem)
	assert.Equal(t, Running, state)

	clock.Advance(4 * time.Second)
	rem, state = c.Tick()
	assert.Equal(t, 6*time.Second, rem)
	assert.Equal(t, Running, state)

	clock.Advance(6 * time.Second)
	rem, state = c.Tick()
	assert.Equal(t, time.Duration(0), rem)
	assert.Equal(t, Expired, state)

	clock.Advance(time.Hour)
	rem, state = c.Tick()
	assert.Equal(t, time.Duration(0), rem)
	assert.Equal(t, Expired, state)
}

func TestRemaining_NonIncreasingAndBounded(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	c := New(Options{Duration: time.Minute, Now: clock.Now})
	require.NoError(t, c.Start(ctx))

	prev := c.Remaining()
	for range 90 {
		clock.Advance(time.Second)
		rem := c.Remaining()
		assert.LessOrEqual(t, rem, prev)
		assert.GreaterOrEqual(t, rem, time.Duration(0))
		assert.LessOrEqual(t, rem, time.Minute)
		prev = rem
	}
}

func TestRemaining_ClampsFutureAnchor(t *testing.T) {
	assert.Equal(t, time.Hour, Remaining(time.Hour, -10*time.Minute))
	assert.Equal(t, 50*time.Minute, Remaining(time.Hour, 10*time.Minute))
	assert.Equal(t, time.Duration(0), Remaining(time.Hour, 2*time.Hour))
}

func TestStart_ResumeReusesAnchor(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	kv := store.NewMemory()

	first := New(Options{Duration: time.Hour, KV: kv, Now: clock.Now})
	require.NoError(t, first.Start(ctx))
	anchor := first.StartedAt()

	clock.Advance(20 * time.Minute)
	second := New(Options{Duration: time.Hour, Resume: true, KV: kv, Now: clock.Now})
	require.NoError(t, second.Start(ctx))

	assert.Equal(t, anchor.UnixMilli(), second.StartedAt().UnixMilli())
	assert.Equal(t, 40*time.Minute, second.Remaining())
}

func TestStart_ResumeExpiredAnchor(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, store.KeyCountdownStart, strconv.FormatInt(clock.t.Add(-2*time.Hour).UnixMilli(), 10)))

	c := New(Options{Duration: time.Hour, Resume: true, KV: kv, Now: clock.Now})
	require.NoError(t, c.Start(ctx))
	assert.Equal(t, Expired, c.State())
	assert.Equal(t, time.Duration(0), c.Remaining())
}

func TestStart_WithoutResumeRestarts(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, store.KeyCountdownStart, strconv.FormatInt(clock.t.Add(-30*time.Minute).UnixMilli(), 10)))

	c := New(Options{Duration: time.Hour, KV: kv, Now: clock.Now})
	require.NoError(t, c.Start(ctx))
	assert.Equal(t, clock.t, c.StartedAt())
	assert.Equal(t, time.Hour, c.Remaining())
}

func TestStart_ResumeIgnoresCorruptAnchor(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "not-a-number"},
		{"empty", ""},
		{"negative", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			clock := newClock()
			kv := store.NewMemory()
			require.NoError(t, kv.Set(ctx, store.KeyCountdownStart, tt.raw))

			c := New(Options{Duration: time.Hour, Resume: true, KV: kv, Now: clock.Now})
			require.NoError(t, c.Start(ctx))
			assert.Equal(t, clock.t, c.StartedAt())
			assert.Equal(t, Running, c.State())
		})
	}
}

func TestStart_PersistFailureStillRuns(t *testing.T) {
	clock := newClock()
	c := New(Options{Duration: time.Hour, KV: failingKV{store.NewMemory()}, Now: clock.Now})

	err := c.Start(context.Background())
	require.ErrorIs(t, err, errWrite)
	assert.Equal(t, Running, c.State())
	assert.Equal(t, time.Hour, c.Remaining())
}

func TestReset_ClearsAnchor(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	kv := store.NewMemory()
	c := New(Options{Duration: time.Hour, KV: kv, Now: clock.Now})
	require.NoError(t, c.Start(ctx))

	require.NoError(t, c.Reset(ctx))
	assert.Equal(t, Idle, c.State())
	_, ok, err := kv.Get(ctx, store.KeyCountdownStart)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRestart_IgnoresResume(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	kv := store.NewMemory()
	c := New(Options{Duration: time.Hour, Resume: true, KV: kv, Now: clock.Now})
	require.NoError(t, c.Start(ctx))

	clock.Advance(45 * time.Minute)
	require.NoError(t, c.Restart(ctx))
	assert.Equal(t, clock.t, c.StartedAt())
	assert.Equal(t, time.Hour, c.Remaining())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{9 * time.Second, "00:09"},
		{90 * time.Second, "01:30"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour, "60:00"},
		{1500 * time.Millisecond, "00:02"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "expired", Expired.String())
}
