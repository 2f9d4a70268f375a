package animate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/render"
)

// instantClock fires immediately and records the requested pauses.
type instantClock struct {
	mu     sync.Mutex
	pauses []time.Duration
}

func (c *instantClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.pauses = append(c.pauses, d)
	c.mu.Unlock()
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

// stoppedClock never fires.
type stoppedClock struct{}

func (stoppedClock) After(time.Duration) <-chan time.Time { return nil }

func TestPlayerPlay(t *testing.T) {
	var rec render.Recorder
	clock := &instantClock{}
	var seen []int
	p := NewPlayer(&rec, WithClock(clock), OnShot(func(i int, _ Shot) { seen = append(seen, i) }))

	st, _ := p.State()
	assert.Equal(t, Idle, st)

	shots := Script(cubic, cubic.Steps(0.5), DefaultTiming())
	require.NoError(t, p.Play(context.Background(), cubic, shots))

	st, idx := p.State()
	assert.Equal(t, Done, st)
	assert.Equal(t, len(shots)-1, idx)
	assert.Len(t, seen, len(shots))
	assert.Equal(t, len(shots), rec.Count(render.SetupCall))
	assert.Len(t, rec.Lines(), 6)
	require.Len(t, clock.pauses, len(shots))
	assert.Equal(t, DefaultTiming().Intro, clock.pauses[0])
	assert.False(t, p.Busy())
}

func TestPlayerCancel(t *testing.T) {
	var rec render.Recorder
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := &cancelAfter{n: 2, inner: &instantClock{}}
	p := NewPlayer(&rec, WithClock(clock), OnShot(func(i int, _ Shot) {
		if i == 2 {
			cancel()
		}
	}))

	err := p.Play(ctx, cubic, Script(cubic, cubic.Steps(0.5), DefaultTiming()))
	require.ErrorIs(t, err, context.Canceled)
	st, idx := p.State()
	assert.Equal(t, Cancelled, st)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 3, rec.Count(render.SetupCall))
}

// cancelAfter fires instantly for the first n pauses and then stops.
type cancelAfter struct {
	n     int
	inner Clock
}

func (c *cancelAfter) After(d time.Duration) <-chan time.Time {
	if c.n == 0 {
		return nil
	}
	c.n--
	return c.inner.After(d)
}

func TestPlayerCancelledBeforeStart(t *testing.T) {
	var rec render.Recorder
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPlayer(&rec, WithClock(&instantClock{}))
	err := p.Play(ctx, cubic, Script(cubic, cubic.Steps(0.5), DefaultTiming()))
	require.ErrorIs(t, err, context.Canceled)
	st, idx := p.State()
	assert.Equal(t, Cancelled, st)
	assert.Equal(t, 0, idx)
	assert.Empty(t, rec.Calls)
}

func TestPlayerBusy(t *testing.T) {
	var rec render.Recorder
	started := make(chan struct{})
	var once sync.Once
	p := NewPlayer(&rec, WithClock(stoppedClock{}), OnShot(func(int, Shot) {
		once.Do(func() { close(started) })
	}))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- p.Play(ctx, cubic, Script(cubic, cubic.Steps(0.5), DefaultTiming())) }()

	<-started
	assert.True(t, p.Busy())
	assert.ErrorIs(t, p.Play(context.Background(), cubic, nil), ErrBusy)

	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)
	assert.False(t, p.Busy())

	// the player can be reused once idle
	require.NoError(t, p.Play(context.Background(), cubic, nil))
	st, _ := p.State()
	assert.Equal(t, Done, st)
}

func TestPlayController(t *testing.T) {
	var rec render.Recorder
	ctl := bezier.NewController(&rec)
	p := NewPlayer(&rec, WithClock(&instantClock{}))

	err := p.PlayController(context.Background(), ctl, DefaultTiming())
	require.ErrorIs(t, err, bezier.ErrTooFewPoints)

	for _, pt := range cubic {
		ctl.AddControlPoint(pt)
	}
	require.NoError(t, p.PlayController(context.Background(), ctl, DefaultTiming()))
	st, _ := p.State()
	assert.Equal(t, Done, st)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "State(9)", State(9).String())
}
