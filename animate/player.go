package animate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"honnef.co/go/bezier"
)

// ErrBusy is returned when starting playback while a player is already playing.
var ErrBusy = errors.New("animate: already playing")

// State is the state of a [Player].
type State int

const (
	Idle State = iota
	Playing
	Done
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Clock schedules the pauses between shots.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Player draws shots onto a renderer one after the other, holding each for
// its duration. Only one playback can be in flight at a time.
type Player struct {
	r      bezier.Renderer
	clock  Clock
	onShot func(i int, s Shot)

	busy atomic.Bool

	mu    sync.Mutex
	state State
	shot  int
}

type Option func(*Player)

// WithClock makes the player pause using c instead of the system clock.
func WithClock(c Clock) Option {
	return func(p *Player) { p.clock = c }
}

// OnShot registers a function that is called after each shot is drawn.
func OnShot(fn func(i int, s Shot)) Option {
	return func(p *Player) { p.onShot = fn }
}

func NewPlayer(r bezier.Renderer, opts ...Option) *Player {
	p := &Player{r: r, clock: realClock{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the player's state and the index of the current shot.
func (p *Player) State() (State, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.shot
}

func (p *Player) setState(s State, shot int) {
	p.mu.Lock()
	p.state = s
	p.shot = shot
	p.mu.Unlock()
}

// Busy reports whether a playback is in flight.
func (p *Player) Busy() bool { return p.busy.Load() }

// Play draws the shots in order on top of the control points, holding each
// shot for its duration. It returns when all shots have been shown, or early
// with the context's error if ctx is cancelled; cancellation is checked
// before every shot and while holding one. Play returns [ErrBusy] if the
// player is already playing.
func (p *Player) Play(ctx context.Context, control []bezier.Point, shots []Shot) error {
	if !p.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer p.busy.Store(false)

	log := bezier.Logger()
	log.Info("animation started", "shots", len(shots), "duration", Duration(shots))

	for i, s := range shots {
		if err := ctx.Err(); err != nil {
			p.setState(Cancelled, i)
			log.Info("animation cancelled", "shot", i)
			return err
		}
		p.setState(Playing, i)
		s.Draw(p.r, control)
		if p.onShot != nil {
			p.onShot(i, s)
		}
		select {
		case <-ctx.Done():
			p.setState(Cancelled, i)
			log.Info("animation cancelled", "shot", i)
			return ctx.Err()
		case <-p.clock.After(s.Hold):
		}
	}

	p.setState(Done, max(len(shots)-1, 0))
	log.Info("animation finished")
	return nil
}

// PlayController plays the de Casteljau construction of ctl's curve at its
// current parameter t.
func (p *Player) PlayController(ctx context.Context, ctl *bezier.Controller, timing Timing) error {
	frames, err := ctl.Steps()
	if err != nil {
		return fmt.Errorf("animate: %w", err)
	}
	control := ctl.ControlPoints()
	return p.Play(ctx, control, Script(control, frames, timing))
}
