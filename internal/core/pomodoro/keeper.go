package pomodoro

import (
	"errors"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// ErrClosed is returned by Dispatch after Close.
var ErrClosed = errors.New("keeper closed")

// Config contains runtime options for Keeper.
type Config struct {
	TickInterval time.Duration
}

// Keeper holds the single mutable State. Every command, including ticks, is
// applied under one lock so no two transitions overlap.
type Keeper struct {
	mu      sync.Mutex
	state   State
	options Config
	events  []chan Event
	stopCh  chan struct{}
	closed  bool
}

// NewKeeper creates a Keeper in the initial state for config.
func NewKeeper(config model.TimerConfig, options Config) *Keeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Keeper{
		state:   Initial(config),
		options: options,
	}
}

// Subscribe registers a new observer channel. Publishing never blocks, so a
// full channel drops events.
func (keeper *Keeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Snapshot returns the current state.
func (keeper *Keeper) Snapshot() State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// Dispatch applies command and publishes the resulting event.
func (keeper *Keeper) Dispatch(command Command) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return ErrClosed
	}
	return keeper.applyLocked(command, time.Now())
}

// Start sets the timer running.
func (keeper *Keeper) Start() {
	_ = keeper.Dispatch(Command{Type: CmdStart})
}

// Pause freezes the countdown.
func (keeper *Keeper) Pause() {
	_ = keeper.Dispatch(Command{Type: CmdPause})
}

// Toggle pauses a running timer and starts any other.
func (keeper *Keeper) Toggle() {
	_ = keeper.Dispatch(Command{Type: CmdToggle})
}

// Reset returns to a fresh Work period.
func (keeper *Keeper) Reset() {
	_ = keeper.Dispatch(Command{Type: CmdReset})
}

// Configure replaces both durations and resets the timer.
func (keeper *Keeper) Configure(workMinutes, breakMinutes int) error {
	return keeper.Dispatch(ConfigureCommand(workMinutes, breakMinutes))
}

// Close stops the ticker and closes observers.
func (keeper *Keeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.stopTickerLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *Keeper) applyLocked(command Command, now time.Time) error {
	previous := keeper.state
	next, outcome, err := Apply(previous, command)
	if err != nil {
		return err
	}
	keeper.state = next
	keeper.syncTickerLocked()

	event := Event{
		State:   next,
		Outcome: outcome,
		Command: command.Type,
		At:      now,
	}
	switch {
	case outcome.PeriodCompleted:
		event.Type = EventPeriodCompleted
	case next == previous:
		return nil
	case command.Type == CmdTick:
		event.Type = EventTick
	default:
		event.Type = EventStateChange
	}
	keeper.emitLocked(event)
	return nil
}

// syncTickerLocked runs the ticker loop exactly while the timer is running.
func (keeper *Keeper) syncTickerLocked() {
	if keeper.state.Running() {
		if keeper.stopCh == nil {
			keeper.stopCh = make(chan struct{})
			go keeper.run(keeper.stopCh)
		}
		return
	}
	keeper.stopTickerLocked()
}

func (keeper *Keeper) stopTickerLocked() {
	if keeper.stopCh != nil {
		close(keeper.stopCh)
		keeper.stopCh = nil
	}
}

func (keeper *Keeper) run(stopCh <-chan struct{}) {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			keeper.tick(stopCh, tickTime)
		}
	}
}

func (keeper *Keeper) tick(stopCh <-chan struct{}, tickTime time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	// The loop may have been stopped while this tick waited for the lock.
	select {
	case <-stopCh:
		return
	default:
	}
	_ = keeper.applyLocked(Command{Type: CmdTick}, tickTime)
}

func (keeper *Keeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
