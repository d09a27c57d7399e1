package pomodoro

import (
	"time"

	"pomodoro/internal/core/model"
)

// Period is one of the two phases the timer cycles between.
type Period string

const (
	PeriodWork  Period = "work"
	PeriodBreak Period = "break"
)

// Next returns the period that follows this one.
func (period Period) Next() Period {
	if period == PeriodWork {
		return PeriodBreak
	}
	return PeriodWork
}

// Status tells a countdown that was never started apart from a paused one.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusRunning    Status = "running"
	StatusPaused     Status = "paused"
)

// State is an immutable snapshot of the timer. Transitions return a new value.
type State struct {
	Period           Period
	RemainingSeconds int
	Status           Status
	Config           model.TimerConfig
}

// Outcome describes what a transition did beyond changing State.
type Outcome struct {
	PeriodCompleted bool
	Finished        Period
	Started         Period
}

// Initial returns a fresh Work period for config that has not been started.
func Initial(config model.TimerConfig) State {
	return State{
		Period:           PeriodWork,
		RemainingSeconds: config.WorkSeconds(),
		Status:           StatusNotStarted,
		Config:           config,
	}
}

// Running reports whether ticks advance the countdown.
func (state State) Running() bool {
	return state.Status == StatusRunning
}

// DurationFor returns the full length of period in seconds.
func (state State) DurationFor(period Period) int {
	if period == PeriodBreak {
		return state.Config.BreakSeconds()
	}
	return state.Config.WorkSeconds()
}

// Remaining returns the countdown as a duration.
func (state State) Remaining() time.Duration {
	return time.Duration(state.RemainingSeconds) * time.Second
}

// Progress returns the elapsed fraction of the current period.
func (state State) Progress() float64 {
	total := state.DurationFor(state.Period)
	if total <= 0 {
		return 1
	}
	progress := float64(total-state.RemainingSeconds) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Start sets the timer running. Starting a running timer changes nothing.
func Start(state State) State {
	state.Status = StatusRunning
	return state
}

// Pause stops the countdown. Pausing a timer that is not running changes nothing.
func Pause(state State) State {
	if state.Status == StatusRunning {
		state.Status = StatusPaused
	}
	return state
}

// Toggle pauses a running timer and starts any other.
func Toggle(state State) State {
	if state.Running() {
		return Pause(state)
	}
	return Start(state)
}

// Reset returns to the start of a Work period, not running.
func Reset(state State) State {
	return Initial(state.Config)
}

// Configure replaces both durations and resets. On error state is returned unchanged.
func Configure(state State, workMinutes, breakMinutes int) (State, error) {
	config, err := model.NewTimerConfig(workMinutes, breakMinutes)
	if err != nil {
		return state, err
	}
	state.Config = config
	return Reset(state), nil
}

// Tick advances a running timer by one second. A period completes on the tick
// that takes its countdown to zero, and the next period begins at full length.
func Tick(state State) (State, Outcome) {
	if !state.Running() {
		return state, Outcome{}
	}
	if state.RemainingSeconds > 1 {
		state.RemainingSeconds--
		return state, Outcome{}
	}

	finished := state.Period
	state.Period = finished.Next()
	state.RemainingSeconds = state.DurationFor(state.Period)
	return state, Outcome{
		PeriodCompleted: true,
		Finished:        finished,
		Started:         state.Period,
	}
}
