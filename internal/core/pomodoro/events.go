package pomodoro

import "time"

// EventType defines the type of Keeper event.
type EventType string

const (
	EventStateChange     EventType = "state_change"
	EventTick            EventType = "tick"
	EventPeriodCompleted EventType = "period_completed"
)

// Event represents a Keeper update for observers.
type Event struct {
	Type    EventType
	State   State
	Outcome Outcome
	Command CommandType
	At      time.Time
}
