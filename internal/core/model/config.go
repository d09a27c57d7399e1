package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidConfiguration indicates durations that are not whole positive minutes.
var ErrInvalidConfiguration = errors.New("invalid configuration")

const (
	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5

	// MaxMinutes bounds a single period to one week.
	MaxMinutes = 7 * 24 * 60
)

// TimerConfig contains the configured length of each period.
type TimerConfig struct {
	Work  time.Duration
	Break time.Duration
}

// DefaultTimerConfig returns the classic 25/5 split.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Work:  DefaultWorkMinutes * time.Minute,
		Break: DefaultBreakMinutes * time.Minute,
	}
}

// NewTimerConfig builds a TimerConfig from whole minutes.
func NewTimerConfig(workMinutes, breakMinutes int) (TimerConfig, error) {
	if err := ValidateMinutes(workMinutes); err != nil {
		return TimerConfig{}, fmt.Errorf("work minutes: %w", err)
	}
	if err := ValidateMinutes(breakMinutes); err != nil {
		return TimerConfig{}, fmt.Errorf("break minutes: %w", err)
	}
	return TimerConfig{
		Work:  time.Duration(workMinutes) * time.Minute,
		Break: time.Duration(breakMinutes) * time.Minute,
	}, nil
}

// ValidateMinutes reports whether minutes is usable as a period length.
func ValidateMinutes(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: %d is not a positive number of minutes", ErrInvalidConfiguration, minutes)
	}
	if minutes > MaxMinutes {
		return fmt.Errorf("%w: %d minutes exceeds the maximum of %d", ErrInvalidConfiguration, minutes, MaxMinutes)
	}
	return nil
}

// ParseMinutes parses operator input for a period length.
func ParseMinutes(value string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidConfiguration, value)
	}
	if err := ValidateMinutes(minutes); err != nil {
		return 0, err
	}
	return minutes, nil
}

// WorkSeconds returns the work period length in whole seconds.
func (config TimerConfig) WorkSeconds() int {
	return int(config.Work / time.Second)
}

// BreakSeconds returns the break period length in whole seconds.
func (config TimerConfig) BreakSeconds() int {
	return int(config.Break / time.Second)
}

// WorkMinutes returns the work period length in whole minutes.
func (config TimerConfig) WorkMinutes() int {
	return int(config.Work / time.Minute)
}

// BreakMinutes returns the break period length in whole minutes.
func (config TimerConfig) BreakMinutes() int {
	return int(config.Break / time.Minute)
}
