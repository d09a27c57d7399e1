package preferences

import (
	"time"

	"pomodoro/internal/core/model"
)

const (
	MinVolume = -5.0
	MaxVolume = 2.0
)

// Settings defines the startup preferences read from the settings file.
type Settings struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration

	// Sound plays a chime when a period completes. Volume is a base-2 exponent.
	Sound  bool
	Volume float64
	Notify bool
}

// DefaultSettings returns default settings for Pomodoro.
func DefaultSettings() Settings {
	config := model.DefaultTimerConfig()
	return Settings{
		WorkDuration:  config.Work,
		BreakDuration: config.Break,
		Sound:         true,
		Volume:        0,
		Notify:        true,
	}
}

// TimerConfig converts settings to the timer model.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Work:  settings.WorkDuration,
		Break: settings.BreakDuration,
	}
}
