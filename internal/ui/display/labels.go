// Package display turns timer state into the strings shown by the window and tray.
package display

import (
	"fmt"

	"pomodoro/internal/core/pomodoro"
)

// Clock formats seconds as MM:SS. Minutes grow past two digits for long periods.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// PeriodTitle labels the current period.
func PeriodTitle(period pomodoro.Period) string {
	if period == pomodoro.PeriodBreak {
		return "Break time"
	}
	return "Work time"
}

// PeriodName is the short period name used in menus and notifications.
func PeriodName(period pomodoro.Period) string {
	if period == pomodoro.PeriodBreak {
		return "Break"
	}
	return "Work"
}

// ToggleLabel is the text of the start/pause control for status.
func ToggleLabel(status pomodoro.Status) string {
	switch status {
	case pomodoro.StatusRunning:
		return "Pause"
	case pomodoro.StatusPaused:
		return "Resume"
	default:
		return "Start"
	}
}

// Status summarizes state in one line, e.g. "Work 24:59 (paused)".
func Status(state pomodoro.State) string {
	status := fmt.Sprintf("%s %s", PeriodName(state.Period), Clock(state.RemainingSeconds))
	if state.Status == pomodoro.StatusPaused {
		status += " (paused)"
	}
	return status
}

// CompletedMessage announces the period that just began.
func CompletedMessage(started pomodoro.Period) string {
	if started == pomodoro.PeriodBreak {
		return "Work period finished. Time for a break!"
	}
	return "Break is over. Back to work!"
}
