package mainwindow

import (
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"

	"fyne.io/fyne/v2/test"
)

func newTestWindow(t *testing.T) (*Window, *pomodoro.Keeper) {
	t.Helper()
	app := test.NewTempApp(t)
	keeper := pomodoro.NewKeeper(model.DefaultTimerConfig(), pomodoro.Config{TickInterval: time.Hour})
	t.Cleanup(keeper.Close)

	timerWindow := New(app, keeper, Config{})
	t.Cleanup(timerWindow.window.Close)
	return timerWindow, keeper
}

func TestInitialRender(t *testing.T) {
	timerWindow, _ := newTestWindow(t)

	if timerWindow.timerLabel.Text != "25:00" {
		t.Fatalf("expected 25:00, got %q", timerWindow.timerLabel.Text)
	}
	if timerWindow.periodLabel.Text != "Work time" {
		t.Fatalf("expected work title, got %q", timerWindow.periodLabel.Text)
	}
	if timerWindow.toggleButton.Text != "Start" {
		t.Fatalf("expected Start, got %q", timerWindow.toggleButton.Text)
	}
	if timerWindow.window.Title() != "Pomodoro" {
		t.Fatalf("unexpected title %q", timerWindow.window.Title())
	}
}

func TestToggleButtonCyclesLabels(t *testing.T) {
	timerWindow, keeper := newTestWindow(t)

	test.Tap(timerWindow.toggleButton)
	if !keeper.Snapshot().Running() {
		t.Fatal("tapping Start should start the timer")
	}
	if timerWindow.toggleButton.Text != "Pause" {
		t.Fatalf("expected Pause, got %q", timerWindow.toggleButton.Text)
	}

	test.Tap(timerWindow.toggleButton)
	if keeper.Snapshot().Status != pomodoro.StatusPaused {
		t.Fatal("tapping Pause should pause the timer")
	}
	if timerWindow.toggleButton.Text != "Resume" {
		t.Fatalf("expected Resume, got %q", timerWindow.toggleButton.Text)
	}

	test.Tap(timerWindow.toggleButton)
	if timerWindow.toggleButton.Text != "Pause" {
		t.Fatalf("expected Pause after resume, got %q", timerWindow.toggleButton.Text)
	}
}

func TestResetButton(t *testing.T) {
	timerWindow, keeper := newTestWindow(t)

	test.Tap(timerWindow.toggleButton)
	for i := 0; i < 90; i++ {
		if err := keeper.Dispatch(pomodoro.Command{Type: pomodoro.CmdTick}); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	timerWindow.Render(keeper.Snapshot())
	if timerWindow.timerLabel.Text != "23:30" {
		t.Fatalf("expected 23:30, got %q", timerWindow.timerLabel.Text)
	}

	test.Tap(timerWindow.resetButton)
	if timerWindow.timerLabel.Text != "25:00" || timerWindow.toggleButton.Text != "Start" {
		t.Fatalf("unexpected render after reset: %q / %q", timerWindow.timerLabel.Text, timerWindow.toggleButton.Text)
	}
	if keeper.Snapshot().Running() {
		t.Fatal("reset should stop the timer")
	}
}

func TestRenderBreak(t *testing.T) {
	timerWindow, _ := newTestWindow(t)
	state := pomodoro.Start(pomodoro.Initial(model.DefaultTimerConfig()))
	state.RemainingSeconds = 1
	state, _ = pomodoro.Tick(state)

	timerWindow.Render(state)
	if timerWindow.periodLabel.Text != "Break time" {
		t.Fatalf("expected break title, got %q", timerWindow.periodLabel.Text)
	}
	if timerWindow.timerLabel.Text != "05:00" {
		t.Fatalf("expected 05:00, got %q", timerWindow.timerLabel.Text)
	}
	if timerWindow.progress.Value != 0 {
		t.Fatalf("expected empty progress, got %f", timerWindow.progress.Value)
	}
}

func TestConfigureRerenders(t *testing.T) {
	timerWindow, keeper := newTestWindow(t)

	if err := timerWindow.handleConfigure(50, 10); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if timerWindow.timerLabel.Text != "50:00" {
		t.Fatalf("expected 50:00, got %q", timerWindow.timerLabel.Text)
	}
	if keeper.Snapshot().DurationFor(pomodoro.PeriodBreak) != 600 {
		t.Fatal("break duration not applied")
	}

	before := keeper.Snapshot()
	timerWindow.configure.SetValues("0", "10")
	if err := timerWindow.configure.Submit(); err == nil {
		t.Fatal("expected invalid configuration error")
	}
	if keeper.Snapshot() != before {
		t.Fatal("invalid configuration changed state")
	}
}

func TestShowPeriodCompleted(t *testing.T) {
	timerWindow, _ := newTestWindow(t)
	timerWindow.config.Notify = true
	timerWindow.ShowPeriodCompleted(pomodoro.Outcome{
		PeriodCompleted: true,
		Finished:        pomodoro.PeriodWork,
		Started:         pomodoro.PeriodBreak,
	})
}
