package mainwindow

import (
	"image/color"

	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/ui/display"
	"pomodoro/internal/ui/preferences"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controller is the part of the Keeper the window drives.
type Controller interface {
	Snapshot() pomodoro.State
	Toggle()
	Reset()
	Configure(workMinutes, breakMinutes int) error
}

// Config defines window behaviour.
type Config struct {
	Title  string
	Notify bool
}

// Window renders the timer and forwards user intents to the Controller.
type Window struct {
	app          fyne.App
	window       fyne.Window
	config       Config
	controller   Controller
	periodLabel  *canvas.Text
	timerLabel   *canvas.Text
	progress     *widget.ProgressBar
	toggleButton *widget.Button
	resetButton  *widget.Button
	configButton *widget.Button
	configure    *preferences.ConfigureDialog
}

const (
	windowWidth   = float32(320)
	windowHeight  = float32(200)
	timerTextSize = float32(36)
)

// New creates the main window. Closing it quits the application.
func New(app fyne.App, controller Controller, config Config) *Window {
	if config.Title == "" {
		config.Title = "Pomodoro"
	}
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetMaster()

	periodLabel := canvas.NewText("", periodColor(pomodoro.PeriodWork))
	periodLabel.Alignment = fyne.TextAlignCenter
	periodLabel.TextStyle = fyne.TextStyle{Bold: true}
	periodLabel.TextSize = 18

	timerLabel := canvas.NewText("00:00", theme.Color(theme.ColorNameForeground))
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Monospace: true}
	timerLabel.TextSize = timerTextSize

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	toggleButton := widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), nil)
	toggleButton.Importance = widget.HighImportance
	resetButton := widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), nil)
	configButton := widget.NewButtonWithIcon("Configure", theme.SettingsIcon(), nil)

	buttons := container.NewHBox(toggleButton, resetButton, configButton)
	content := container.NewBorder(
		periodLabel,
		container.NewCenter(buttons),
		nil,
		nil,
		container.NewVBox(timerLabel, progress),
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.CenterOnScreen()

	timerWindow := &Window{
		app:          app,
		window:       window,
		config:       config,
		controller:   controller,
		periodLabel:  periodLabel,
		timerLabel:   timerLabel,
		progress:     progress,
		toggleButton: toggleButton,
		resetButton:  resetButton,
		configButton: configButton,
	}
	timerWindow.configure = preferences.NewConfigureDialog(window, timerWindow.handleConfigure)

	toggleButton.OnTapped = timerWindow.handleToggle
	resetButton.OnTapped = timerWindow.handleReset
	configButton.OnTapped = timerWindow.ShowConfigure

	timerWindow.Render(controller.Snapshot())
	return timerWindow
}

// Show displays the window and brings it to front.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// ShowConfigure opens the configure dialog for the current durations.
func (timerWindow *Window) ShowConfigure() {
	timerWindow.configure.Show(timerWindow.controller.Snapshot().Config)
}

// Render reflects state in every widget. Call it on the UI thread.
func (timerWindow *Window) Render(state pomodoro.State) {
	timerWindow.periodLabel.Text = display.PeriodTitle(state.Period)
	timerWindow.periodLabel.Color = periodColor(state.Period)
	timerWindow.periodLabel.Refresh()

	timerWindow.timerLabel.Text = display.Clock(state.RemainingSeconds)
	timerWindow.timerLabel.Refresh()

	timerWindow.progress.SetValue(state.Progress())

	timerWindow.toggleButton.SetText(display.ToggleLabel(state.Status))
	if state.Running() {
		timerWindow.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		timerWindow.toggleButton.SetIcon(theme.MediaPlayIcon())
	}
}

// ShowPeriodCompleted tells the user a new period has begun.
func (timerWindow *Window) ShowPeriodCompleted(outcome pomodoro.Outcome) {
	message := display.CompletedMessage(outcome.Started)
	dialog.ShowInformation("Period finished", message, timerWindow.window)
	if timerWindow.config.Notify {
		timerWindow.app.SendNotification(fyne.NewNotification(timerWindow.config.Title, message))
	}
	timerWindow.window.RequestFocus()
}

func (timerWindow *Window) handleToggle() {
	timerWindow.controller.Toggle()
	timerWindow.Render(timerWindow.controller.Snapshot())
}

func (timerWindow *Window) handleReset() {
	timerWindow.controller.Reset()
	timerWindow.Render(timerWindow.controller.Snapshot())
}

func (timerWindow *Window) handleConfigure(workMinutes, breakMinutes int) error {
	if err := timerWindow.controller.Configure(workMinutes, breakMinutes); err != nil {
		return err
	}
	timerWindow.Render(timerWindow.controller.Snapshot())
	return nil
}

func periodColor(period pomodoro.Period) color.Color {
	if period == pomodoro.PeriodBreak {
		return theme.Color(theme.ColorNameSuccess)
	}
	return theme.Color(theme.ColorNamePrimary)
}
