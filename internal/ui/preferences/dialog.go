package preferences

import (
	"errors"
	"fmt"
	"strconv"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// InvalidInputMessage is shown when the form holds anything but positive whole minutes.
const InvalidInputMessage = "Enter whole numbers greater than zero."

// ConfigureDialog collects new period lengths in a modal form.
type ConfigureDialog struct {
	parent     fyne.Window
	workEntry  *widget.Entry
	breakEntry *widget.Entry
	onSubmit   func(workMinutes, breakMinutes int) error
}

// NewConfigureDialog creates the dialog. onSubmit receives validated minutes.
func NewConfigureDialog(parent fyne.Window, onSubmit func(workMinutes, breakMinutes int) error) *ConfigureDialog {
	workEntry := widget.NewEntry()
	workEntry.SetPlaceHolder(strconv.Itoa(model.DefaultWorkMinutes))
	breakEntry := widget.NewEntry()
	breakEntry.SetPlaceHolder(strconv.Itoa(model.DefaultBreakMinutes))

	return &ConfigureDialog{
		parent:     parent,
		workEntry:  workEntry,
		breakEntry: breakEntry,
		onSubmit:   onSubmit,
	}
}

// Show opens the form pre-filled with config.
func (prefs *ConfigureDialog) Show(config model.TimerConfig) {
	prefs.SetValues(strconv.Itoa(config.WorkMinutes()), strconv.Itoa(config.BreakMinutes()))

	items := []*widget.FormItem{
		widget.NewFormItem("Work minutes", prefs.workEntry),
		widget.NewFormItem("Break minutes", prefs.breakEntry),
	}
	form := dialog.NewForm("Configure Pomodoro", "OK", "Cancel", items, prefs.handleClose, prefs.parent)
	form.Resize(fyne.NewSize(300, 200))
	form.Show()
}

// SetValues replaces the raw entry text.
func (prefs *ConfigureDialog) SetValues(workMinutes, breakMinutes string) {
	prefs.workEntry.SetText(workMinutes)
	prefs.breakEntry.SetText(breakMinutes)
}

// Submit validates the entries and forwards them. Nothing is forwarded on error.
func (prefs *ConfigureDialog) Submit() error {
	workMinutes, err := model.ParseMinutes(prefs.workEntry.Text)
	if err != nil {
		return fmt.Errorf("work minutes: %w", err)
	}
	breakMinutes, err := model.ParseMinutes(prefs.breakEntry.Text)
	if err != nil {
		return fmt.Errorf("break minutes: %w", err)
	}
	if prefs.onSubmit == nil {
		return nil
	}
	return prefs.onSubmit(workMinutes, breakMinutes)
}

func (prefs *ConfigureDialog) handleClose(confirmed bool) {
	if !confirmed {
		return
	}
	if err := prefs.Submit(); err != nil {
		dialog.ShowError(userError(err), prefs.parent)
	}
}

func userError(err error) error {
	if errors.Is(err, model.ErrInvalidConfiguration) {
		return errors.New(InvalidInputMessage)
	}
	return err
}
