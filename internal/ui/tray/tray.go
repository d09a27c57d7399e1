package tray

import (
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/ui/display"

	"fyne.io/fyne/v2"
)

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle    func()
	OnReset     func()
	OnConfigure func()
	OnShow      func()
	OnQuit      func()
}

// Manager mirrors timer state into the system tray menu.
type Manager struct {
	host       MenuHost
	title      string
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	items      []*fyne.MenuItem
}

// New creates a tray manager with the provided callbacks.
func New(host MenuHost, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:  host,
		title: title,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem(display.ToggleLabel(pomodoro.StatusNotStarted), callback(callbacks.OnToggle))

	manager.items = []*fyne.MenuItem{
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", callback(callbacks.OnReset)),
		fyne.NewMenuItem("Configure...", callback(callbacks.OnConfigure)),
		fyne.NewMenuItem("Show window", callback(callbacks.OnShow)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", callback(callbacks.OnQuit)),
	}
	manager.refreshMenu()

	return manager
}

// Render updates the status line and the toggle label.
func (manager *Manager) Render(state pomodoro.State) {
	manager.statusItem.Label = "Status: " + display.Status(state)
	manager.toggleItem.Label = display.ToggleLabel(state.Status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(fyne.NewMenu(manager.title, manager.items...))
	}
}

func callback(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}
