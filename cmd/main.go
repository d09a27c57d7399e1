package main

import (
	"log"
	"time"

	"pomodoro/internal/alert"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/mainwindow"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Pomodoro"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	fyneApp := app.NewWithID("com.pomodoro.app")
	fyneApp.SetIcon(resources.MustIcon("pomodoro.svg"))

	keeper := pomodoro.NewKeeper(settings.TimerConfig(), pomodoro.Config{TickInterval: time.Second})
	defer keeper.Close()

	player := alert.New(alert.Config{Sound: settings.Sound, Volume: settings.Volume})
	defer player.Close()

	mainWindow := mainwindow.New(fyneApp, keeper, mainwindow.Config{
		Title:  appName,
		Notify: settings.Notify,
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, appName, tray.Callbacks{
			OnToggle: keeper.Toggle,
			OnReset:  keeper.Reset,
			OnConfigure: func() {
				mainWindow.Show()
				mainWindow.ShowConfigure()
			},
			OnShow: mainWindow.Show,
			OnQuit: fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(fyneApp.Icon())
		trayManager.Render(keeper.Snapshot())
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			handleEvent(event, mainWindow, trayManager, player)
		}
	}()

	mainWindow.Show()
	fyneApp.Run()
}

func handleEvent(event pomodoro.Event, mainWindow *mainwindow.Window, trayManager *tray.Manager, player *alert.Player) {
	if event.Type == pomodoro.EventPeriodCompleted {
		if err := player.Play(event.Outcome.Started); err != nil {
			log.Printf("alert: %v", err)
		}
	}

	fyne.Do(func() {
		mainWindow.Render(event.State)
		if trayManager != nil {
			trayManager.Render(event.State)
		}
		if event.Type == pomodoro.EventPeriodCompleted {
			mainWindow.ShowPeriodCompleted(event.Outcome)
		}
	})
}
