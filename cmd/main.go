package main

import (
	"fmt"
	"log"
	"time"

	"kegeltimer/internal/core/model"
	"kegeltimer/internal/core/session"
	"kegeltimer/internal/platform"
	"kegeltimer/internal/storage"
	"kegeltimer/internal/ui/editor"
	"kegeltimer/internal/ui/player"
	"kegeltimer/internal/ui/tray"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "KegelTimer"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.kegeltimer.app")

	routine, err := storage.LoadRoutine(appName)
	if err != nil {
		log.Printf("load routine: %v (using bundled default)", err)
	}

	engine := session.New(routine, session.Config{TickInterval: time.Second})
	engine.SetHaptics(platform.NewFeedbackProvider())

	playerWindow := player.New(fyneApp)

	editorWindow := editor.New(fyneApp, routine, func(updated model.Routine) {
		if err := storage.SaveRoutine(appName, updated); err != nil {
			log.Printf("save routine: %v", err)
		}
		engine.Load(updated)
	})

	playerWindow.SetOnToggle(engine.Toggle)
	playerWindow.SetOnReset(engine.Reset)
	playerWindow.SetOnEdit(editorWindow.Show)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnOpen:   playerWindow.Show,
			OnToggle: engine.Toggle,
			OnReset:  engine.Reset,
			OnEdit:   editorWindow.Show,
			OnQuit: func() {
				engine.Stop()
				fyneApp.Quit()
			},
		})
		// With a tray present, closing the timer window only hides it.
		playerWindow.SetCloseIntercept(func() {
			playerWindow.Hide()
		})
	}

	events := engine.Subscribe(8)
	go func() {
		for range events {
			snapshot := engine.Snapshot()
			playerWindow.Apply(snapshot)
			if trayManager != nil {
				trayManager.SetState(snapshot.State)
				trayManager.SetStatus(statusLine(snapshot))
			}
		}
	}()

	playerWindow.Apply(engine.Snapshot())
	playerWindow.Show()
	fyneApp.Run()
	engine.Stop()
}

func statusLine(snapshot session.Snapshot) string {
	switch snapshot.State {
	case session.StateRunning:
		return fmt.Sprintf("%s %s, set %d/%d",
			snapshot.Phase.Type.Label(),
			session.FormatSeconds(snapshot.Remaining),
			snapshot.Phase.SetIndex,
			snapshot.TotalSets)
	case session.StatePaused:
		return "paused"
	case session.StateComplete:
		return "session complete"
	default:
		return "ready"
	}
}
