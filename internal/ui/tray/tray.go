package tray

import (
	"fmt"

	"kegeltimer/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnOpen   func()
	OnToggle func()
	OnReset  func()
	OnEdit   func()
	OnQuit   func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	resetItem   *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: ready", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.statusLabel)
	manager.refreshMenu()
}

// SetState updates the toggle entry to match playback state.
func (manager *Manager) SetState(state session.State) {
	switch state {
	case session.StateRunning:
		manager.toggleItem.Label = "Pause"
	case session.StatePaused:
		manager.toggleItem.Label = "Resume"
	default:
		manager.toggleItem.Label = "Start"
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Kegel Timer",
		manager.statusItem,
		fyne.NewMenuItem("Open timer", func() {
			if manager.callbacks.OnOpen != nil {
				manager.callbacks.OnOpen()
			}
		}),
		fyne.NewMenuItem("Edit routine", func() {
			if manager.callbacks.OnEdit != nil {
				manager.callbacks.OnEdit()
			}
		}),
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
