package player

import (
	"fmt"
	"image/color"

	"kegeltimer/internal/core/model"
	"kegeltimer/internal/core/session"
	"kegeltimer/internal/ui/ring"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Window is the playback face: countdown ring, phase and set labels, and
// the toggle/reset corner buttons.
type Window struct {
	window       fyne.Window
	ring         *ring.Ring
	timeLabel    *canvas.Text
	phaseLabel   *canvas.Text
	setLabel     *canvas.Text
	sessionLabel *canvas.Text
	toggleButton *widget.Button
	resetButton  *widget.Button
	editButton   *widget.Button
	onToggle     func()
	onReset      func()
	onEdit       func()
}

// New creates the playback window.
func New(app fyne.App) *Window {
	window := app.NewWindow("Kegel Timer")

	timeLabel := canvas.NewText("0s", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Bold: true}
	timeLabel.TextSize = 34

	phaseLabel := canvas.NewText("Ready", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	phaseLabel.TextSize = 20

	setLabel := canvas.NewText("", color.NRGBA{R: 200, G: 200, B: 205, A: 255})
	setLabel.Alignment = fyne.TextAlignCenter
	setLabel.TextSize = 14

	sessionLabel := canvas.NewText("", color.NRGBA{R: 200, G: 200, B: 205, A: 255})
	sessionLabel.Alignment = fyne.TextAlignCenter
	sessionLabel.TextSize = 14

	countdownRing := ring.New(model.PhaseHold.Tint())

	face := &Window{
		window:       window,
		ring:         countdownRing,
		timeLabel:    timeLabel,
		phaseLabel:   phaseLabel,
		setLabel:     setLabel,
		sessionLabel: sessionLabel,
	}

	face.toggleButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		if face.onToggle != nil {
			face.onToggle()
		}
	})
	face.resetButton = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		if face.onReset != nil {
			face.onReset()
		}
	})
	face.editButton = widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if face.onEdit != nil {
			face.onEdit()
		}
	})

	dial := container.NewStack(
		countdownRing.Object(),
		container.NewCenter(container.NewVBox(phaseLabel, timeLabel)),
	)
	labels := container.NewVBox(setLabel, sessionLabel)
	buttons := container.NewHBox(face.resetButton, face.toggleButton, face.editButton)

	window.SetContent(container.NewBorder(
		nil,
		container.NewVBox(labels, container.NewCenter(buttons)),
		nil, nil,
		dial,
	))
	window.Resize(fyne.NewSize(260, 340))

	return face
}

// Show displays the playback window.
func (face *Window) Show() {
	face.window.Show()
	face.window.RequestFocus()
}

// Hide hides the playback window.
func (face *Window) Hide() {
	face.window.Hide()
}

// SetCloseIntercept forwards a close handler to the underlying window.
func (face *Window) SetCloseIntercept(handler func()) {
	face.window.SetCloseIntercept(handler)
}

// SetOnToggle sets the start/pause handler.
func (face *Window) SetOnToggle(handler func()) {
	face.onToggle = handler
}

// SetOnReset sets the reset handler.
func (face *Window) SetOnReset(handler func()) {
	face.onReset = handler
}

// SetOnEdit sets the routine-editor handler.
func (face *Window) SetOnEdit(handler func()) {
	face.onEdit = handler
}

// Apply refreshes every display element from a snapshot. Safe to call
// from any goroutine.
func (face *Window) Apply(snapshot session.Snapshot) {
	fyne.Do(func() {
		face.applyUnsafe(snapshot)
	})
}

func (face *Window) applyUnsafe(snapshot session.Snapshot) {
	face.timeLabel.Text = session.FormatSeconds(snapshot.DisplaySeconds)
	face.phaseLabel.Text = phaseHeading(snapshot)
	face.setLabel.Text = setCaption(snapshot)
	face.sessionLabel.Text = fmt.Sprintf("%s / %s",
		session.FormatSeconds(snapshot.ElapsedSeconds),
		session.FormatSeconds(snapshot.SessionSeconds))

	face.ring.SetTint(snapshot.Phase.Type.Tint())
	face.ring.SetProgress(snapshot.Progress)

	if snapshot.State == session.StateRunning {
		face.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		face.toggleButton.SetIcon(theme.MediaPlayIcon())
	}

	face.timeLabel.Refresh()
	face.phaseLabel.Refresh()
	face.setLabel.Refresh()
	face.sessionLabel.Refresh()
}

func phaseHeading(snapshot session.Snapshot) string {
	switch {
	case snapshot.PhaseCount == 0:
		return "No routine"
	case snapshot.State == session.StateComplete:
		return "Done!"
	case !snapshot.Started:
		return "Ready"
	default:
		return snapshot.Phase.Type.Label()
	}
}

func setCaption(snapshot session.Snapshot) string {
	if snapshot.PhaseCount == 0 {
		return ""
	}
	currentSet := snapshot.Phase.SetIndex
	if snapshot.State == session.StateComplete {
		currentSet = snapshot.TotalSets
	}
	return fmt.Sprintf("Set %d of %d", currentSet, snapshot.TotalSets)
}
