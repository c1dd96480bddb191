package editor

import (
	"fmt"
	"strconv"

	"kegeltimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Window handles the routine editor UI: one row per block with repeat
// count, hold seconds, and rest seconds, all clamped to a minimum of 1.
type Window struct {
	window  fyne.Window
	rows    []*blockRow
	rowList *fyne.Container
	onSave  func(model.Routine)
}

type blockRow struct {
	repeats *widget.Entry
	hold    *widget.Entry
	rest    *widget.Entry
	box     *fyne.Container
}

// New creates an editor window seeded with the given routine. onSave
// receives the replacement routine when the user confirms.
func New(app fyne.App, routine model.Routine, onSave func(model.Routine)) *Window {
	window := app.NewWindow("Edit Routine")

	editor := &Window{
		window:  window,
		rowList: container.NewVBox(),
		onSave:  onSave,
	}
	editor.setRoutine(routine)

	addButton := widget.NewButtonWithIcon("Add block", theme.ContentAddIcon(), func() {
		editor.appendRow(model.Block{
			Repeats: 1,
			Phases: []model.PhaseTemplate{
				{Type: model.PhaseHold, Seconds: 5},
				{Type: model.PhaseRest, Seconds: 5},
			},
		})
		editor.rowList.Refresh()
	})

	saveButton := widget.NewButton("Save", editor.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	header := container.NewHBox(
		widget.NewLabelWithStyle("Repeats", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Hold (sec)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Rest (sec)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)

	content := container.NewBorder(
		header,
		container.NewVBox(addButton, buttons),
		nil, nil,
		container.NewVScroll(editor.rowList),
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 420))

	return editor
}

// Show displays the editor window.
func (editor *Window) Show() {
	editor.window.Show()
	editor.window.RequestFocus()
}

// UpdateRoutine replaces the editor contents.
func (editor *Window) UpdateRoutine(routine model.Routine) {
	editor.setRoutine(routine)
	editor.rowList.Refresh()
}

func (editor *Window) setRoutine(routine model.Routine) {
	editor.rows = nil
	editor.rowList.Objects = nil
	for _, block := range routine.Blocks {
		editor.appendRow(block)
	}
	if len(editor.rows) == 0 {
		editor.appendRow(model.Block{Repeats: 1})
	}
}

func (editor *Window) appendRow(block model.Block) {
	repeats := widget.NewEntry()
	hold := widget.NewEntry()
	rest := widget.NewEntry()
	repeats.SetText(fmt.Sprintf("%d", model.ClampRepeats(block.Repeats)))
	hold.SetText(fmt.Sprintf("%d", phaseSeconds(block, model.PhaseHold)))
	rest.SetText(fmt.Sprintf("%d", phaseSeconds(block, model.PhaseRest)))

	row := &blockRow{repeats: repeats, hold: hold, rest: rest}
	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		editor.removeRow(row)
	})
	row.box = container.NewGridWithColumns(4, repeats, hold, rest, remove)

	editor.rows = append(editor.rows, row)
	editor.rowList.Add(row.box)
}

func (editor *Window) removeRow(row *blockRow) {
	for index, candidate := range editor.rows {
		if candidate == row {
			editor.rows = append(editor.rows[:index], editor.rows[index+1:]...)
			editor.rowList.Remove(row.box)
			editor.rowList.Refresh()
			return
		}
	}
}

func (editor *Window) handleSave() {
	routine := model.Routine{}
	for _, row := range editor.rows {
		block := model.Block{
			Repeats: parseClamped(row.repeats.Text),
			Phases: []model.PhaseTemplate{
				{Type: model.PhaseHold, Seconds: parseClamped(row.hold.Text)},
				{Type: model.PhaseRest, Seconds: parseClamped(row.rest.Text)},
			},
		}
		routine.Blocks = append(routine.Blocks, block)
	}

	if editor.onSave != nil {
		editor.onSave(routine)
	}
	editor.window.Hide()
}

// phaseSeconds picks the block's first phase of the given type, so a
// routine edited elsewhere still round-trips through the two-entry row.
func phaseSeconds(block model.Block, phaseType model.PhaseType) int {
	for _, phase := range block.Phases {
		if phase.Type == phaseType {
			return model.ClampSeconds(phase.Seconds)
		}
	}
	return 5
}

func parseClamped(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return 1
	}
	return parsed
}
