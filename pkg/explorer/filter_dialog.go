package explorer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/nexplorer/nexplorer/pkg/masks"
	"github.com/rivo/tview"
)

const (
	typeFilterLabel = "File Type Filter:"
	sizeFilterLabel = "File Size Filter:"
	presetLabel     = "Preset:"
)

// newFilterForm builds the filter dialog prefilled with spec.
// apply receives the entered texts; cancel closes the dialog.
func newFilterForm(spec FilterSpec, apply func(typeText, sizeText string), cancel func()) *tview.Form {
	form := tview.NewForm()
	typeField := tview.NewInputField().
		SetLabel(typeFilterLabel).
		SetText(spec.Pattern).
		SetPlaceholder("e.g., *.txt, *.jpg")
	sizeField := tview.NewInputField().
		SetLabel(sizeFilterLabel).
		SetText(spec.Size).
		SetPlaceholder("e.g., >1MB, <100KB")

	presets := masks.BuiltInPresets()
	presetNames := make([]string, 0, len(presets)+1)
	presetNames = append(presetNames, "(none)")
	for _, p := range presets {
		presetNames = append(presetNames, p.Name)
	}
	preset := tview.NewDropDown().SetLabel(presetLabel)
	preset.SetOptions(presetNames, func(_ string, index int) {
		if index > 0 {
			typeField.SetText(presets[index-1].Wildcard)
		}
	})

	form.AddFormItem(typeField)
	form.AddFormItem(sizeField)
	form.AddFormItem(preset)
	form.AddButton("Apply", func() {
		apply(typeField.GetText(), sizeField.GetText())
	})
	form.AddButton("Cancel", cancel)
	form.SetCancelFunc(cancel)
	form.SetBorder(true).SetTitle(" Filter Files ")
	form.SetBackgroundColor(currentTheme.ModalBackground)
	form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlF {
			cancel()
			return nil
		}
		return event
	})
	return form
}

func (w *Window) showFilterDialog() {
	closeDialog := func() {
		w.closeModal(filterPage)
	}
	form := newFilterForm(w.ctrl.State().Filter, func(typeText, sizeText string) {
		closeDialog()
		_ = w.ctrl.SetFilter(typeText, sizeText)
	}, closeDialog)
	w.showModal(filterPage, centered(form, 56, 11), true)
}
