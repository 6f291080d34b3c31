package explorer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	confirmPage     = "confirm"
	errorPage       = "error"
	contextMenuPage = "menu"
	filterPage      = "filter"
	helpPage        = "help"
)

// centered places p in the middle of the window with the given size.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewGrid().
		SetColumns(0, width, 0).
		SetRows(0, height, 0).
		AddItem(p, 1, 1, 1, 1, 0, 0, true)
}

// Confirm asks a yes/no question in a modal dialog.
func (w *Window) Confirm(question string, answer func(yes bool)) {
	modal := tview.NewModal().
		SetText(question).
		AddButtons([]string{"Yes", "No"})
	modal.SetBackgroundColor(currentTheme.ModalBackground)
	modal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		w.closeModal(confirmPage)
		answer(buttonLabel == "Yes")
	})
	modal.SetFocus(1)
	w.showModal(confirmPage, modal, false)
}

// AskName asks for a new name in the status line.
func (w *Window) AskName(current string, done func(name string, ok bool)) {
	w.status.askName(current, done)
}

func (w *Window) showError(err error) {
	modal := tview.NewModal().
		SetText(err.Error()).
		AddButtons([]string{"OK"})
	modal.SetBackgroundColor(currentTheme.ErrorColor)
	modal.SetDoneFunc(func(int, string) {
		w.closeModal(errorPage)
	})
	w.showModal(errorPage, modal, false)
}

func (w *Window) showContextMenu() {
	w.list.selectCursor()
	if w.ctrl.State().Selected == "" {
		w.ctrl.SetStatus(ErrNoSelection.Error())
		return
	}
	menu := tview.NewList().ShowSecondaryText(false)
	menu.SetBorder(true).SetTitle(" " + tview.Escape(baseName(w.ctrl.State().Selected)) + " ")
	for _, cmd := range Commands {
		cmd := cmd
		menu.AddItem(cmd.String(), "", commandShortcut(cmd), func() {
			w.closeModal(contextMenuPage)
			w.runCommand(cmd)
		})
	}
	menu.SetDoneFunc(func() {
		w.closeModal(contextMenuPage)
	})
	menu.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyF2 {
			w.closeModal(contextMenuPage)
			return nil
		}
		return event
	})
	w.showModal(contextMenuPage, centered(menu, 24, len(Commands)+2), true)
}

func commandShortcut(cmd Command) rune {
	switch cmd {
	case CommandOpen:
		return 'o'
	case CommandDelete:
		return 'd'
	case CommandRename:
		return 'r'
	default:
		return 0
	}
}

func (w *Window) showHelp() {
	const helpText = `Alt+Left/Right - Back / Forward
Ctrl+L - Address bar
F5 - Refresh
Ctrl+F - Filter
Enter - Open
F2 - Context menu
F6 - Rename
F8, Del - Delete
Tab - Next pane
F1 - Help
Alt+X - Exit`

	helpView := tview.NewTextView().
		SetText(helpText).
		SetTextAlign(tview.AlignLeft)
	helpView.SetBackgroundColor(currentTheme.ModalBackground)

	closeHelp := func() {
		w.closeModal(helpPage)
	}
	button := tview.NewButton("Close").SetSelectedFunc(closeHelp)
	button.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			closeHelp()
			return nil
		}
		return event
	})

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)
	flex.SetBorder(true).
		SetTitle(" nexplorer - Help ").
		SetTitleAlign(tview.AlignCenter)
	flex.SetBackgroundColor(currentTheme.ModalBackground)

	w.showModal(helpPage, centered(flex, 40, 15), true)
}
