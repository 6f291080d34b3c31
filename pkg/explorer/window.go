package explorer

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const mainPage = "main"

var _ Prompter = (*Window)(nil)

// Window lays out the toolbar, the tree and list panes and the status bar,
// and shows dialogs on top of them.
type Window struct {
	*tview.Pages
	app  App
	ctrl *Controller
	ctx  context.Context

	layout  *tview.Flex
	toolbar *toolbar
	tree    *tree
	list    *list
	status  *statusBar

	modals []string
}

// NewWindow creates the window and makes it the prompter and error handler of ctrl.
func NewWindow(app App, ctrl *Controller) *Window {
	w := &Window{
		Pages: tview.NewPages(),
		app:   app,
		ctrl:  ctrl,
		ctx:   context.Background(),
	}
	w.toolbar = newToolbar(w)
	w.tree = newTree(w)
	w.list = newList(w)
	w.status = newStatusBar(w)

	panes := tview.NewFlex().
		AddItem(w.tree, 0, 2, false).
		AddItem(w.list, 0, 3, true)

	w.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(w.toolbar, 1, 0, false).
		AddItem(panes, 0, 1, true).
		AddItem(w.status, 1, 0, false)
	w.layout.SetInputCapture(w.inputCapture)
	w.AddPage(mainPage, w.layout, true, true)

	ctrl.SetPrompter(w)
	ctrl.SetErrorHandler(w.showError)
	ctrl.Subscribe(w.render)
	w.render(ctrl.State())
	return w
}

func (w *Window) render(s NavState) {
	w.toolbar.render(s)
	w.tree.render(s)
	w.list.render(s)
	w.status.render(s)
}

// runCommand executes cmd for the entry under the list cursor.
func (w *Window) runCommand(cmd Command) {
	w.list.selectCursor()
	err := w.ctrl.Execute(cmd)
	switch {
	case err == nil:
	case errors.Is(err, ErrNoSelection):
		w.ctrl.SetStatus(err.Error())
	case cmd == CommandOpen:
		// the controller already put the reason in the status line
	default:
		w.showError(err)
	}
}

func (w *Window) showModal(name string, p tview.Primitive, resize bool) {
	w.modals = append(w.modals, name)
	w.AddPage(name, p, resize, true)
	w.app.SetFocus(p)
}

func (w *Window) closeModal(name string) {
	for i, m := range w.modals {
		if m == name {
			w.modals = append(w.modals[:i], w.modals[i+1:]...)
			break
		}
	}
	w.RemovePage(name)
	if len(w.modals) == 0 {
		w.focusList()
	}
}

// HasModal reports whether a dialog is shown over the panes.
func (w *Window) HasModal() bool {
	return len(w.modals) > 0
}

func (w *Window) focusList() {
	w.app.SetFocus(w.list.table)
}

func (w *Window) focusTree() {
	w.app.SetFocus(w.tree.tv)
}

func (w *Window) focusAddress() {
	w.app.SetFocus(w.toolbar.address)
}

func (w *Window) cycleFocus(backwards bool) {
	order := []tview.Primitive{w.tree.tv, w.list.table, w.toolbar.address}
	current := w.app.GetFocus()
	next := 0
	for i, p := range order {
		if p == current {
			if backwards {
				next = (i + len(order) - 1) % len(order)
			} else {
				next = (i + 1) % len(order)
			}
			break
		}
	}
	w.app.SetFocus(order[next])
}

func (w *Window) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if w.status.isRenaming() {
		return event
	}
	alt := event.Modifiers()&tcell.ModAlt != 0
	switch event.Key() {
	case tcell.KeyLeft:
		if alt {
			w.ctrl.Back()
			return nil
		}
	case tcell.KeyRight:
		if alt {
			w.ctrl.Forward()
			return nil
		}
	case tcell.KeyF1:
		w.showHelp()
		return nil
	case tcell.KeyF5:
		w.ctrl.Refresh()
		return nil
	case tcell.KeyCtrlF:
		w.showFilterDialog()
		return nil
	case tcell.KeyCtrlL:
		w.focusAddress()
		return nil
	case tcell.KeyTab:
		w.cycleFocus(false)
		return nil
	case tcell.KeyBacktab:
		w.cycleFocus(true)
		return nil
	case tcell.KeyRune:
		if alt {
			switch event.Rune() {
			case 'x', 'X':
				w.app.Stop()
				return nil
			}
		}
	}
	return event
}
