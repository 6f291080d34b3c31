package explorer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/nexplorer/nexplorer/pkg/files"
	"github.com/nexplorer/nexplorer/pkg/tui"
	"github.com/rivo/tview"
)

// list shows the entries of NavState.Current with the filter applied.
type list struct {
	*tui.Boxed
	table *tview.Table
	w     *Window
	rows  *FileRows

	dir     string
	rev     int
	filter  FilterSpec
	syncing bool
}

func newList(w *Window) *list {
	table := tview.NewTable()
	l := &list{
		table: table,
		w:     w,
		Boxed: tui.NewBoxed(table),
	}
	l.SetTitle("Files")
	table.SetSelectable(true, false)
	table.SetFixed(1, 0)
	table.SetSelectionChangedFunc(l.selectionChanged)
	table.SetSelectedFunc(func(row, _ int) {
		l.w.runCommand(CommandOpen)
	})
	table.SetInputCapture(l.inputCapture)
	table.SetMouseCapture(l.mouseCapture)
	table.SetFocusFunc(l.focus)
	table.SetBlurFunc(l.blur)
	l.blur()
	return l
}

func (l *list) focus() {
	l.table.SetSelectedStyle(currentTheme.FocusedSelectedTextStyle)
}

func (l *list) blur() {
	l.table.SetSelectedStyle(currentTheme.BlurredSelectedTextStyle)
}

func (l *list) render(s NavState) {
	if s.Current == "" {
		return
	}
	if s.Current != l.dir || s.Revision != l.rev || s.Filter != l.filter {
		l.reload(s)
	}
	l.syncSelection(s.Selected)
}

func (l *list) reload(s NavState) {
	l.dir, l.rev, l.filter = s.Current, s.Revision, s.Filter
	dc := files.NewDirContext(l.w.ctrl.ListStore(), s.Current, nil)
	err := dc.Load(l.w.ctx)
	if err != nil {
		l.w.ctrl.o.logger.Printf("list %s: %v", s.Current, err)
	}
	l.rows = NewFileRows(dc, err)
	l.syncing = true
	l.table.SetContent(l.rows)
	l.table.Select(1, 0)
	l.table.ScrollToBeginning()
	l.syncing = false
	l.SetTitle(tview.Escape(s.Current))
	l.SetFooter(l.footerText(s.Filter))
}

func (l *list) footerText(spec FilterSpec) string {
	var text string
	if l.rows.Err == nil {
		text = fmt.Sprintf("%d entries", len(l.rows.Entries))
	}
	if spec.Pattern != "" {
		text += " | filter: " + tview.Escape(spec.Pattern)
	}
	return text
}

// syncSelection moves the cursor to the selected entry without reporting it back.
func (l *list) syncSelection(selected string) {
	if l.rows == nil || selected == "" {
		return
	}
	row := l.rows.RowOf(selected)
	if row < 0 {
		return
	}
	if current, _ := l.table.GetSelection(); current == row {
		return
	}
	l.syncing = true
	l.table.Select(row, 0)
	l.syncing = false
}

func (l *list) selectionChanged(row, _ int) {
	if l.syncing || l.rows == nil {
		return
	}
	if entry := l.rows.EntryAt(row); entry != nil {
		l.w.ctrl.Select(entry)
	} else {
		l.w.ctrl.ClearSelection()
	}
}

// selectCursor makes sure the controller acts on the entry under the cursor.
func (l *list) selectCursor() {
	if l.rows == nil {
		return
	}
	row, _ := l.table.GetSelection()
	entry := l.rows.EntryAt(row)
	if entry == nil {
		return
	}
	if entry.FullName() != l.w.ctrl.State().Selected {
		l.w.ctrl.Select(entry)
	}
}

func (l *list) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyF2:
		l.w.showContextMenu()
		return nil
	case tcell.KeyDelete, tcell.KeyF8:
		l.w.runCommand(CommandDelete)
		return nil
	case tcell.KeyF6:
		l.w.runCommand(CommandRename)
		return nil
	case tcell.KeyLeft:
		l.w.focusTree()
		return nil
	default:
		return event
	}
}

func (l *list) mouseCapture(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseRightClick {
		return action, event
	}
	x, y := event.Position()
	if row, _ := l.table.CellAt(x, y); row > 0 {
		l.table.Select(row, 0)
	}
	l.w.app.SetFocus(l.table)
	l.w.showContextMenu()
	return tview.MouseConsumed, nil
}
