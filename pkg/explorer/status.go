package explorer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	statusTextPage   = "text"
	statusRenamePage = "rename"
)

// statusBar shows NavState.Status. While a rename is in progress it turns
// into an input field holding the new name.
type statusBar struct {
	*tview.Pages
	text   *tview.TextView
	rename *tview.InputField
	w      *Window
	done   func(name string, ok bool)
}

func newStatusBar(w *Window) *statusBar {
	b := &statusBar{
		Pages:  tview.NewPages(),
		text:   tview.NewTextView().SetDynamicColors(false).SetTextColor(currentTheme.StatusColor),
		rename: tview.NewInputField().SetLabel("Rename to: "),
		w:      w,
	}
	b.rename.SetDoneFunc(b.renameDone)
	b.AddPage(statusTextPage, b.text, true, true)
	b.AddPage(statusRenamePage, b.rename, true, false)
	return b
}

func (b *statusBar) render(s NavState) {
	if b.text.GetText(false) != s.Status {
		b.text.SetText(s.Status)
	}
}

func (b *statusBar) Text() string {
	return b.text.GetText(false)
}

func (b *statusBar) isRenaming() bool {
	name, _ := b.GetFrontPage()
	return name == statusRenamePage
}

// askName starts an inline rename; done is called once with the outcome.
func (b *statusBar) askName(current string, done func(name string, ok bool)) {
	b.done = done
	b.rename.SetText(current)
	b.SwitchToPage(statusRenamePage)
	b.w.app.SetFocus(b.rename)
}

func (b *statusBar) renameDone(key tcell.Key) {
	done := b.done
	b.done = nil
	b.SwitchToPage(statusTextPage)
	b.w.focusList()
	if done == nil {
		return
	}
	switch key {
	case tcell.KeyEnter:
		done(b.rename.GetText(), true)
	default:
		done("", false)
	}
}
