package explorer

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/nexplorer/nexplorer/pkg/drives"
	"github.com/rivo/tview"
)

const noDriveText = "Select Network Drive"

// toolbar holds the history buttons, the address bar, the drive selector
// and the refresh and filter buttons.
type toolbar struct {
	*tview.Flex
	w       *Window
	back    *tview.Button
	forward *tview.Button
	address *tview.InputField
	drives  *tview.DropDown
	refresh *tview.Button
	filter  *tview.Button

	shownAddress string
	shownDrives  []drives.Drive
	syncing      bool
}

func newToolbar(w *Window) *toolbar {
	t := &toolbar{
		Flex:    tview.NewFlex(),
		w:       w,
		back:    tview.NewButton("◀"),
		forward: tview.NewButton("▶"),
		address: tview.NewInputField(),
		drives:  tview.NewDropDown(),
		refresh: tview.NewButton("⟳ Refresh"),
		filter:  tview.NewButton("Filter"),
	}
	t.back.SetSelectedFunc(func() { w.ctrl.Back() })
	t.forward.SetSelectedFunc(func() { w.ctrl.Forward() })
	t.refresh.SetSelectedFunc(w.ctrl.Refresh)
	t.filter.SetSelectedFunc(w.showFilterDialog)

	t.address.SetPlaceholder("Enter path or network address...")
	t.address.SetDoneFunc(t.addressDone)

	t.drives.SetLabel(" ")
	t.drives.SetTextOptions("", "", "", "", noDriveText)

	t.AddItem(t.back, 3, 0, false)
	t.AddItem(t.forward, 3, 0, false)
	t.AddItem(t.address, 0, 1, true)
	t.AddItem(t.drives, 26, 0, false)
	t.AddItem(t.refresh, 11, 0, false)
	t.AddItem(t.filter, 8, 0, false)
	return t
}

func (t *toolbar) addressDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		err := t.w.ctrl.NavigateAddress(t.address.GetText())
		if errors.Is(err, ErrPathNotFound) {
			return
		}
		t.w.focusList()
	case tcell.KeyEscape:
		t.address.SetText(t.shownAddress)
		t.w.focusList()
	}
}

func (t *toolbar) render(s NavState) {
	if s.Address != t.shownAddress {
		t.shownAddress = s.Address
		t.address.SetText(s.Address)
	}
	t.back.SetLabelColor(buttonColor(s.History.CanGoBack()))
	t.forward.SetLabelColor(buttonColor(s.History.CanGoForward()))
	if !sameDrives(s.Drives, t.shownDrives) {
		t.setDrives(s.Drives)
	}
	t.syncDrive(s.Root)
}

func buttonColor(enabled bool) tcell.Color {
	if enabled {
		return tcell.ColorWhite
	}
	return tcell.ColorGray
}

func sameDrives(a, b []drives.Drive) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (t *toolbar) setDrives(list []drives.Drive) {
	t.shownDrives = append([]drives.Drive(nil), list...)
	labels := make([]string, len(list))
	for i, d := range list {
		labels[i] = d.Label
	}
	t.syncing = true
	t.drives.SetOptions(labels, t.driveSelected)
	t.drives.SetCurrentOption(-1)
	t.syncing = false
}

// syncDrive shows the drive whose root is being displayed, if any.
func (t *toolbar) syncDrive(root string) {
	index := -1
	for i, d := range t.shownDrives {
		if d.Root == root {
			index = i
			break
		}
	}
	if current, _ := t.drives.GetCurrentOption(); current == index {
		return
	}
	t.syncing = true
	t.drives.SetCurrentOption(index)
	t.syncing = false
}

func (t *toolbar) driveSelected(_ string, index int) {
	if t.syncing || index < 0 || index >= len(t.shownDrives) {
		return
	}
	t.w.ctrl.SelectDrive(t.shownDrives[index])
}
