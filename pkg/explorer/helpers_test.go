package explorer

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/nexplorer/nexplorer/pkg/drives"
	"github.com/nexplorer/nexplorer/pkg/files"
	"github.com/nexplorer/nexplorer/pkg/files/billyfile"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockStore(t *testing.T) *files.MockStore {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return files.NewMockStore(ctrl)
}

// newMemStore returns a store holding:
//
//	/docs/a.txt     10 bytes
//	/docs/b.jpg      3 bytes
//	/docs/c.txt   2000 bytes
//	/docs/.hidden
//	/docs/sub/d.txt
//	/other/
func newMemStore(t *testing.T) *billyfile.Store {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("/docs/sub", 0o755))
	require.NoError(t, fs.MkdirAll("/other", 0o755))
	require.NoError(t, util.WriteFile(fs, "/docs/a.txt", []byte("0123456789"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/docs/b.jpg", []byte("jpg"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/docs/c.txt", make([]byte, 2000), 0o644))
	require.NoError(t, util.WriteFile(fs, "/docs/.hidden", nil, 0o644))
	require.NoError(t, util.WriteFile(fs, "/docs/sub/d.txt", []byte("d"), 0o644))
	return billyfile.NewStore(fs, "memory")
}

func exists(t *testing.T, store *billyfile.Store, p string) bool {
	t.Helper()
	_, err := store.Filesystem().Stat(p)
	return err == nil
}

type fakeDrives struct {
	drives []drives.Drive
	calls  int
}

func (f *fakeDrives) List() []drives.Drive {
	f.calls++
	return f.drives
}

type fakePrompter struct {
	confirm   bool
	name      string
	ok        bool
	questions []string
	asked     []string
}

func (p *fakePrompter) Confirm(question string, answer func(yes bool)) {
	p.questions = append(p.questions, question)
	answer(p.confirm)
}

func (p *fakePrompter) AskName(current string, done func(name string, ok bool)) {
	p.asked = append(p.asked, current)
	done(p.name, p.ok)
}

func entryAt(t *testing.T, store files.Store, dir, name string) files.EntryWithDirPath {
	t.Helper()
	children, err := store.ReadDir(context.Background(), dir)
	require.NoError(t, err)
	for _, child := range children {
		if child.Name() == name {
			return files.NewEntryWithDirPath(child, dir)
		}
	}
	t.Fatalf("%s not found in %s", name, dir)
	return nil
}

func names(t *testing.T, store files.Store, dir string) []string {
	t.Helper()
	dc := files.NewDirContext(store, dir, nil)
	require.NoError(t, dc.Load(context.Background()))
	var result []string
	for _, child := range dc.Children() {
		result = append(result, child.Name())
	}
	return result
}

// testApp runs QueueUpdateDraw callbacks immediately and records focus changes.
type testApp struct {
	focused tview.Primitive
	root    tview.Primitive
	stopped bool
	mouse   bool
}

func (a *testApp) Run() error { return nil }

func (a *testApp) QueueUpdateDraw(f func()) {
	if f != nil {
		f()
	}
}

func (a *testApp) SetFocus(p tview.Primitive) {
	if a.focused != nil {
		a.focused.Blur()
	}
	a.focused = p
	if p != nil {
		p.Focus(a.SetFocus)
	}
}

func (a *testApp) GetFocus() tview.Primitive { return a.focused }

func (a *testApp) SetRoot(root tview.Primitive, _ bool) { a.root = root }

func (a *testApp) Stop() { a.stopped = true }

func (a *testApp) EnableMouse(b bool) { a.mouse = b }
