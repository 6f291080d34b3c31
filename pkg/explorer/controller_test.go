package explorer

import (
	"bytes"
	"errors"
	"log"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/nexplorer/nexplorer/pkg/drives"
	"github.com/nexplorer/nexplorer/pkg/files"
	"github.com/nexplorer/nexplorer/pkg/nxconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestController(t *testing.T, store files.Store, o ...Option) *Controller {
	t.Helper()
	o = append([]Option{WithDrives(&fakeDrives{})}, o...)
	return NewController(store, o...)
}

func TestController_NavigateAddress(t *testing.T) {
	t.Run("existing_path", func(t *testing.T) {
		c := newTestController(t, newMemStore(t))
		var notified []NavState
		c.Subscribe(func(s NavState) { notified = append(notified, s) })

		require.NoError(t, c.NavigateAddress(" /docs "))
		s := c.State()
		assert.Equal(t, "/docs", s.Root)
		assert.Equal(t, "/docs", s.Current)
		assert.Equal(t, "/docs", s.Address)
		assert.Equal(t, []string{"/docs"}, s.History.Entries)
		assert.Equal(t, 0, s.History.Cursor)
		assert.Len(t, notified, 1)
	})

	t.Run("non_existent_path_changes_nothing", func(t *testing.T) {
		c := newTestController(t, newMemStore(t))
		require.NoError(t, c.NavigateAddress("/docs"))
		before := c.State()

		err := c.NavigateAddress("/no/such/dir")
		assert.ErrorIs(t, err, ErrPathNotFound)
		s := c.State()
		assert.Equal(t, before.Root, s.Root)
		assert.Equal(t, before.Current, s.Current)
		assert.Equal(t, []string{"/docs"}, s.History.Entries)
		assert.Equal(t, "Path not found: /no/such/dir", s.Status)
	})

	t.Run("empty_text", func(t *testing.T) {
		c := newTestController(t, newMockStore(t))
		assert.ErrorIs(t, c.NavigateAddress("  "), ErrPathNotFound)
		assert.Empty(t, c.State().History.Entries)
	})

	t.Run("unc_path_is_not_checked", func(t *testing.T) {
		store := newMockStore(t)
		c := newTestController(t, store)
		require.NoError(t, c.NavigateAddress(`\\server\share`))
		assert.Equal(t, `\\server\share`, c.State().Current)
		require.NoError(t, c.NavigateAddress("//server/share"))
		assert.Equal(t, []string{`\\server\share`, "//server/share"}, c.State().History.Entries)
	})

	t.Run("home_is_expanded", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("home comes from USERPROFILE on windows")
		}
		t.Setenv("HOME", "/docs")
		c := newTestController(t, newMemStore(t))
		require.NoError(t, c.NavigateAddress("~/sub"))
		assert.Equal(t, "/docs/sub", c.State().Current)
	})
}

func TestController_Start(t *testing.T) {
	lister := &fakeDrives{drives: []drives.Drive{{Root: `C:\`, Label: `C:\ (C:\)`}}}
	c := NewController(newMemStore(t), WithDrives(lister))
	require.NoError(t, c.Start("/docs"))
	s := c.State()
	assert.Equal(t, lister.drives, s.Drives)
	assert.Equal(t, "/docs", s.Current)
	assert.Equal(t, []string{"/docs"}, s.History.Entries)
	assert.Equal(t, 1, lister.calls)
}

func TestController_SelectDrive(t *testing.T) {
	drive := drives.Drive{Root: `D:\`, Label: `D:\ (D:\)`}

	t.Run("not_recorded_by_default", func(t *testing.T) {
		c := newTestController(t, newMemStore(t))
		require.NoError(t, c.NavigateAddress("/docs"))
		c.SelectDrive(drive)
		s := c.State()
		assert.Equal(t, `D:\`, s.Root)
		assert.Equal(t, `D:\`, s.Current)
		assert.Equal(t, `D:\`, s.Address)
		assert.Equal(t, []string{"/docs"}, s.History.Entries)
	})

	t.Run("recorded_when_enabled", func(t *testing.T) {
		c := newTestController(t, newMemStore(t), WithRecordDrives(true))
		c.SelectDrive(drive)
		assert.Equal(t, []string{`D:\`}, c.State().History.Entries)
	})

	t.Run("empty_root_is_ignored", func(t *testing.T) {
		c := newTestController(t, newMemStore(t))
		c.SelectDrive(drives.Drive{})
		assert.Equal(t, "", c.State().Root)
	})
}

func TestController_SelectTreeNode(t *testing.T) {
	c := newTestController(t, newMemStore(t))
	require.NoError(t, c.NavigateAddress("/docs"))
	c.SelectTreeNode("/docs/sub")
	s := c.State()
	assert.Equal(t, "/docs", s.Root)
	assert.Equal(t, "/docs/sub", s.Current)
	assert.Equal(t, "/docs/sub", s.Address)
	assert.Contains(t, s.Status, "Selected: sub")
	assert.Equal(t, []string{"/docs", "/docs/sub"}, s.History.Entries)

	c.SelectTreeNode("")
	assert.Equal(t, "/docs/sub", c.State().Current)
}

func TestController_BackForward(t *testing.T) {
	c := newTestController(t, newMemStore(t))
	assert.False(t, c.Back())
	assert.False(t, c.Forward())

	require.NoError(t, c.NavigateAddress("/docs"))
	c.SelectTreeNode("/docs/sub")
	require.NoError(t, c.NavigateAddress("/other"))
	entries := []string{"/docs", "/docs/sub", "/other"}

	assert.True(t, c.Back())
	s := c.State()
	assert.Equal(t, "/docs/sub", s.Current)
	assert.Equal(t, "/docs/sub", s.Root)
	assert.Equal(t, entries, s.History.Entries)
	assert.Equal(t, 1, s.History.Cursor)

	assert.True(t, c.Back())
	assert.False(t, c.Back())
	assert.Equal(t, 0, c.State().History.Cursor)

	assert.True(t, c.Forward())
	assert.True(t, c.Forward())
	assert.False(t, c.Forward())
	s = c.State()
	assert.Equal(t, "/other", s.Current)
	assert.Equal(t, entries, s.History.Entries)
	assert.Equal(t, 2, s.History.Cursor)

	// a new visit after going back drops the forward entries
	assert.True(t, c.Back())
	c.SelectTreeNode("/docs")
	assert.Equal(t, []string{"/docs", "/docs/sub", "/docs"}, c.State().History.Entries)
}

func TestController_Refresh(t *testing.T) {
	lister := &fakeDrives{}
	c := NewController(newMemStore(t), WithDrives(lister))
	require.NoError(t, c.NavigateAddress("/docs"))
	c.SelectTreeNode("/docs/sub")
	c.Select(entryAt(t, c.Store(), "/docs/sub", "d.txt"))
	before := c.State()

	lister.drives = []drives.Drive{{Root: `Z:\`, Label: `Z:\ (Z:\)`, Kind: drives.KindNetwork}}
	c.Refresh()
	s := c.State()
	assert.Equal(t, "/", s.Root)
	assert.Equal(t, "/docs/sub", s.Current)
	assert.Equal(t, "/docs/sub/d.txt", s.Selected)
	assert.Equal(t, before.History, s.History)
	assert.Equal(t, lister.drives, s.Drives)
	assert.Equal(t, before.Revision+1, s.Revision)

	c.Reload()
	assert.Equal(t, before.Revision+2, c.State().Revision)
}

func TestController_Select(t *testing.T) {
	modified := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("status_line", func(t *testing.T) {
		c := newTestController(t, newMockStore(t))
		entry := files.NewEntryWithDirPath(
			files.NewDirEntry("report.pdf", false, files.Size(1234), files.ModTime(modified)), "/docs")
		c.Select(entry)
		s := c.State()
		assert.Equal(t, "/docs/report.pdf", s.Selected)
		assert.Equal(t, "Selected: report.pdf | Size: 1234 bytes | Modified: Tue Jan 2 03:04:05 2024", s.Status)
	})

	t.Run("custom_time_format", func(t *testing.T) {
		c := newTestController(t, newMockStore(t), WithTimeFormat("2006-01-02"))
		entry := files.NewEntryWithDirPath(
			files.NewDirEntry("a.txt", false, files.Size(1), files.ModTime(modified)), "/docs")
		c.Select(entry)
		assert.Equal(t, "Selected: a.txt | Size: 1 bytes | Modified: 2024-01-02", c.State().Status)
	})

	t.Run("nil_entry", func(t *testing.T) {
		c := newTestController(t, newMockStore(t))
		c.SetStatus("before")
		c.Select(nil)
		assert.Equal(t, "before", c.State().Status)
		assert.Equal(t, "", c.State().Selected)
	})

	t.Run("unreadable_info_keeps_status", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().Stat(gomock.Any(), "/docs/gone.txt").Return(nil, os.ErrNotExist)
		c := newTestController(t, store)
		c.SetStatus("before")
		c.Select(files.NewEntryWithDirPath(files.NewDirEntry("gone.txt", false), "/docs"))
		assert.Equal(t, "before", c.State().Status)
		assert.Equal(t, "/docs/gone.txt", c.State().Selected)

		c.ClearSelection()
		assert.Equal(t, "", c.State().Selected)
	})
}

func TestController_ExecuteWithoutSelection(t *testing.T) {
	c := newTestController(t, newMockStore(t))
	for _, cmd := range Commands {
		assert.ErrorIs(t, c.Execute(cmd), ErrNoSelection, cmd.String())
	}
}

func TestController_ExecuteUnknownCommand(t *testing.T) {
	c := newTestController(t, newMockStore(t))
	c.Select(files.NewEntryWithDirPath(files.NewDirEntry("a.txt", false, files.Size(1)), "/docs"))
	err := c.Execute(Command(42))
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "Command(42)")
}

func TestController_Open(t *testing.T) {
	t.Run("file_uses_launcher", func(t *testing.T) {
		var opened []string
		store := newMemStore(t)
		c := newTestController(t, store, WithOpener(func(p string) error {
			opened = append(opened, p)
			return nil
		}))
		require.NoError(t, c.NavigateAddress("/docs"))
		c.Select(entryAt(t, store, "/docs", "a.txt"))
		require.NoError(t, c.Execute(CommandOpen))
		assert.Equal(t, []string{"/docs/a.txt"}, opened)
		assert.Equal(t, "Opened: a.txt", c.State().Status)
	})

	t.Run("launcher_error", func(t *testing.T) {
		openErr := errors.New("no application")
		store := newMemStore(t)
		c := newTestController(t, store, WithOpener(func(string) error { return openErr }))
		c.Select(entryAt(t, store, "/docs", "a.txt"))
		assert.ErrorIs(t, c.Execute(CommandOpen), openErr)
		assert.Equal(t, "Cannot open a.txt: no application", c.State().Status)
	})

	t.Run("directory_is_entered", func(t *testing.T) {
		store := newMemStore(t)
		c := newTestController(t, store, WithOpener(func(string) error {
			t.Fatal("launcher must not be used for directories")
			return nil
		}))
		require.NoError(t, c.NavigateAddress("/docs"))
		c.Select(entryAt(t, store, "/docs", "sub"))
		require.NoError(t, c.Execute(CommandOpen))
		assert.Equal(t, "/docs/sub", c.State().Current)
		assert.Equal(t, []string{"/docs", "/docs/sub"}, c.State().History.Entries)
	})
}

func TestController_Delete(t *testing.T) {
	t.Run("declined_keeps_entry", func(t *testing.T) {
		store := newMemStore(t)
		prompter := &fakePrompter{confirm: false}
		c := newTestController(t, store, WithPrompter(prompter))
		require.NoError(t, c.NavigateAddress("/docs"))
		c.Select(entryAt(t, store, "/docs", "a.txt"))
		rev := c.State().Revision

		require.NoError(t, c.Execute(CommandDelete))
		assert.Equal(t, []string{"Are you sure you want to delete /docs/a.txt?"}, prompter.questions)
		assert.True(t, exists(t, store, "/docs/a.txt"))
		assert.Equal(t, rev, c.State().Revision)
		assert.Equal(t, "/docs/a.txt", c.State().Selected)
	})

	t.Run("declined_issues_no_delete_call", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
		c := newTestController(t, store, WithPrompter(&fakePrompter{confirm: false}))
		c.Select(files.NewEntryWithDirPath(files.NewDirEntry("a.txt", false, files.Size(1)), "/docs"))
		require.NoError(t, c.Execute(CommandDelete))
	})

	t.Run("confirmed_removes_entry", func(t *testing.T) {
		store := newMemStore(t)
		c := newTestController(t, store, WithPrompter(&fakePrompter{confirm: true}))
		require.NoError(t, c.NavigateAddress("/docs"))
		c.Select(entryAt(t, store, "/docs", "a.txt"))
		rev := c.State().Revision

		require.NoError(t, c.Execute(CommandDelete))
		assert.False(t, exists(t, store, "/docs/a.txt"))
		s := c.State()
		assert.Equal(t, "", s.Selected)
		assert.Equal(t, "Deleted: a.txt", s.Status)
		assert.Equal(t, rev+1, s.Revision)
	})

	t.Run("failure_goes_to_error_handler", func(t *testing.T) {
		deleteErr := errors.New("permission denied")
		store := newMockStore(t)
		store.EXPECT().Delete(gomock.Any(), "/docs/a.txt").Return(deleteErr)
		var logged bytes.Buffer
		var handled []error
		c := newTestController(t, store,
			WithPrompter(&fakePrompter{confirm: true}),
			WithErrorHandler(func(err error) { handled = append(handled, err) }),
			WithLogger(log.New(&logged, "", 0)),
		)
		c.Select(files.NewEntryWithDirPath(files.NewDirEntry("a.txt", false, files.Size(1)), "/docs"))
		require.NoError(t, c.Execute(CommandDelete))
		require.Len(t, handled, 1)
		assert.ErrorIs(t, handled[0], deleteErr)
		assert.Contains(t, handled[0].Error(), "failed to delete /docs/a.txt")
		assert.Contains(t, logged.String(), "permission denied")
	})

	t.Run("no_prompter", func(t *testing.T) {
		c := newTestController(t, newMockStore(t))
		c.Select(files.NewEntryWithDirPath(files.NewDirEntry("a.txt", false, files.Size(1)), "/docs"))
		assert.ErrorIs(t, c.Execute(CommandDelete), ErrNoPrompter)
		assert.ErrorIs(t, c.Execute(CommandRename), ErrNoPrompter)
	})
}

func TestController_Rename(t *testing.T) {
	t.Run("renames_entry", func(t *testing.T) {
		store := newMemStore(t)
		prompter := &fakePrompter{name: " z.txt ", ok: true}
		c := newTestController(t, store, WithPrompter(prompter))
		require.NoError(t, c.NavigateAddress("/docs"))
		c.Select(entryAt(t, store, "/docs", "a.txt"))

		require.NoError(t, c.Execute(CommandRename))
		assert.Equal(t, []string{"a.txt"}, prompter.asked)
		assert.False(t, exists(t, store, "/docs/a.txt"))
		assert.True(t, exists(t, store, "/docs/z.txt"))
		s := c.State()
		assert.Equal(t, "/docs/z.txt", s.Selected)
		assert.Equal(t, "Renamed: a.txt -> z.txt", s.Status)
	})

	for _, tt := range []struct {
		name   string
		answer fakePrompter
	}{
		{name: "empty_name", answer: fakePrompter{name: "", ok: true}},
		{name: "blank_name", answer: fakePrompter{name: "   ", ok: true}},
		{name: "cancelled", answer: fakePrompter{name: "b.txt", ok: false}},
		{name: "same_name", answer: fakePrompter{name: "a.txt", ok: true}},
	} {
		t.Run(tt.name+"_issues_no_rename_call", func(t *testing.T) {
			store := newMockStore(t)
			store.EXPECT().Rename(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			prompter := tt.answer
			c := newTestController(t, store, WithPrompter(&prompter))
			c.Select(files.NewEntryWithDirPath(files.NewDirEntry("a.txt", false, files.Size(1)), "/docs"))
			require.NoError(t, c.Execute(CommandRename))
		})
	}

	t.Run("name_with_separator", func(t *testing.T) {
		store := newMockStore(t)
		var handled []error
		c := newTestController(t, store,
			WithPrompter(&fakePrompter{name: "../x.txt", ok: true}),
			WithErrorHandler(func(err error) { handled = append(handled, err) }),
		)
		c.Select(files.NewEntryWithDirPath(files.NewDirEntry("a.txt", false, files.Size(1)), "/docs"))
		require.NoError(t, c.Execute(CommandRename))
		require.Len(t, handled, 1)
		assert.ErrorIs(t, handled[0], ErrInvalidName)
	})

	t.Run("target_exists", func(t *testing.T) {
		store := newMemStore(t)
		var handled []error
		c := newTestController(t, store,
			WithPrompter(&fakePrompter{name: "c.txt", ok: true}),
			WithErrorHandler(func(err error) { handled = append(handled, err) }),
		)
		c.Select(entryAt(t, store, "/docs", "a.txt"))
		require.NoError(t, c.Execute(CommandRename))
		require.Len(t, handled, 1)
		assert.ErrorIs(t, handled[0], os.ErrExist)
		assert.True(t, exists(t, store, "/docs/a.txt"))
		assert.Equal(t, "/docs/a.txt", c.State().Selected)
	})
}

func TestController_SetFilter(t *testing.T) {
	t.Run("wildcard_filters_files", func(t *testing.T) {
		c := newTestController(t, newMemStore(t))
		require.NoError(t, c.SetFilter("*.txt", ""))
		assert.Equal(t, []string{"sub", "a.txt", "c.txt"}, names(t, c.ListStore(), "/docs"))
		s := c.State()
		assert.Equal(t, FilterSpec{Pattern: "*.txt"}, s.Filter)
		assert.Equal(t, "Filter: *.txt", s.Status)
	})

	t.Run("several_wildcards", func(t *testing.T) {
		c := newTestController(t, newMemStore(t))
		require.NoError(t, c.SetFilter("*.jpg, a.*", ""))
		assert.Equal(t, []string{"sub", "a.txt", "b.jpg"}, names(t, c.ListStore(), "/docs"))
	})

	t.Run("cleared", func(t *testing.T) {
		c := newTestController(t, newMemStore(t))
		require.NoError(t, c.SetFilter("*.txt", ""))
		require.NoError(t, c.SetFilter("", ""))
		assert.Equal(t, []string{"sub", "a.txt", "b.jpg", "c.txt"}, names(t, c.ListStore(), "/docs"))
		assert.Equal(t, "Filter cleared", c.State().Status)
		assert.True(t, c.State().Filter.IsEmpty())
	})

	t.Run("hidden_shown_when_configured", func(t *testing.T) {
		c := newTestController(t, newMemStore(t), WithShowHidden(true))
		assert.Contains(t, names(t, c.ListStore(), "/docs"), ".hidden")
	})

	t.Run("size_stored_but_ignored_by_default", func(t *testing.T) {
		c := newTestController(t, newMemStore(t))
		require.NoError(t, c.SetFilter("*.txt", ">1KB"))
		assert.Equal(t, FilterSpec{Pattern: "*.txt", Size: ">1KB"}, c.State().Filter)
		assert.Equal(t, []string{"sub", "a.txt", "c.txt"}, names(t, c.ListStore(), "/docs"))
		assert.True(t, c.Filter().Size.IsZero())
	})

	t.Run("size_applied_when_enabled", func(t *testing.T) {
		c := newTestController(t, newMemStore(t), WithApplySize(true))
		require.NoError(t, c.SetFilter("*.txt", ">1KB"))
		assert.Equal(t, []string{"sub", "c.txt"}, names(t, c.ListStore(), "/docs"))
	})

	t.Run("invalid_size_keeps_type_filter", func(t *testing.T) {
		c := newTestController(t, newMemStore(t), WithApplySize(true))
		require.NoError(t, c.SetFilter("*.jpg", ">lots"))
		assert.Equal(t, []string{"sub", "b.jpg"}, names(t, c.ListStore(), "/docs"))
		assert.Contains(t, c.State().Status, "Invalid size filter")
	})

	t.Run("invalid_wildcard", func(t *testing.T) {
		c := newTestController(t, newMemStore(t))
		assert.Error(t, c.SetFilter("[z-a]", ""))
		assert.True(t, c.State().Filter.IsEmpty())
		assert.Contains(t, c.State().Status, "Invalid type filter")
	})
}

func TestController_TreeStoreListsVisibleDirsOnly(t *testing.T) {
	c := newTestController(t, newMemStore(t))
	assert.Equal(t, []string{"sub"}, names(t, c.TreeStore(), "/docs"))
	assert.Equal(t, []string{"docs", "other"}, names(t, c.TreeStore(), "/"))
}

func TestController_NotifyDeliversLatestState(t *testing.T) {
	c := newTestController(t, newMemStore(t))
	var first, second []string
	c.Subscribe(func(s NavState) {
		first = append(first, s.Status)
		if s.Status == "" && s.Current == "/docs" {
			c.SetStatus("from subscriber")
		}
	})
	c.Subscribe(func(s NavState) {
		second = append(second, s.Status)
	})
	require.NoError(t, c.NavigateAddress("/docs"))
	assert.Equal(t, []string{"", "from subscriber"}, first)
	assert.Equal(t, []string{"", "from subscriber"}, second)
}

func TestController_StateIsACopy(t *testing.T) {
	c := newTestController(t, newMemStore(t))
	require.NoError(t, c.NavigateAddress("/docs"))
	s := c.State()
	s.History.Entries[0] = "/mutated"
	assert.Equal(t, []string{"/docs"}, c.State().History.Entries)
}

func TestWithConfig(t *testing.T) {
	o := defaultOptions()
	WithConfig(&nxconfig.Config{
		UI:      nxconfig.UIConfig{ShowHidden: true, TimeFormat: "15:04"},
		Filter:  nxconfig.FilterConfig{ApplySize: true},
		History: nxconfig.HistoryConfig{RecordDrives: true},
	})(&o)
	assert.True(t, o.showHidden)
	assert.True(t, o.applySize)
	assert.True(t, o.recordDrives)
	assert.Equal(t, "15:04", o.timeFormat)

	WithConfig(nil)(&o)
	WithTimeFormat("")(&o)
	WithLogger(nil)(&o)
	assert.Equal(t, "15:04", o.timeFormat)
	assert.NotNil(t, o.logger)
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "Open", CommandOpen.String())
	assert.Equal(t, "Delete", CommandDelete.String())
	assert.Equal(t, "Rename", CommandRename.String())
	assert.Equal(t, "Command(7)", Command(7).String())
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "a.txt", baseName("/docs/a.txt"))
	assert.Equal(t, "docs", baseName("/docs/"))
	assert.Equal(t, "share", baseName(`\\server\share`))
	assert.Equal(t, "C:", baseName(`C:\`))
	assert.Equal(t, "", baseName("/"))
}
