// Package explorer implements the file explorer window and the controller
// that owns its navigation state.
package explorer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nexplorer/nexplorer/pkg/drives"
	"github.com/nexplorer/nexplorer/pkg/files"
	"github.com/nexplorer/nexplorer/pkg/fsutils"
	"github.com/nexplorer/nexplorer/pkg/history"
	"github.com/nexplorer/nexplorer/pkg/masks"
)

// Controller holds the navigation state and implements every user action.
// Views never change each other; they call the controller and re-render
// from the NavState passed to their subscriptions.
// It is meant to be used from the UI goroutine only.
type Controller struct {
	o       options
	ctx     context.Context
	store   files.Store
	list    *files.FilteredStore
	tree    *files.FilteredStore
	history *history.History
	filter  masks.Filter
	state   NavState

	subscribers []func(NavState)
	notifying   bool
	pending     bool
}

func NewController(store files.Store, o ...Option) *Controller {
	c := &Controller{
		o:       defaultOptions(),
		ctx:     context.Background(),
		store:   store,
		history: history.New(),
	}
	for _, opt := range o {
		opt(&c.o)
	}
	c.filter = masks.Filter{ShowDirs: true, ShowHidden: c.o.showHidden, ApplySize: c.o.applySize}
	c.list = files.NewFilteredStore(store, c.filter)
	c.tree = files.NewFilteredStore(store, files.FilterFunc(c.isTreeEntry))
	c.state.History = c.history.Snapshot()
	return c
}

func (c *Controller) isTreeEntry(entry os.DirEntry) bool {
	if !entry.IsDir() {
		return false
	}
	return c.o.showHidden || !strings.HasPrefix(entry.Name(), ".")
}

// Store is the unfiltered content provider.
func (c *Controller) Store() files.Store {
	return c.store
}

// ListStore is the content provider of the list view with the current filter applied.
func (c *Controller) ListStore() files.Store {
	return c.list
}

// TreeStore is the content provider of the tree view; it lists directories only.
func (c *Controller) TreeStore() files.Store {
	return c.tree
}

func (c *Controller) TimeFormat() string {
	return c.o.timeFormat
}

// SetPrompter sets the prompter used by Delete and Rename.
func (c *Controller) SetPrompter(p Prompter) {
	c.o.prompter = p
}

func (c *Controller) SetErrorHandler(f func(err error)) {
	c.o.onError = f
}

func (c *Controller) State() NavState {
	return c.state.clone()
}

// Subscribe registers f to be called with the new state after every change.
func (c *Controller) Subscribe(f func(NavState)) {
	c.subscribers = append(c.subscribers, f)
}

// notify delivers the latest state to every subscriber.
// Changes made by subscribers while being notified trigger one more round.
func (c *Controller) notify() {
	if c.notifying {
		c.pending = true
		return
	}
	c.notifying = true
	defer func() {
		c.notifying = false
	}()
	for {
		c.pending = false
		s := c.State()
		for _, f := range c.subscribers {
			f(s)
		}
		if !c.pending {
			return
		}
	}
}

func (c *Controller) fail(err error) {
	c.o.logger.Printf("%v", err)
	if c.o.onError != nil {
		c.o.onError(err)
	}
}

func (c *Controller) show(dir string) {
	c.state.Root = dir
	c.state.Current = dir
	c.state.Address = dir
	c.state.Selected = ""
}

// Start enumerates drives and navigates to dir.
func (c *Controller) Start(dir string) error {
	c.state.Drives = c.o.drives.List()
	return c.NavigateAddress(dir)
}

// NavigateAddress shows the path typed into the address bar.
// Existing paths and UNC paths are shown and recorded in the history;
// anything else leaves the views as they are and returns ErrPathNotFound.
func (c *Controller) NavigateAddress(text string) error {
	text = strings.TrimSpace(text)
	p := fsutils.ExpandHome(text)
	if p != "" && !fsutils.IsUNC(p) {
		if _, err := c.store.Stat(c.ctx, p); err != nil {
			p = ""
		}
	}
	if p == "" {
		c.state.Status = "Path not found: " + text
		c.notify()
		return fmt.Errorf("%w: %s", ErrPathNotFound, text)
	}
	c.o.logger.Printf("navigate to %s", p)
	c.show(p)
	c.state.Status = ""
	c.history.Visit(p)
	c.state.History = c.history.Snapshot()
	c.notify()
	return nil
}

// SelectDrive shows the drive root. It is recorded in the history only when
// WithRecordDrives is set.
func (c *Controller) SelectDrive(d drives.Drive) {
	if d.Root == "" {
		return
	}
	c.show(d.Root)
	c.state.Status = ""
	if c.o.recordDrives {
		c.history.Visit(d.Root)
		c.state.History = c.history.Snapshot()
	}
	c.notify()
}

// SelectTreeNode shows the directory picked in the tree in the list and records it.
func (c *Controller) SelectTreeNode(dir string) {
	if dir == "" {
		return
	}
	c.state.Current = dir
	c.state.Address = dir
	c.state.Selected = ""
	c.state.Status = c.dirStatus(dir)
	c.history.Visit(dir)
	c.state.History = c.history.Snapshot()
	c.notify()
}

func (c *Controller) dirStatus(dir string) string {
	info, err := c.store.Stat(c.ctx, dir)
	if err != nil || info == nil {
		return ""
	}
	return fmt.Sprintf("Selected: %s | Modified: %s", baseName(dir), info.ModTime().Format(c.o.timeFormat))
}

// Refresh moves the tree root back to the filesystem root, keeps the current
// directory and selection, and enumerates drives again.
func (c *Controller) Refresh() {
	anchor := c.state.Current
	if anchor == "" {
		anchor = c.state.Root
	}
	c.state.Root = fsutils.FilesystemRoot(anchor)
	c.state.Drives = c.o.drives.List()
	c.state.Revision++
	c.notify()
}

// Reload tells the views that the contents of the current directory changed.
func (c *Controller) Reload() {
	c.state.Revision++
	c.notify()
}

// Back shows the previous history entry without recording a visit.
func (c *Controller) Back() bool {
	p, ok := c.history.Back()
	if !ok {
		return false
	}
	c.show(p)
	c.state.History = c.history.Snapshot()
	c.notify()
	return true
}

// Forward shows the next history entry without recording a visit.
func (c *Controller) Forward() bool {
	p, ok := c.history.Forward()
	if !ok {
		return false
	}
	c.show(p)
	c.state.History = c.history.Snapshot()
	c.notify()
	return true
}

// Select records the entry highlighted in the list and describes it in the status line.
func (c *Controller) Select(entry files.EntryWithDirPath) {
	if entry == nil {
		return
	}
	c.state.Selected = entry.FullName()
	info, err := entry.Info()
	if err != nil || info == nil {
		info, err = c.store.Stat(c.ctx, entry.FullName())
	}
	if err == nil && info != nil {
		c.state.Status = fmt.Sprintf("Selected: %s | Size: %d bytes | Modified: %s",
			entry.Name(), info.Size(), info.ModTime().Format(c.o.timeFormat))
	}
	c.notify()
}

// ClearSelection forgets the selected entry, e.g. when the list cursor is on the header.
func (c *Controller) ClearSelection() {
	if c.state.Selected == "" {
		return
	}
	c.state.Selected = ""
	c.notify()
}

// Execute runs a context menu command against the selected entry.
// Delete and Rename complete after the prompter answers; their failures go to
// the error handler.
func (c *Controller) Execute(cmd Command) error {
	target := c.state.Selected
	if target == "" {
		return ErrNoSelection
	}
	switch cmd {
	case CommandOpen:
		return c.open(target)
	case CommandDelete:
		return c.delete(target)
	case CommandRename:
		return c.rename(target)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownCommand, cmd)
	}
}

func (c *Controller) open(target string) error {
	if info, err := c.store.Stat(c.ctx, target); err == nil && info.IsDir() {
		c.SelectTreeNode(target)
		return nil
	}
	if err := c.o.open(target); err != nil {
		c.state.Status = "Cannot open " + baseName(target) + ": " + err.Error()
		c.notify()
		return err
	}
	c.state.Status = "Opened: " + baseName(target)
	c.notify()
	return nil
}

func (c *Controller) delete(target string) error {
	if c.o.prompter == nil {
		return ErrNoPrompter
	}
	question := fmt.Sprintf("Are you sure you want to delete %s?", target)
	c.o.prompter.Confirm(question, func(yes bool) {
		if !yes {
			return
		}
		if err := c.store.Delete(c.ctx, target); err != nil {
			c.fail(fmt.Errorf("failed to delete %s: %w", target, err))
			return
		}
		c.o.logger.Printf("deleted %s", target)
		if c.state.Selected == target {
			c.state.Selected = ""
		}
		c.state.Status = "Deleted: " + baseName(target)
		c.state.Revision++
		c.notify()
	})
	return nil
}

func (c *Controller) rename(target string) error {
	if c.o.prompter == nil {
		return ErrNoPrompter
	}
	oldName := baseName(target)
	c.o.prompter.AskName(oldName, func(newName string, ok bool) {
		newName = strings.TrimSpace(newName)
		if !ok || newName == "" || newName == oldName {
			return
		}
		if strings.ContainsAny(newName, `/\`) {
			c.fail(fmt.Errorf("failed to rename %s to %q: %w", oldName, newName, ErrInvalidName))
			return
		}
		newPath := filepath.Join(filepath.Dir(target), newName)
		if err := c.store.Rename(c.ctx, target, newPath); err != nil {
			c.fail(fmt.Errorf("failed to rename %s to %s: %w", oldName, newName, err))
			return
		}
		c.o.logger.Printf("renamed %s to %s", target, newPath)
		c.state.Selected = newPath
		c.state.Status = fmt.Sprintf("Renamed: %s -> %s", oldName, newName)
		c.state.Revision++
		c.notify()
	})
	return nil
}

// Filter returns the filter currently applied to the list view.
func (c *Controller) Filter() masks.Filter {
	return c.filter
}

// SetFilter applies the filter dialog input. The size text is always kept;
// it only filters when size filtering is enabled. An invalid size is reported
// in the status line without blocking the type filter.
func (c *Controller) SetFilter(typeText, sizeText string) error {
	mask, err := masks.FromWildcard(typeText)
	if err != nil {
		c.state.Status = "Invalid type filter: " + err.Error()
		c.notify()
		return err
	}
	filter := c.filter
	filter.Mask = mask
	filter.Size = masks.SizeRule{}
	c.state.Filter = FilterSpec{Pattern: strings.TrimSpace(typeText), Size: strings.TrimSpace(sizeText)}
	c.state.Status = filterStatus(c.state.Filter)
	if c.o.applySize {
		rule, sizeErr := masks.ParseSizeRule(sizeText)
		if sizeErr != nil {
			c.state.Status = "Invalid size filter: " + sizeErr.Error()
		} else {
			filter.Size = rule
		}
	}
	c.filter = filter
	c.list.SetFilter(filter)
	c.notify()
	return nil
}

func filterStatus(spec FilterSpec) string {
	if spec.Pattern == "" {
		return "Filter cleared"
	}
	return "Filter: " + spec.Pattern
}

func baseName(p string) string {
	p = strings.TrimRight(p, `/\`)
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

// SetStatus replaces the status line text.
func (c *Controller) SetStatus(text string) {
	c.state.Status = text
	c.notify()
}
