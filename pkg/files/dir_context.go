package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

var _ EntryWithDirPath = (*DirContext)(nil)

// DirContext is a directory of a store together with its loaded children.
type DirContext struct {
	store    Store
	path     string
	children []os.DirEntry
}

func NewDirContext(store Store, path string, children []os.DirEntry) *DirContext {
	return &DirContext{
		store:    store,
		path:     path,
		children: children,
	}
}

func (c *DirContext) Store() Store {
	return c.store
}

func (c *DirContext) Path() string {
	return c.path
}

func (c *DirContext) SetChildren(entries []os.DirEntry) {
	c.children = entries
}

func (c *DirContext) Children() []os.DirEntry {
	return c.children
}

// Entries returns children bound to the directory path.
func (c *DirContext) Entries() []EntryWithDirPath {
	entries := make([]EntryWithDirPath, len(c.children))
	for i, child := range c.children {
		entries[i] = NewEntryWithDirPath(child, c.path)
	}
	return entries
}

// Load reads children from the store and sorts them with SortDirChildren.
func (c *DirContext) Load(ctx context.Context) error {
	if c.store == nil {
		return ErrStoreNotSet
	}
	children, err := c.store.ReadDir(ctx, c.path)
	if err != nil {
		return err
	}
	c.children = SortDirChildren(children)
	return nil
}

func (c *DirContext) DirPath() string {
	if c.path == "" {
		return ""
	}
	return filepath.Dir(c.path)
}

func (c *DirContext) FullName() string {
	return c.path
}

func (c *DirContext) String() string {
	return c.path
}

func (c *DirContext) Name() string {
	if c.path == "" {
		return ""
	}
	trimmed := strings.TrimRight(c.path, `/\`)
	if trimmed == "" {
		return c.path[:1]
	}
	if strings.HasSuffix(trimmed, ":") {
		return trimmed + `\`
	}
	return filepath.Base(trimmed)
}

func (c *DirContext) IsDir() bool {
	return true
}

func (c *DirContext) Type() os.FileMode {
	return os.ModeDir
}

func (c *DirContext) Info() (os.FileInfo, error) {
	if c.path == "" || c.store == nil {
		return nil, nil
	}
	return c.store.Stat(context.Background(), c.path)
}
