package files

import (
	"os"
	"path/filepath"
)

// EntryWithDirPath is a directory entry that knows the directory it was read from.
type EntryWithDirPath interface {
	os.DirEntry
	DirPath() string
	FullName() string
	String() string
}

var _ EntryWithDirPath = (*entryWithDirPath)(nil)

type entryWithDirPath struct {
	os.DirEntry
	dir string
}

func (e entryWithDirPath) DirPath() string {
	return e.dir
}

func (e entryWithDirPath) FullName() string {
	name := e.Name()
	return filepath.Join(e.dir, name)
}

func (e entryWithDirPath) String() string {
	return e.FullName()
}

func NewEntryWithDirPath(entry os.DirEntry, dir string) EntryWithDirPath {
	return &entryWithDirPath{
		DirEntry: entry,
		dir:      dir,
	}
}
