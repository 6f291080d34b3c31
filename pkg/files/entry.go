package files

import (
	"os"
	"strings"
	"time"
)

// EntryOption customises the FileInfo attached to a DirEntry.
type EntryOption func(*FileInfo)

func Size(v int64) EntryOption {
	return func(info *FileInfo) {
		info.size = v
	}
}

func ModTime(v time.Time) EntryOption {
	return func(info *FileInfo) {
		info.modTime = v
	}
}

// NewDirEntry creates an in-memory os.DirEntry.
// Without options Info() returns nil info, as a listing without stat data would.
func NewDirEntry(name string, isDir bool, o ...EntryOption) DirEntry {
	if strings.ContainsAny(name, `/\`) {
		panic("dir entry name can not have path: " + name)
	}
	entry := DirEntry{name: name, isDir: isDir}
	if len(o) > 0 {
		info := &FileInfo{name: name, isDir: isDir}
		for _, opt := range o {
			opt(info)
		}
		entry.info = info
	}
	return entry
}

var _ os.DirEntry = DirEntry{}

type DirEntry struct {
	name  string
	isDir bool
	info  *FileInfo
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }

func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}

func (d DirEntry) Info() (os.FileInfo, error) {
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}

var _ os.FileInfo = (*FileInfo)(nil)

type FileInfo struct {
	name    string
	isDir   bool
	size    int64
	modTime time.Time
}

func (f *FileInfo) Name() string       { return f.name }
func (f *FileInfo) Size() int64        { return f.size }
func (f *FileInfo) ModTime() time.Time { return f.modTime }
func (f *FileInfo) IsDir() bool        { return f.isDir }
func (f *FileInfo) Sys() any           { return nil }

func (f *FileInfo) Mode() os.FileMode {
	if f.isDir {
		return os.ModeDir | 0o755
	}
	return 0o644
}
