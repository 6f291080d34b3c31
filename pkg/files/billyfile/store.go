package billyfile

import (
	"context"
	"io/fs"
	"net/url"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/nexplorer/nexplorer/pkg/files"
)

var _ files.Store = (*Store)(nil)

// Store serves a go-billy filesystem, for example an in-memory one.
type Store struct {
	fs    billy.Filesystem
	title string
}

func NewStore(fs billy.Filesystem, title string) *Store {
	return &Store{fs: fs, title: title}
}

func (s *Store) Filesystem() billy.Filesystem {
	return s.fs
}

func (s *Store) RootTitle() string {
	return s.title
}

func (s *Store) RootURL() url.URL {
	return url.URL{Scheme: "billy", Path: s.fs.Root()}
}

func (s *Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := s.fs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	entries := make([]os.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

func (s *Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fs.Stat(name)
}

func (s *Store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.fs.Stat(path); err != nil {
		return err
	}
	return util.RemoveAll(s.fs, path)
}

func (s *Store) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.fs.Stat(newPath); err == nil {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: os.ErrExist}
	}
	return s.fs.Rename(oldPath, newPath)
}
