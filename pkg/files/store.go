package files

import (
	"context"
	"net/url"
	"os"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=files

// Store is the directory content provider shared by the tree and list views.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
	Delete(ctx context.Context, path string) error
	Rename(ctx context.Context, oldPath, newPath string) error
}
