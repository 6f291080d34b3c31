package files

import (
	"context"
	"os"
)

// EntryFilter decides whether a directory entry is shown.
type EntryFilter interface {
	IsVisible(entry os.DirEntry) bool
}

// FilterFunc adapts a plain function to EntryFilter.
type FilterFunc func(entry os.DirEntry) bool

func (f FilterFunc) IsVisible(entry os.DirEntry) bool {
	return f(entry)
}

var _ Store = (*FilteredStore)(nil)

// FilteredStore decorates a Store so that ReadDir only returns visible entries.
// All other operations go straight to the wrapped store.
type FilteredStore struct {
	Store
	filter EntryFilter
}

func NewFilteredStore(store Store, filter EntryFilter) *FilteredStore {
	return &FilteredStore{Store: store, filter: filter}
}

func (s *FilteredStore) SetFilter(filter EntryFilter) {
	s.filter = filter
}

func (s *FilteredStore) Filter() EntryFilter {
	return s.filter
}

func (s *FilteredStore) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	children, err := s.Store.ReadDir(ctx, name)
	if err != nil {
		return nil, err
	}
	if s.filter == nil {
		return children, nil
	}
	visible := make([]os.DirEntry, 0, len(children))
	for _, child := range children {
		if s.filter.IsVisible(child) {
			visible = append(visible, child)
		}
	}
	return visible, nil
}
