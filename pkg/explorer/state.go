package explorer

import (
	"github.com/nexplorer/nexplorer/pkg/drives"
	"github.com/nexplorer/nexplorer/pkg/history"
)

// FilterSpec is the filter text as entered by the user.
type FilterSpec struct {
	Pattern string
	Size    string
}

func (f FilterSpec) IsEmpty() bool {
	return f.Pattern == "" && f.Size == ""
}

// NavState is a snapshot of everything the views render.
// Revision grows whenever directory contents may have changed.
type NavState struct {
	Root     string
	Current  string
	Selected string
	Address  string
	History  history.Snapshot
	Filter   FilterSpec
	Drives   []drives.Drive
	Status   string
	Revision int
}

func (s NavState) clone() NavState {
	c := s
	c.History.Entries = append([]string(nil), s.History.Entries...)
	c.Drives = append([]drives.Drive(nil), s.Drives...)
	return c
}
