package masks

import (
	"os"
	"strings"
)

// Filter decides which directory entries are shown.
// Directories bypass the mask and size rule when ShowDirs is set.
type Filter struct {
	ShowHidden bool
	ShowDirs   bool
	Mask       Mask
	Size       SizeRule
	ApplySize  bool
}

func (f Filter) IsEmpty() bool {
	return f.Mask.IsEmpty() && (!f.ApplySize || f.Size.IsZero())
}

func (f Filter) IsVisible(entry os.DirEntry) bool {
	entryName := entry.Name()
	if !f.ShowHidden && strings.HasPrefix(entryName, ".") {
		return false
	}
	if entry.IsDir() {
		return f.ShowDirs
	}
	if matched, err := f.Mask.Match(entryName); err != nil || !matched {
		return false
	}
	if f.ApplySize && !f.Size.IsZero() {
		info, err := entry.Info()
		if err != nil || info == nil {
			return false
		}
		if !f.Size.Match(info.Size()) {
			return false
		}
	}
	return true
}
