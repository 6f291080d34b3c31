package files

import (
	"os"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortDirChildren orders directories first, then by name using locale-aware collation.
// The tree and the list share one sorted slice so both show the same order.
func SortDirChildren(children []os.DirEntry) []os.DirEntry {
	c := collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
	sort.SliceStable(children, func(i, j int) bool {
		iDir, jDir := children[i].IsDir(), children[j].IsDir()
		if iDir != jDir {
			return iDir
		}
		return c.CompareString(children[i].Name(), children[j].Name()) < 0
	})
	return children
}
