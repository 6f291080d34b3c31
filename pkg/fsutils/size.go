package fsutils

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// ShortSize returns a compact binary-unit size, e.g. 512B or 1.5KiB.
func ShortSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return strings.ReplaceAll(humanize.IBytes(uint64(size)), " ", "")
}
