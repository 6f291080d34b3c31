package masks

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// SizeRule compares a file size against a threshold. The zero rule matches everything.
type SizeRule struct {
	Op    string
	Bytes uint64
}

var sizeOps = []string{">=", "<=", ">", "<", "="}

// ParseSizeRule parses rules like ">1MB", "<100KB", ">=10k", "<=2GiB" or "=0".
// A rule without an operator means "at least".
func ParseSizeRule(s string) (SizeRule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SizeRule{}, nil
	}
	op := ">="
	for _, o := range sizeOps {
		if strings.HasPrefix(s, o) {
			op = o
			s = strings.TrimSpace(s[len(o):])
			break
		}
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return SizeRule{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return SizeRule{Op: op, Bytes: n}, nil
}

func (r SizeRule) IsZero() bool {
	return r.Op == ""
}

func (r SizeRule) Match(size int64) bool {
	if r.Op == "" {
		return true
	}
	if size < 0 {
		return false
	}
	s := uint64(size)
	switch r.Op {
	case ">":
		return s > r.Bytes
	case "<":
		return s < r.Bytes
	case ">=":
		return s >= r.Bytes
	case "<=":
		return s <= r.Bytes
	case "=":
		return s == r.Bytes
	default:
		return false
	}
}

func (r SizeRule) String() string {
	if r.Op == "" {
		return ""
	}
	return r.Op + humanize.Bytes(r.Bytes)
}
