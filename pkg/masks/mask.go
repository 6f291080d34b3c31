// Package masks matches file names against inclusive and exclusive patterns.
package masks

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
	"unicode"
)

var goos = runtime.GOOS

type Mask struct {
	Name     string
	Patterns []Pattern
}

func (m *Mask) String() string {
	return fmt.Sprintf("Mask{Name: %q, Patterns: %+v}", m.Name, m.Patterns)
}

func (m *Mask) IsEmpty() bool {
	return len(m.Patterns) == 0
}

// Match reports whether fileName passes the mask.
// A mask without patterns matches everything.
func (m *Mask) Match(fileName string) (bool, error) {
	if len(m.Patterns) == 0 {
		return true, nil
	}
	var result bool
	for _, pattern := range m.Patterns {
		matched, err := pattern.Match(fileName)
		if err != nil {
			return false, err
		}
		if matched {
			if pattern.Type == Inclusive {
				result = true
			}
			if pattern.Type == Exclusive {
				return false, nil
			}
		}
	}
	return result, nil
}

// SplitWildcards splits a list of wildcards separated by commas or whitespace.
func SplitWildcards(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

// FromWildcard compiles shell wildcards such as "*.txt, *.jpg" into an inclusive mask.
func FromWildcard(wildcard string) (Mask, error) {
	mask := Mask{Name: strings.TrimSpace(wildcard)}
	for _, w := range SplitWildcards(wildcard) {
		p, err := newPattern(Inclusive, WildcardToRegex(w))
		if err != nil {
			return Mask{}, fmt.Errorf("invalid wildcard %q: %w", w, err)
		}
		mask.Patterns = append(mask.Patterns, p)
	}
	return mask, nil
}

func caseInsensitive() bool {
	return goos == "windows" || goos == "darwin"
}

// WildcardToRegex converts a single shell wildcard into an anchored regular expression.
func WildcardToRegex(wildcard string) string {
	var sb strings.Builder
	if caseInsensitive() {
		sb.WriteString("(?i)")
	}
	sb.WriteString("^")
	runes := []rune(wildcard)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		case '[':
			end := classEnd(runes, i)
			if end < 0 {
				sb.WriteString(`\[`)
				continue
			}
			sb.WriteString(classToRegex(runes[i+1 : end]))
			i = end
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return sb.String()
}

// classEnd returns the index of the bracket closing the class opened at start, or -1.
func classEnd(runes []rune, start int) int {
	i := start + 1
	if i < len(runes) && (runes[i] == '!' || runes[i] == '^') {
		i++
	}
	if i < len(runes) && runes[i] == ']' {
		i++
	}
	for ; i < len(runes); i++ {
		if runes[i] == ']' {
			return i
		}
	}
	return -1
}

func classToRegex(class []rune) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, r := range class {
		switch {
		case i == 0 && (r == '!' || r == '^'):
			sb.WriteString("^")
		case r == '\\' || r == '[' || r == ']':
			sb.WriteString(`\`)
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteString("]")
	return sb.String()
}
