package explorer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/tview"
	"github.com/sahilm/fuzzy"
)

// SetSearch moves the tree cursor to the loaded directory that best matches
// pattern and highlights the matched characters.
// A pattern that matches nothing is shortened until it does.
func (t *tree) SetSearch(pattern string) {
	t.searchPattern = pattern
	if pattern == "" {
		t.SetFooter("")
	} else {
		t.SetFooter(fmt.Sprintf("Find: %s", pattern))
	}
	var nodes []*tview.TreeNode
	var names []string
	collectNodes(t.tv.GetRoot(), true, &nodes, &names)
	for i, n := range nodes {
		n.SetText(dirEmoji + tview.Escape(names[i]))
	}
	if pattern == "" {
		return
	}
	matches := fuzzy.Find(pattern, names)
	if len(matches) == 0 {
		t.SetSearch(pattern[:len(pattern)-1])
		return
	}
	for _, m := range matches {
		nodes[m.Index].SetText(dirEmoji + highlight(m.Str, m.MatchedIndexes))
	}
	t.tv.SetCurrentNode(nodes[matches[0].Index])
}

func collectNodes(n *tview.TreeNode, isRoot bool, nodes *[]*tview.TreeNode, names *[]string) {
	if n == nil {
		return
	}
	if !isRoot {
		if dir := nodeDir(n); dir != "" {
			*nodes = append(*nodes, n)
			*names = append(*names, baseName(dir))
		}
	}
	if !n.IsExpanded() && !isRoot {
		return
	}
	for _, child := range n.GetChildren() {
		collectNodes(child, false, nodes, names)
	}
}

func highlight(s string, matched []int) string {
	isMatched := make(map[int]bool, len(matched))
	for _, i := range matched {
		isMatched[i] = true
	}
	var sb strings.Builder
	start := 0
	for i, r := range s {
		if !isMatched[i] {
			continue
		}
		sb.WriteString(tview.Escape(s[start:i]))
		sb.WriteString("[black:lightgreen]")
		sb.WriteString(tview.Escape(string(r)))
		sb.WriteString("[-:-]")
		start = i + utf8.RuneLen(r)
	}
	sb.WriteString(tview.Escape(s[start:]))
	return sb.String()
}
