package explorer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/nexplorer/nexplorer/pkg/files"
	"github.com/nexplorer/nexplorer/pkg/tui"
	"github.com/rivo/tview"
)

const dirEmoji = "📁"

// tree shows the directory hierarchy below NavState.Root.
// Children are read when a node is expanded.
type tree struct {
	*tui.Boxed
	tv    *tview.TreeView
	w     *Window
	root  string
	rev   int
	nodes map[string]*tview.TreeNode

	searchPattern string
}

func newTree(w *Window) *tree {
	tv := tview.NewTreeView()
	t := &tree{
		tv:    tv,
		w:     w,
		nodes: make(map[string]*tview.TreeNode),
		Boxed: tui.NewBoxed(tv, tui.WithRightBorder()),
	}
	t.SetTitle("Folders")
	tv.SetSelectedFunc(t.selected)
	tv.SetInputCapture(t.inputCapture)
	tv.SetFocusFunc(t.focus)
	tv.SetBlurFunc(t.blur)
	t.blur()
	return t
}

func (t *tree) focus() {
	if n := t.tv.GetCurrentNode(); n != nil {
		n.SetSelectedTextStyle(currentTheme.FocusedSelectedTextStyle)
	}
	t.tv.SetGraphicsColor(tcell.ColorWhite)
}

func (t *tree) blur() {
	if n := t.tv.GetCurrentNode(); n != nil {
		n.SetSelectedTextStyle(currentTheme.BlurredSelectedTextStyle)
	}
	t.tv.SetGraphicsColor(currentTheme.BlurredBorderColor)
}

func (t *tree) render(s NavState) {
	if s.Root == "" {
		return
	}
	if s.Root != t.root || s.Revision != t.rev {
		t.rebuild(s.Root)
		t.rev = s.Revision
	}
	t.reveal(s.Current)
}

func (t *tree) rebuild(root string) {
	t.root = root
	t.nodes = make(map[string]*tview.TreeNode)
	t.searchPattern = ""
	rootNode := t.newNode(root, rootTitle(root))
	t.tv.SetRoot(rootNode)
	t.tv.SetCurrentNode(rootNode)
	t.expand(rootNode)
}

func rootTitle(root string) string {
	return dirEmoji + tview.Escape(root)
}

func (t *tree) newNode(dir, text string) *tview.TreeNode {
	n := tview.NewTreeNode(text)
	n.SetReference(files.NewDirContext(t.w.ctrl.TreeStore(), dir, nil))
	n.SetColor(currentTheme.DirColor)
	n.SetSelectable(true)
	t.nodes[dir] = n
	return n
}

func nodeDir(n *tview.TreeNode) string {
	if n == nil {
		return ""
	}
	if dc, ok := n.GetReference().(*files.DirContext); ok && dc != nil {
		return dc.Path()
	}
	return ""
}

// expand reads the children of n if they were not read yet.
func (t *tree) expand(n *tview.TreeNode) {
	dc, ok := n.GetReference().(*files.DirContext)
	if !ok || dc == nil {
		return
	}
	if len(n.GetChildren()) > 0 {
		n.SetExpanded(true)
		return
	}
	if err := dc.Load(t.w.ctx); err != nil {
		t.setError(n, err)
		return
	}
	for _, child := range dc.Children() {
		childPath := filepath.Join(dc.Path(), child.Name())
		n.AddChild(t.newNode(childPath, dirEmoji+tview.Escape(child.Name())))
	}
	n.SetExpanded(true)
}

func (t *tree) setError(n *tview.TreeNode, err error) {
	n.ClearChildren()
	errNode := tview.NewTreeNode(fmt.Sprintf("%v", err))
	errNode.SetColor(currentTheme.ErrorColor)
	errNode.SetSelectable(false)
	n.AddChild(errNode)
	n.SetExpanded(true)
	t.w.ctrl.o.logger.Printf("tree: %v", err)
}

// reveal expands the ancestors of dir and makes it the current node.
// Directories outside the root leave the cursor where it is.
func (t *tree) reveal(dir string) {
	if dir == "" {
		return
	}
	if n, ok := t.nodes[dir]; ok {
		t.tv.SetCurrentNode(n)
		return
	}
	rel, err := filepath.Rel(t.root, dir)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return
	}
	node := t.nodes[t.root]
	current := t.root
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		t.expand(node)
		current = filepath.Join(current, part)
		next, ok := t.nodes[current]
		if !ok {
			return
		}
		node = next
	}
	t.tv.SetCurrentNode(node)
}

func (t *tree) selected(n *tview.TreeNode) {
	dir := nodeDir(n)
	if dir == "" {
		return
	}
	if n.IsExpanded() && len(n.GetChildren()) > 0 && dir == t.w.ctrl.State().Current {
		n.SetExpanded(false)
		return
	}
	t.expand(n)
	t.w.ctrl.SelectTreeNode(dir)
}

func (t *tree) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyRight:
		if n := t.tv.GetCurrentNode(); n != nil && !n.IsExpanded() {
			t.expand(n)
			return nil
		}
		t.w.focusList()
		return nil
	case tcell.KeyLeft:
		if n := t.tv.GetCurrentNode(); n != nil && n.IsExpanded() && n != t.tv.GetRoot() {
			n.SetExpanded(false)
			return nil
		}
		return event
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.searchPattern == "" {
			return event
		}
		t.SetSearch(t.searchPattern[:len(t.searchPattern)-1])
		return nil
	case tcell.KeyEscape:
		if t.searchPattern == "" {
			return event
		}
		t.SetSearch("")
		return nil
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt != 0 {
			return event
		}
		s := string(event.Rune())
		if t.searchPattern == "" && s == " " {
			return event
		}
		t.SetSearch(t.searchPattern + strings.ToLower(s))
		return nil
	default:
		return event
	}
}
