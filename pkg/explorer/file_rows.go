package explorer

import (
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/nexplorer/nexplorer/pkg/files"
	"github.com/nexplorer/nexplorer/pkg/fsutils"
	"github.com/rivo/tview"
)

var _ tview.TableContent = (*FileRows)(nil)

const (
	nameColIndex     = 0
	sizeColIndex     = 1
	modifiedColIndex = 2
)

var timeNow = time.Now

// FileRows presents the entries of a directory as table rows below a header row.
type FileRows struct {
	tview.TableContentReadOnly
	Dir     *files.DirContext
	Entries []files.EntryWithDirPath
	Err     error
	infos   []os.FileInfo
}

func NewFileRows(dir *files.DirContext, err error) *FileRows {
	entries := dir.Entries()
	return &FileRows{
		Dir:     dir,
		Entries: entries,
		Err:     err,
		infos:   make([]os.FileInfo, len(entries)),
	}
}

func (r *FileRows) GetRowCount() int {
	if r.Err != nil || len(r.Entries) == 0 {
		return 2
	}
	return len(r.Entries) + 1
}

func (r *FileRows) GetColumnCount() int {
	return 3
}

// EntryAt returns the entry shown in row, or nil for the header and placeholder rows.
func (r *FileRows) EntryAt(row int) files.EntryWithDirPath {
	if r.Err != nil {
		return nil
	}
	i := row - 1
	if i < 0 || i >= len(r.Entries) {
		return nil
	}
	return r.Entries[i]
}

// RowOf returns the row showing the entry with the given full name, or -1.
func (r *FileRows) RowOf(fullName string) int {
	if r.Err != nil || fullName == "" {
		return -1
	}
	for i, entry := range r.Entries {
		if entry.FullName() == fullName {
			return i + 1
		}
	}
	return -1
}

func (r *FileRows) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		return r.headerCell(col)
	}
	if r.Err != nil {
		if col != nameColIndex || row != 1 {
			return nil
		}
		cell := tview.NewTableCell(" " + dirEmoji + tview.Escape(r.Err.Error()))
		cell.SetTextColor(currentTheme.ErrorColor)
		cell.SetSelectable(false)
		return cell
	}
	if len(r.Entries) == 0 {
		if col != nameColIndex || row != 1 {
			return nil
		}
		cell := tview.NewTableCell("[::i]No entries[::-]")
		cell.SetTextColor(tcell.ColorGray)
		cell.SetSelectable(false)
		return cell
	}
	i := row - 1
	if i >= len(r.Entries) {
		return nil
	}
	entry := r.Entries[i]
	name := entry.Name()
	color := colorByFileName(name)
	if entry.IsDir() {
		color = currentTheme.DirColor
	}
	var cell *tview.TableCell
	switch col {
	case nameColIndex:
		prefix := "📄"
		if entry.IsDir() {
			prefix = dirEmoji
		}
		cell = tview.NewTableCell(prefix + tview.Escape(name))
		cell.SetExpansion(1)
	case sizeColIndex:
		var text string
		if fi := r.info(i); fi != nil && !entry.IsDir() {
			text = fsutils.ShortSize(fi.Size())
		}
		cell = tview.NewTableCell(text)
		cell.SetAlign(tview.AlignRight)
	case modifiedColIndex:
		var text string
		if fi := r.info(i); fi != nil {
			text = modifiedText(fi.ModTime())
		}
		cell = tview.NewTableCell(text)
		cell.SetAlign(tview.AlignRight)
	default:
		return nil
	}
	cell.SetTextColor(color)
	cell.SetReference(entry)
	return cell
}

func (r *FileRows) info(i int) os.FileInfo {
	if r.infos[i] != nil {
		return r.infos[i]
	}
	fi, err := r.Entries[i].Info()
	if err != nil || fi == nil {
		return nil
	}
	r.infos[i] = fi
	return fi
}

// modifiedText shows the time for entries changed within the last day and the date otherwise.
func modifiedText(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if timeNow().Sub(t) < 24*time.Hour {
		return t.Format("15:04:05")
	}
	return t.Format("2006-01-02")
}

func (r *FileRows) headerCell(col int) *tview.TableCell {
	var cell *tview.TableCell
	switch col {
	case nameColIndex:
		cell = tview.NewTableCell("Name").SetExpansion(1)
	case sizeColIndex:
		cell = tview.NewTableCell("Size").SetAlign(tview.AlignRight)
	case modifiedColIndex:
		cell = tview.NewTableCell("Modified").SetAlign(tview.AlignRight)
	default:
		return nil
	}
	return cell.SetTextColor(currentTheme.HeaderColor).SetSelectable(false)
}
