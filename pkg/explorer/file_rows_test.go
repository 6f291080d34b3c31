package explorer

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/nexplorer/nexplorer/pkg/files"
)

func testRows() *FileRows {
	modified := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	dc := files.NewDirContext(nil, "/docs", files.SortDirChildren([]os.DirEntry{
		files.NewDirEntry("b.go", false, files.Size(2048), files.ModTime(modified)),
		files.NewDirEntry("sub", true, files.ModTime(modified)),
		files.NewDirEntry("a.txt", false, files.Size(10), files.ModTime(modified)),
	}))
	return NewFileRows(dc, nil)
}

func TestFileRows_Entries(t *testing.T) {
	rows := testRows()
	assert.Equal(t, 4, rows.GetRowCount())
	assert.Equal(t, 3, rows.GetColumnCount())

	assert.Equal(t, "Name", rows.GetCell(0, nameColIndex).Text)
	assert.Equal(t, "Size", rows.GetCell(0, sizeColIndex).Text)
	assert.Equal(t, "Modified", rows.GetCell(0, modifiedColIndex).Text)
	assert.True(t, rows.GetCell(0, nameColIndex).NotSelectable)
	assert.Zero(t, rows.GetCell(0, 3))

	assert.Equal(t, dirEmoji+"sub", rows.GetCell(1, nameColIndex).Text)
	assert.Equal(t, "", rows.GetCell(1, sizeColIndex).Text)
	assert.Equal(t, "📄a.txt", rows.GetCell(2, nameColIndex).Text)
	assert.Equal(t, "10B", rows.GetCell(2, sizeColIndex).Text)
	assert.Equal(t, "2.0KiB", rows.GetCell(3, sizeColIndex).Text)
	assert.Equal(t, "2024-05-01", rows.GetCell(3, modifiedColIndex).Text)
	assert.Zero(t, rows.GetCell(4, nameColIndex))

	assert.Equal(t, "/docs/a.txt", rows.EntryAt(2).FullName())
	assert.Equal(t, rows.EntryAt(2), rows.GetCell(2, nameColIndex).GetReference().(files.EntryWithDirPath))
	assert.Zero(t, rows.EntryAt(0))
	assert.Zero(t, rows.EntryAt(4))

	assert.Equal(t, 3, rows.RowOf("/docs/b.go"))
	assert.Equal(t, -1, rows.RowOf("/docs/missing"))
	assert.Equal(t, -1, rows.RowOf(""))
}

func TestFileRows_Error(t *testing.T) {
	rows := NewFileRows(files.NewDirContext(nil, "/docs", nil), errors.New("access denied"))
	assert.Equal(t, 2, rows.GetRowCount())
	cell := rows.GetCell(1, nameColIndex)
	assert.Contains(t, cell.Text, "access denied")
	assert.True(t, cell.NotSelectable)
	assert.Zero(t, rows.GetCell(1, sizeColIndex))
	assert.Zero(t, rows.EntryAt(1))
	assert.Equal(t, -1, rows.RowOf("/docs/a.txt"))
}

func TestFileRows_Empty(t *testing.T) {
	rows := NewFileRows(files.NewDirContext(nil, "/docs", nil), nil)
	assert.Equal(t, 2, rows.GetRowCount())
	cell := rows.GetCell(1, nameColIndex)
	assert.Contains(t, cell.Text, "No entries")
	assert.True(t, cell.NotSelectable)
	assert.Zero(t, rows.EntryAt(1))
}

func TestModifiedText(t *testing.T) {
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })

	assert.Equal(t, "", modifiedText(time.Time{}))
	assert.Equal(t, "09:30:00", modifiedText(now.Add(-150*time.Minute)))
	assert.Equal(t, "2024-04-30", modifiedText(now.Add(-48*time.Hour)))
}

func TestColorByFileName(t *testing.T) {
	assert.Equal(t, presetColors["Coding"], colorByFileName("main.go"))
	assert.Equal(t, presetColors["Images"], colorByFileName("photo.jpg"))
	assert.Equal(t, presetColors["Documents"], colorByFileName("notes.txt"))
	assert.Equal(t, presetColors["Data"], colorByFileName("data.csv"))
	assert.Equal(t, defaultFileColor, colorByFileName("archive.zip"))
	assert.Equal(t, defaultFileColor, colorByFileName("README"))
}
