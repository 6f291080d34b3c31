package explorer

import (
	"errors"
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func TestNewApp(t *testing.T) {
	t.Run("options", func(t *testing.T) {
		runErr := errors.New("run")
		var stopped, queued bool
		app := NewApp(nil,
			WithRun(func() error { return runErr }),
			WithStop(func() { stopped = true }),
			WithQueueUpdateDraw(func(f func()) {
				queued = true
				f()
			}),
		)
		assert.ErrorIs(t, app.Run(), runErr)
		app.Stop()
		assert.True(t, stopped)
		var called bool
		app.QueueUpdateDraw(func() { called = true })
		assert.True(t, queued)
		assert.True(t, called)
		assert.Nil(t, app.GetFocus())
	})

	t.Run("tview_application", func(t *testing.T) {
		tapp := tview.NewApplication()
		app := NewApp(tapp)
		box := tview.NewBox()
		app.SetFocus(box)
		assert.Same(t, box, app.GetFocus())
		assert.True(t, box.HasFocus())

		root := tview.NewTextView()
		app.SetRoot(root, true)
		assert.Same(t, root, app.GetFocus())
		app.EnableMouse(true)
	})
}
