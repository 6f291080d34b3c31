package explorer

import (
	"github.com/rivo/tview"
)

// App is the part of *tview.Application the window needs.
type App interface {
	Run() error
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	GetFocus() tview.Primitive
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
}

type AppOption func(a *appProxy)

// NewApp wraps app. Options replace single methods, which is how tests avoid a real screen.
func NewApp(app *tview.Application, o ...AppOption) App {
	a := &appProxy{}
	if app != nil {
		a.setFocus = func(p tview.Primitive) {
			_ = app.SetFocus(p)
		}
		a.getFocus = app.GetFocus
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(b bool) {
			_ = app.EnableMouse(b)
		}
		a.queueUpdateDraw = func(f func()) {
			_ = app.QueueUpdateDraw(f)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, opt := range o {
		opt(a)
	}
	return a
}

func WithQueueUpdateDraw(f func(func())) AppOption {
	return func(a *appProxy) {
		a.queueUpdateDraw = f
	}
}

func WithRun(run func() error) AppOption {
	return func(a *appProxy) {
		a.run = run
	}
}

func WithStop(stop func()) AppOption {
	return func(a *appProxy) {
		a.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	queueUpdateDraw func(func())
	setFocus        func(tview.Primitive)
	getFocus        func() tview.Primitive
	setRoot         func(tview.Primitive, bool)
	enableMouse     func(bool)
	run             func() error
	stop            func()
}

func (a *appProxy) Run() error {
	return a.run()
}

func (a *appProxy) QueueUpdateDraw(f func()) {
	a.queueUpdateDraw(f)
}

func (a *appProxy) SetFocus(p tview.Primitive) {
	a.setFocus(p)
}

func (a *appProxy) GetFocus() tview.Primitive {
	if a.getFocus == nil {
		return nil
	}
	return a.getFocus()
}

func (a *appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	a.setRoot(root, fullscreen)
}

func (a *appProxy) Stop() {
	a.stop()
}

func (a *appProxy) EnableMouse(b bool) {
	a.enableMouse(b)
}
