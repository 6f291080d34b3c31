package explorer

import (
	"io"
	"log"
	"os"

	"github.com/nexplorer/nexplorer/pkg/files/osfile"
	"github.com/nexplorer/nexplorer/pkg/fsutils"
	"github.com/nexplorer/nexplorer/pkg/nxconfig"
	"github.com/nexplorer/nexplorer/pkg/watcher"
	"github.com/rivo/tview"
)

var (
	newWatcher = watcher.New
	osGetwd    = os.Getwd
)

// SetupApp builds the explorer on the local filesystem and makes it the root of app.
// The returned function releases the directory watcher.
func SetupApp(app *tview.Application, cfg *nxconfig.Config, logger *log.Logger) (func(), error) {
	if cfg == nil {
		cfg = &nxconfig.Config{StartDir: "~"}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	proxy := NewApp(app)
	ctrl := NewController(osfile.NewStore("/"), WithConfig(cfg), WithLogger(logger))
	w := NewWindow(proxy, ctrl)

	cleanup := func() {}
	if cfg.Watch.Enabled {
		wt, err := newWatcher(watcher.DefaultDelay, func(dir string) {
			proxy.QueueUpdateDraw(func() {
				if ctrl.State().Current == dir {
					ctrl.Reload()
				}
			})
		}, func(err error) {
			logger.Printf("watcher: %v", err)
		})
		if err != nil {
			logger.Printf("directory watcher disabled: %v", err)
		} else {
			ctrl.Subscribe(func(s NavState) {
				if s.Current == "" {
					return
				}
				if err := wt.Watch(s.Current); err != nil {
					logger.Printf("watch %s: %v", s.Current, err)
				}
			})
			cleanup = func() {
				_ = wt.Close()
			}
		}
	}

	if err := ctrl.Start(cfg.StartDir); err != nil {
		logger.Printf("start dir: %v", err)
		if err = ctrl.NavigateAddress(fallbackDir()); err != nil {
			cleanup()
			return nil, err
		}
	}

	proxy.EnableMouse(true)
	proxy.SetRoot(w, true)
	w.focusList()
	return cleanup, nil
}

func fallbackDir() string {
	wd, err := osGetwd()
	if err != nil {
		return "/"
	}
	return fsutils.FilesystemRoot(wd)
}
