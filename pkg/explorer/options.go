package explorer

import (
	"io"
	"log"

	"github.com/nexplorer/nexplorer/pkg/drives"
	"github.com/nexplorer/nexplorer/pkg/launcher"
	"github.com/nexplorer/nexplorer/pkg/nxconfig"
)

// DriveLister lists the drives offered in the drive selector.
type DriveLister interface {
	List() []drives.Drive
}

type options struct {
	drives       DriveLister
	prompter     Prompter
	open         func(path string) error
	onError      func(err error)
	logger       *log.Logger
	recordDrives bool
	applySize    bool
	showHidden   bool
	timeFormat   string
}

type Option func(o *options)

func defaultOptions() options {
	return options{
		drives:     drives.NewEnumerator(nil),
		open:       launcher.Open,
		logger:     log.New(io.Discard, "", 0),
		timeFormat: nxconfig.DefaultTimeFormat,
	}
}

func WithDrives(lister DriveLister) Option {
	return func(o *options) {
		o.drives = lister
	}
}

func WithPrompter(p Prompter) Option {
	return func(o *options) {
		o.prompter = p
	}
}

func WithOpener(open func(path string) error) Option {
	return func(o *options) {
		o.open = open
	}
}

// WithErrorHandler receives failures of actions that complete after a prompt.
func WithErrorHandler(f func(err error)) Option {
	return func(o *options) {
		o.onError = f
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRecordDrives makes drive selection add a history entry.
func WithRecordDrives(v bool) Option {
	return func(o *options) {
		o.recordDrives = v
	}
}

// WithApplySize enables the size part of the filter.
func WithApplySize(v bool) Option {
	return func(o *options) {
		o.applySize = v
	}
}

func WithShowHidden(v bool) Option {
	return func(o *options) {
		o.showHidden = v
	}
}

func WithTimeFormat(layout string) Option {
	return func(o *options) {
		if layout != "" {
			o.timeFormat = layout
		}
	}
}

// WithConfig applies the UI, filter and history settings of cfg.
func WithConfig(cfg *nxconfig.Config) Option {
	return func(o *options) {
		if cfg == nil {
			return
		}
		o.recordDrives = cfg.History.RecordDrives
		o.applySize = cfg.Filter.ApplySize
		o.showHidden = cfg.UI.ShowHidden
		if cfg.UI.TimeFormat != "" {
			o.timeFormat = cfg.UI.TimeFormat
		}
	}
}
