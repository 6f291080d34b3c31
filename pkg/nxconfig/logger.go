package nxconfig

import (
	"io"
	"log"
	"os"

	"github.com/nexplorer/nexplorer/pkg/fsutils"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger returns a logger writing to the configured log file, or a discarding logger.
func NewLogger(cfg LogConfig) (*log.Logger, io.Closer, error) {
	if cfg.File == "" {
		return log.New(io.Discard, "", 0), nopCloser{}, nil
	}
	f, err := os.OpenFile(fsutils.ExpandHome(cfg.File), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "nexplorer: ", log.LstdFlags), f, nil
}
