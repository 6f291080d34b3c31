// Package launcher opens files with the default application of the host.
package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

var (
	goos        = runtime.GOOS
	execCommand = exec.Command
	startCmd    = func(cmd *exec.Cmd) error {
		if err := cmd.Start(); err != nil {
			return err
		}
		go func() {
			_ = cmd.Wait()
		}()
		return nil
	}
)

var ErrEmptyPath = errors.New("nothing to open")

// Command returns the program and arguments that open path on the given OS.
func Command(osName, path string) (name string, args []string) {
	switch osName {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open starts the default application for path and returns without waiting for it.
func Open(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	name, args := Command(goos, path)
	if err := startCmd(execCommand(name, args...)); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}
