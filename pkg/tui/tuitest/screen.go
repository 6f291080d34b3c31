// Package tuitest helps testing primitives against a simulation screen.
package tuitest

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// T is the part of testing.TB used here.
type T interface {
	Helper()
	Fatalf(format string, args ...any)
}

var newSimulationScreen = tcell.NewSimulationScreen

// NewSimScreen creates an initialised simulation screen of the given size.
func NewSimScreen(t T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := newSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
		return nil
	}
	s.SetSize(width, height)
	return s
}

// ReadLine returns the text drawn on row y.
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" || str == "\x00" {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// ReadScreen returns every row of the screen joined with newlines.
func ReadScreen(screen tcell.Screen) string {
	width, height := screen.Size()
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		lines[y] = strings.TrimRight(ReadLine(screen, y, width), " ")
	}
	return strings.Join(lines, "\n")
}
