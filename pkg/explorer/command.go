package explorer

import "fmt"

// Command is an action offered by the list context menu.
type Command int

const (
	CommandOpen Command = iota
	CommandDelete
	CommandRename
)

var Commands = []Command{CommandOpen, CommandDelete, CommandRename}

func (c Command) String() string {
	switch c {
	case CommandOpen:
		return "Open"
	case CommandDelete:
		return "Delete"
	case CommandRename:
		return "Rename"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Prompter asks the user questions. Answers are delivered through callbacks
// so that implementations can show non-blocking dialogs.
type Prompter interface {
	Confirm(question string, answer func(yes bool))
	AskName(current string, done func(name string, ok bool))
}
