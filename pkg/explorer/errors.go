package explorer

import "errors"

var (
	ErrPathNotFound   = errors.New("path not found")
	ErrNoSelection    = errors.New("nothing selected")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoPrompter     = errors.New("no prompter to ask the user")
	ErrInvalidName    = errors.New("name can not contain a path separator")
)
