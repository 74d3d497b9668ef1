package tetris

import "fmt"

// Command is a discrete player input. The zero value is not a command.
type Command uint8

const (
	MoveLeft Command = iota + 1
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	// Quit asks the driver to stop. Sessions ignore it.
	Quit
)

var commandNames = [...]string{
	MoveLeft:  "MoveLeft",
	MoveRight: "MoveRight",
	SoftDrop:  "SoftDrop",
	Rotate:    "Rotate",
	HardDrop:  "HardDrop",
	Quit:      "Quit",
}

func (c Command) String() string {
	if c == 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
	return commandNames[c]
}
