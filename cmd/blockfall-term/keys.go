package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

// commandFor maps a key press to a game command.
func commandFor(key tcell.Key, r rune) (tetris.Command, bool) {
	switch key {
	case tcell.KeyLeft:
		return tetris.MoveLeft, true
	case tcell.KeyRight:
		return tetris.MoveRight, true
	case tcell.KeyDown:
		return tetris.SoftDrop, true
	case tcell.KeyUp:
		return tetris.Rotate, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return tetris.Quit, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch unicode.ToLower(r) {
	case 'h', 'a':
		return tetris.MoveLeft, true
	case 'l', 'd':
		return tetris.MoveRight, true
	case 'j', 's':
		return tetris.SoftDrop, true
	case 'k', 'w', 'x':
		return tetris.Rotate, true
	case ' ':
		return tetris.HardDrop, true
	case 'q':
		return tetris.Quit, true
	}
	return 0, false
}

func isRestart(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && unicode.ToLower(r) == 'r'
}
