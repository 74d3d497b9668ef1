package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want tetris.Command
		ok   bool
	}{
		{"left arrow", tcell.KeyLeft, 0, tetris.MoveLeft, true},
		{"right arrow", tcell.KeyRight, 0, tetris.MoveRight, true},
		{"down arrow", tcell.KeyDown, 0, tetris.SoftDrop, true},
		{"up arrow", tcell.KeyUp, 0, tetris.Rotate, true},
		{"escape", tcell.KeyEscape, 0, tetris.Quit, true},
		{"ctrl-c", tcell.KeyCtrlC, 0, tetris.Quit, true},
		{"vi left", tcell.KeyRune, 'h', tetris.MoveLeft, true},
		{"vi right", tcell.KeyRune, 'l', tetris.MoveRight, true},
		{"vi down", tcell.KeyRune, 'j', tetris.SoftDrop, true},
		{"vi rotate", tcell.KeyRune, 'k', tetris.Rotate, true},
		{"upper case", tcell.KeyRune, 'A', tetris.MoveLeft, true},
		{"space", tcell.KeyRune, ' ', tetris.HardDrop, true},
		{"q", tcell.KeyRune, 'q', tetris.Quit, true},
		{"unbound rune", tcell.KeyRune, 'z', 0, false},
		{"unbound key", tcell.KeyF5, 0, 0, false},
		{"restart is not a command", tcell.KeyRune, 'r', 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := commandFor(tt.key, tt.r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsRestart(t *testing.T) {
	assert.True(t, isRestart(tcell.KeyRune, 'r'))
	assert.True(t, isRestart(tcell.KeyRune, 'R'))
	assert.False(t, isRestart(tcell.KeyRune, 'q'))
	assert.False(t, isRestart(tcell.KeyEnter, 0))
}
