package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/tetris"
)

const (
	// Ticks a held key waits before repeating, and the ticks between repeats.
	repeatDelay    = 10
	repeatInterval = 3
)

type binding struct {
	keys   []ebiten.Key
	cmd    tetris.Command
	repeat bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, cmd: tetris.MoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, cmd: tetris.MoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, cmd: tetris.SoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX}, cmd: tetris.Rotate},
	{keys: []ebiten.Key{ebiten.KeySpace}, cmd: tetris.HardDrop},
}

// Input turns keyboard state into game commands, once per tick.
type Input struct {
	suppressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Reset drops keys held while input was captured elsewhere, so they do not
// fire when focus returns.
func (in *Input) Reset() {
	in.suppressed = true
}

// Poll returns the commands for this tick. duration reports for how many
// ticks a key has been held, 0 if it is up.
func (in *Input) Poll(duration func(ebiten.Key) int) []tetris.Command {
	var cmds []tetris.Command
	anyHeld := false

	for _, b := range bindings {
		held := 0
		for _, k := range b.keys {
			held = max(held, duration(k))
		}
		if held > 0 {
			anyHeld = true
		}
		if in.suppressed {
			continue
		}
		if fires(held, b.repeat) {
			cmds = append(cmds, b.cmd)
		}
	}

	if !anyHeld {
		in.suppressed = false
	}
	return cmds
}

func fires(held int, repeat bool) bool {
	if held == 1 {
		return true
	}
	return repeat && held > repeatDelay && (held-repeatDelay)%repeatInterval == 0
}
