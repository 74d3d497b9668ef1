// Command blockfall runs the falling-block game in a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/loop/debugui"
	debugui_ebiten "github.com/plus3/blockfall/loop/debugui/ebiten"
	"github.com/plus3/blockfall/tetris"
)

const (
	CellSize   = 28
	PanelWidth = 180
	Margin     = 20
)

func main() {
	log.SetPrefix("[BLOCKFALL] ")

	if err := run(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run(fs *flag.FlagSet, args []string) error {
	cfg, err := config.ParseConfig(fs, args)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	opts := cfg.SessionOptions()
	opts = append(opts, tetris.WithListener(tetris.ListenerFunc(logGameOver)))

	if cfg.Sound {
		cues := audio.NewCues()
		if err := cues.Init(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer cues.Close()
			opts = append(opts, tetris.WithListener(cues))
		}
	}

	session := tetris.NewSession(opts...)
	scheduler := loop.NewGameScheduler(session)

	screenW := cfg.Width*CellSize + PanelWidth + 2*Margin
	screenH := cfg.Height*CellSize + 2*Margin
	backend := debugui_ebiten.NewImguiBackend("Blockfall", screenW, screenH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	perf := debugui.NewPerformanceStats(scheduler, 120)
	ui := &debugui.ImguiSystem{Hidden: !cfg.Debug}
	ui.Add(debugui.NewSessionInspector(scheduler).Item())
	ui.Add(perf.Item())
	scheduler.Register(ui)

	game := &Game{
		Scheduler: scheduler,
		Backend:   backend,
		DebugUI:   ui,
		Perf:      perf,
		Input:     NewInput(),
	}

	log.Printf("starting %dx%d game, fall interval %s", cfg.Width, cfg.Height, cfg.FallInterval)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func logGameOver(e tetris.Event) {
	if e.Kind == tetris.EventGameOver {
		log.Printf("game over, score %d", e.Score)
	}
}
