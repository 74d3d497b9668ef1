// Command blockfall-term runs the falling-block game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const (
	frameInterval  = 16 * time.Millisecond
	redrawInterval = 33 * time.Millisecond
)

func main() {
	log.SetPrefix("[BLOCKFALL-TERM] ")

	if err := run(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run(fs *flag.FlagSet, args []string) error {
	logPath := fs.String("log", "", "Write logs to this file (the terminal is busy drawing)")
	cfg, err := config.ParseConfig(fs, args)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
	defer log.SetOutput(os.Stderr)

	opts := cfg.SessionOptions()
	if cfg.Sound {
		cues := audio.NewCues()
		if err := cues.Init(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer cues.Close()
			opts = append(opts, tetris.WithListener(cues))
		}
	}
	opts = append(opts, tetris.WithListener(tetris.ListenerFunc(func(e tetris.Event) {
		if e.Kind == tetris.EventGameOver {
			log.Printf("game over, score %d", e.Score)
		}
	})))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	scheduler := loop.NewGameScheduler(tetris.NewSession(opts...))
	play(screen, scheduler)
	screen.Fini()

	log.Printf("exited after %d frames", scheduler.GetStats().Frames)
	return nil
}

func play(screen tcell.Screen, scheduler *loop.Scheduler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		scheduler.Run(ctx, frameInterval)
	}()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case ev := <-eventChan:
			handleEvent(screen, scheduler, ev)
		case <-ticker.C:
			draw(screen, scheduler.Snapshot())
		}
	}
}

func handleEvent(screen tcell.Screen, scheduler *loop.Scheduler, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isRestart(ev.Key(), ev.Rune()) && scheduler.Snapshot().Ended {
			scheduler.Reset()
			return
		}
		if cmd, ok := commandFor(ev.Key(), ev.Rune()); ok {
			scheduler.Push(cmd)
		}
	case *tcell.EventResize:
		screen.Sync()
	}
}
