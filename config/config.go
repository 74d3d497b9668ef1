// Package config loads launcher settings from BLOCKFALL_* environment
// variables and command-line flags, flags taking precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/plus3/blockfall/tetris"
)

// Config holds the settings shared by the blockfall binaries.
type Config struct {
	Width        int           `env:"BLOCKFALL_WIDTH"         envDefault:"10"`
	Height       int           `env:"BLOCKFALL_HEIGHT"        envDefault:"20"`
	FallInterval time.Duration `env:"BLOCKFALL_FALL_INTERVAL" envDefault:"1s"`
	LineScore    int           `env:"BLOCKFALL_LINE_SCORE"    envDefault:"100"`
	// Seed fixes the piece sequence. Zero picks a time-based seed.
	Seed  uint64 `env:"BLOCKFALL_SEED"`
	Bag   bool   `env:"BLOCKFALL_BAG"`
	Sound bool   `env:"BLOCKFALL_SOUND" envDefault:"true"`
	Debug bool   `env:"BLOCKFALL_DEBUG"`
}

// ParseConfig parses environment and flags into a Config and validates it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Width, "width", cfg.Width, "Grid width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Grid height in cells")
	fs.DurationVar(&cfg.FallInterval, "fall-interval", cfg.FallInterval, "Time between gravity steps")
	fs.IntVar(&cfg.LineScore, "line-score", cfg.LineScore, "Points per cleared line")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Piece sequence seed (0 for random)")
	fs.BoolVar(&cfg.Bag, "bag", cfg.Bag, "Deal pieces from shuffled 7-piece bags")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play sound cues")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show debug overlay on start")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the game engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 4 {
		errs = append(errs, fmt.Errorf("width must be at least 4, got %d", c.Width))
	}
	if c.Height < 2 {
		errs = append(errs, fmt.Errorf("height must be at least 2, got %d", c.Height))
	}
	if c.FallInterval <= 0 {
		errs = append(errs, fmt.Errorf("fall interval must be positive, got %s", c.FallInterval))
	}
	if c.LineScore < 0 {
		errs = append(errs, fmt.Errorf("line score must not be negative, got %d", c.LineScore))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SessionOptions converts the config into session options.
func (c Config) SessionOptions() []tetris.Option {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	randomizer := tetris.NewUniformRandomizer(seed)
	if c.Bag {
		randomizer = tetris.NewBagRandomizer(seed)
	}

	return []tetris.Option{
		tetris.WithSize(c.Width, c.Height),
		tetris.WithFallInterval(c.FallInterval),
		tetris.WithLineScore(c.LineScore),
		tetris.WithRandomizer(randomizer),
	}
}
