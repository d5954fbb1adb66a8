package config

import (
	"errors"
	"fmt"
	"time"

	"git.lost.host/meutraa/ledhero/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

var ErrSpeed = errors.New("game speed too small")

type Config struct {
	Speed       time.Duration // One track step per speed, one beat per speed/Period
	Keys        string
	FramePeriod time.Duration
	Manual      bool
	LogFile     string
	Top, Left   int
}

// Parse reads the command line, args excludes the program name.
func Parse(args []string) (*Config, error) {
	var c Config

	app := kingpin.New("ledhero", "Scrolling four lane rhythm game on a terminal LED matrix")
	app.Version(Version)
	app.Flag("speed", "Game speed, time per track step").Default("1s").Short('s').DurationVar(&c.Speed)
	app.Flag("keys", "Lane keys, lowest note first").Default("fdsa").Short('k').StringVar(&c.Keys)
	app.Flag("frame-period", "Poll and render period").Default("5ms").Short('p').DurationVar(&c.FramePeriod)
	app.Flag("manual", "Start in manual stepping mode").Short('m').BoolVar(&c.Manual)
	app.Flag("log-file", "Append logs to this file while playing").Short('l').StringVar(&c.LogFile)
	app.Flag("top", "Terminal row of the matrix").Default("2").IntVar(&c.Top)
	app.Flag("left", "Terminal column of the matrix").Default("4").IntVar(&c.Left)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}

	if c.Speed/time.Duration(game.DefaultLayout.Period) <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrSpeed, c.Speed)
	}
	if c.FramePeriod <= 0 {
		return nil, fmt.Errorf("frame period must be positive: %v", c.FramePeriod)
	}
	if c.Top < 1 || c.Left < 1 {
		return nil, fmt.Errorf("matrix origin must be at least 1,1: %v,%v", c.Top, c.Left)
	}
	return &c, nil
}

// TickInterval is the time between two beats.
func (c *Config) TickInterval() time.Duration {
	return c.Speed / time.Duration(game.DefaultLayout.Period)
}
