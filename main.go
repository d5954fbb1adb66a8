package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/ledhero/internal/config"
	"git.lost.host/meutraa/ledhero/internal/engine"
	"git.lost.host/meutraa/ledhero/internal/game"
	"git.lost.host/meutraa/ledhero/internal/input"
	"git.lost.host/meutraa/ledhero/internal/render"
	"git.lost.host/meutraa/ledhero/internal/theme"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

// Poll at most one event per frame
func poll(events <-chan input.Event) *input.Event {
	select {
	case ev := <-events:
		return &ev
	default:
		return nil
	}
}

func openLog(file string) (io.Writer, func(), error) {
	if file == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if nil != err {
		return nil, nil, fmt.Errorf("unable to open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func renderStatus(r render.Renderer, th theme.Theme, row, col int, stats engine.Stats, manual bool) {
	r.Fill(row, col, th.RenderScore(stats.Score))
	r.Fill(row+2, col, th.RenderLabel("Beat", stats.Beat))
	r.Fill(row+3, col, th.RenderLabel("Notes", stats.Notes))
	for i, count := range stats.Counts {
		r.Fill(row+5+i, col, th.RenderJudgement(i, count))
	}
	r.Fill(row+5+len(stats.Counts), col, th.RenderLabel("Passed", stats.Passed))

	mode := "                  "
	if manual {
		mode = th.RenderBanner("MANUAL MODE ACTIVE")
	}
	r.Fill(row+7+len(stats.Counts), col, mode)
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}
	keymap, err := input.NewKeymap(cfg.Keys)
	if nil != err {
		return err
	}
	logOut, closeLog, err := openLog(cfg.LogFile)
	if nil != err {
		return err
	}
	defer closeLog()

	layout := game.DefaultLayout

	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = render.NewDefaultRenderer(cfg.Top, cfg.Left, layout.Width, layout.Rows())
	var th theme.Theme = &theme.DefaultTheme{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan input.Event, 16)
	closeKeyboard, err := input.Read(ctx, keymap, events)
	if nil != err {
		return err
	}
	defer func() {
		if err := closeKeyboard(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		r.Deinit()
	}()

	log.SetOutput(logOut)
	defer log.SetOutput(os.Stderr)

	session := engine.NewSession(game.DefaultTrack(), layout, r, th)
	loop := engine.NewLoop(session, cfg.Speed, layout.Period, cfg.Manual)
	statusRow, statusCol := cfg.Top, cfg.Left+2*layout.Width+6
	bannerRow := cfg.Top + layout.Rows() + 2

	for {
		session.Reset()
		loop.Reset()
		log.Printf("new game, %v beats every %v", game.DefaultTrack().Duration(layout.Period), loop.Interval)

		quit := false
		r.RenderLoop(cfg.FramePeriod, func(now time.Duration) bool {
			ev := poll(events)
			if nil != ev && ev.Action == input.Quit {
				quit = true
			}
			cont := loop.Poll(now, ev)
			renderStatus(r, th, statusRow, statusCol, session.Stats(), loop.Manual)
			return cont
		})
		if quit {
			return nil
		}

		stats := session.Stats()
		log.Printf("game over, score %v, passed %v of %v", stats.Score, stats.Passed, stats.Notes)
		r.Fill(bannerRow, cfg.Left, th.RenderBanner("GAME OVER"))
		r.Fill(bannerRow+1, cfg.Left, "Press a button, 's' or Enter to start a new game, Esc to quit")

		again := false
		r.RenderLoop(cfg.FramePeriod, func(time.Duration) bool {
			ev := poll(events)
			if nil == ev {
				return true
			}
			switch ev.Action {
			case input.Quit:
				return false
			case input.Start, input.Trigger:
				again = true
				return false
			}
			return true
		})
		if !again {
			return nil
		}
		r.ClearLine(bannerRow)
		r.ClearLine(bannerRow + 1)
	}
}
