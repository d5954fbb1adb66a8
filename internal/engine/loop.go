package engine

import (
	"log"
	"time"

	"git.lost.host/meutraa/ledhero/internal/game"
	"git.lost.host/meutraa/ledhero/internal/input"
)

// Loop polls for input and advances the session on a fixed tick. It is
// the only caller of the session while a game is running.
type Loop struct {
	Session  *Session
	Interval time.Duration // Time between beats
	Manual   bool          // Only advance on an explicit step

	last    time.Duration
	started bool
}

// NewLoop ticks once every speed/Period.
func NewLoop(s *Session, speed time.Duration, period int, manual bool) *Loop {
	return &Loop{
		Session:  s,
		Interval: speed / time.Duration(period),
		Manual:   manual,
	}
}

// Start begins timing a new game from now.
func (l *Loop) Start(now time.Duration) {
	l.last = now
	l.started = true
}

// Reset makes the next Poll start timing a new game.
func (l *Loop) Reset() {
	l.started = false
}

// Poll handles at most one input event, then advances the beat if it is
// due. now is a monotonic time since an arbitrary origin. It returns false
// once the player quits or the game is over.
func (l *Loop) Poll(now time.Duration, ev *input.Event) bool {
	if !l.started {
		l.Start(now)
	}

	step := false
	if nil != ev {
		switch ev.Action {
		case input.Quit:
			return false
		case input.Trigger:
			r := l.Session.Trigger(ev.Lane)
			log.Printf("beat %v lane %v: %v (%+d)", l.Session.Beat(), ev.Lane, game.Judgements[r.Judgement].Name, r.Points())
		case input.ToggleManual:
			l.Manual = !l.Manual
		case input.Step:
			step = true
		}
	}

	if now-l.last >= l.Interval && (!l.Manual || step) {
		l.Session.Advance()
		l.last = now
	}

	return !l.Session.IsGameOver()
}
