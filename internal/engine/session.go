package engine

import (
	"sync"

	"git.lost.host/meutraa/ledhero/internal/game"
	"git.lost.host/meutraa/ledhero/internal/render"
	"git.lost.host/meutraa/ledhero/internal/score"
	"git.lost.host/meutraa/ledhero/internal/theme"
)

// Session is the state of one game: beat clock, scorer and the painter
// that owns the display. A single mutex serialises beat advances and
// triggers.
type Session struct {
	mu sync.Mutex

	track  game.Track
	layout game.Layout
	clock  game.Clock

	scorer  score.Scorer
	painter *render.Painter
}

func NewSession(track game.Track, layout game.Layout, display render.Display, th theme.Theme) *Session {
	scorer := score.NewDefaultScorer(track, layout)
	s := &Session{
		track:  track,
		layout: layout,
		scorer: scorer,
		painter: &render.Painter{
			Display: display,
			Theme:   th,
			Layout:  layout,
			Track:   track,
			Judged:  scorer,
		},
	}
	s.Reset()
	return s
}

// Reset starts a new game.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clock.Reset()
	s.scorer.Reset()
	s.painter.Background()
	s.painter.Draw(s.clock.Beat())
}

// Advance scrolls the notes one beat and returns the new beat.
func (s *Session) Advance() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	beat := s.clock.Beat()
	s.painter.Erase(beat)
	s.scorer.Expire(beat)
	beat = s.clock.Advance()
	s.painter.Draw(beat)
	return beat
}

// Trigger judges a press of the given logical lane at the current beat.
func (s *Session) Trigger(lane uint8) score.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.scorer.Judge(s.clock.Beat(), lane)
	if result.Hit() {
		s.painter.Mark(*result.Note)
	}
	return result
}

func (s *Session) IsGameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Beat() >= s.track.Duration(s.layout.Period)
}

func (s *Session) Beat() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Beat()
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scorer.Score()
}

type Stats struct {
	Score  int
	Beat   int
	Counts []int // Indexed like game.Judgements
	Passed int
	Notes  int
}

func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Score:  s.scorer.Score(),
		Beat:   s.clock.Beat(),
		Counts: s.scorer.Counts(),
		Passed: s.scorer.Passed(),
		Notes:  s.track.NoteCount(),
	}
}
