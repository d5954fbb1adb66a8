package score

import (
	"git.lost.host/meutraa/ledhero/internal/game"
)

type DefaultScorer struct {
	track  game.Track
	layout game.Layout
	ledger *Ledger

	score  int
	counts []int
	passed int
}

func NewDefaultScorer(track game.Track, layout game.Layout) *DefaultScorer {
	return &DefaultScorer{
		track:  track,
		layout: layout,
		ledger: NewLedger(track.Len()),
		counts: make([]int, len(game.Judgements)),
	}
}

func (s *DefaultScorer) Reset() {
	s.ledger.Reset()
	s.score = 0
	s.passed = 0
	for i := range s.counts {
		s.counts[i] = 0
	}
}

func (s *DefaultScorer) Judge(beat int, lane uint8) Result {
	var closest, repeated *game.Note
	distance := s.layout.Width

	// Scan the whole region before deciding
	for note := range s.layout.Scoring(s.track, beat, lane) {
		if s.ledger.IsJudged(note.Step, note.Lane) {
			if repeated == nil {
				n := note
				repeated = &n
			}
			continue
		}
		d := s.layout.CenterDistance(note.Column)
		if d < distance {
			n := note
			closest = &n
			distance = d
		}
	}

	var result Result
	switch {
	case closest != nil:
		s.ledger.MarkJudged(closest.Step, closest.Lane)
		result = Result{Judgement: game.ForDistance(distance), Note: closest}
	case repeated != nil:
		result = Result{Judgement: game.Repeat, Note: repeated}
	default:
		result = Result{Judgement: game.Miss}
	}

	s.score += result.Points()
	s.counts[result.Judgement]++
	return result
}

func (s *DefaultScorer) Expire(beat int) {
	last := s.layout.Width - 1
	index, ok := s.layout.StepAt(s.track, beat, last)
	if !ok {
		return
	}
	for _, lane := range s.track.Step(index).Lanes() {
		if !s.ledger.IsJudged(index, lane) {
			s.passed++
		}
	}
}

func (s *DefaultScorer) IsJudged(step int, lane uint8) bool {
	return s.ledger.IsJudged(step, lane)
}

func (s *DefaultScorer) Score() int {
	return s.score
}

// Counts returns how many of each judgement were made, indexed like
// game.Judgements
func (s *DefaultScorer) Counts() []int {
	counts := make([]int, len(s.counts))
	copy(counts, s.counts)
	return counts
}

// Passed is the number of notes that scrolled off the display unjudged.
func (s *DefaultScorer) Passed() int {
	return s.passed
}
