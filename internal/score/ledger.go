package score

import "git.lost.host/meutraa/ledhero/internal/game"

// Ledger remembers which (step, lane) notes have been judged this game.
type Ledger struct {
	steps []game.Step
}

func NewLedger(steps int) *Ledger {
	return &Ledger{steps: make([]game.Step, steps)}
}

func (l *Ledger) IsJudged(step int, lane uint8) bool {
	if step < 0 || step >= len(l.steps) {
		return false
	}
	return l.steps[step].Has(lane)
}

// MarkJudged records the note as judged. A mark is only undone by Reset.
func (l *Ledger) MarkJudged(step int, lane uint8) {
	if step < 0 || step >= len(l.steps) || lane >= game.NLanes {
		return
	}
	l.steps[step] |= 1 << lane
}

func (l *Ledger) Reset() {
	for i := range l.steps {
		l.steps[i] = 0
	}
}
