package score

import (
	"git.lost.host/meutraa/ledhero/internal/game"
)

type Scorer interface {
	Reset()

	// Judge a trigger in lane at the given beat, exactly one judgement
	// is made per call
	Judge(beat int, lane uint8) Result

	// Count notes leaving the display unjudged before the clock moves on
	Expire(beat int)

	IsJudged(step int, lane uint8) bool
	Score() int
	Counts() []int
	Passed() int
}

type Result struct {
	Judgement int
	Note      *game.Note // The note that was hit or re-triggered, nil on a miss
}

func (r Result) Hit() bool {
	return game.IsHit(r.Judgement)
}

func (r Result) Points() int {
	return game.Judgements[r.Judgement].Points
}
