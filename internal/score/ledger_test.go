package score

import "testing"

func TestLedger(t *testing.T) {
	l := NewLedger(4)
	if l.IsJudged(1, 2) {
		t.Error("new ledger should be empty")
	}
	l.MarkJudged(1, 2)
	if !l.IsJudged(1, 2) {
		t.Error("note should be judged after marking")
	}
	if l.IsJudged(1, 1) || l.IsJudged(1, 3) || l.IsJudged(0, 2) {
		t.Error("marking one note judged another")
	}

	// Out of range marks are ignored
	l.MarkJudged(4, 0)
	l.MarkJudged(-1, 0)
	l.MarkJudged(0, 4)
	if l.IsJudged(4, 0) || l.IsJudged(-1, 0) || l.IsJudged(0, 0) {
		t.Error("out of range mark was recorded")
	}

	l.Reset()
	if l.IsJudged(1, 2) {
		t.Error("reset should clear the ledger")
	}
}
