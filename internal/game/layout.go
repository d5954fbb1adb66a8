package game

import "iter"

// Layout describes how the track scrolls across the display.
type Layout struct {
	Width          int // Display columns
	Period         int // Beats between two consecutive steps on screen
	ScoringColumns int // The rightmost columns where a trigger can hit
}

// DefaultLayout is a 16x8 matrix with the last five columns scoring.
var DefaultLayout = Layout{
	Width:          16,
	Period:         5,
	ScoringColumns: 5,
}

// Rows is the display height, two rows per lane.
func (l Layout) Rows() int {
	return 2 * NLanes
}

func (l Layout) ScoringStart() int {
	return l.Width - l.ScoringColumns
}

func (l Layout) Center() int {
	return l.Width - 1 - l.ScoringColumns/2
}

func (l Layout) InScoringRegion(col int) bool {
	return col >= l.ScoringStart() && col < l.Width
}

// CenterDistance is how many columns col is from the centre of the
// scoring region.
func (l Layout) CenterDistance(col int) int {
	d := col - l.Center()
	if d < 0 {
		return -d
	}
	return d
}

// StepAt returns the track step shown at col on the given beat.
// Columns only carry a step every Period beats, and nothing is shown once
// the window has scrolled past the end of the track.
func (l Layout) StepAt(track Track, beat, col int) (int, bool) {
	if col < 0 || col >= l.Width {
		return 0, false
	}
	future := l.Width - 1 - col
	if (future+beat)%l.Period != 0 {
		return 0, false
	}
	index := (future + beat) / l.Period
	if index >= track.Len() {
		return 0, false
	}
	return index, true
}

// Visible yields every note on screen at beat, scanning columns left to
// right and lanes from 0 up.
func (l Layout) Visible(track Track, beat int) iter.Seq[Note] {
	return func(yield func(Note) bool) {
		for col := 0; col < l.Width; col++ {
			index, ok := l.StepAt(track, beat, col)
			if !ok {
				continue
			}
			step := track.Step(index)
			for lane := uint8(0); lane < NLanes; lane++ {
				if !step.Has(lane) {
					continue
				}
				if !yield(Note{Column: col, Lane: lane, Step: index}) {
					return
				}
			}
		}
	}
}

// Scoring yields the notes in lane that are inside the scoring region.
func (l Layout) Scoring(track Track, beat int, lane uint8) iter.Seq[Note] {
	return func(yield func(Note) bool) {
		for col := l.ScoringStart(); col < l.Width; col++ {
			index, ok := l.StepAt(track, beat, col)
			if !ok || !track.Has(index, lane) {
				continue
			}
			if !yield(Note{Column: col, Lane: lane, Step: index}) {
				return
			}
		}
	}
}
