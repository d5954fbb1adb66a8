package render

import (
	"testing"

	"git.lost.host/meutraa/ledhero/internal/game"
	"git.lost.host/meutraa/ledhero/internal/graphics"
	"git.lost.host/meutraa/ledhero/internal/theme"
)

type judgedSet map[[2]int]bool

func (j judgedSet) IsJudged(step int, lane uint8) bool {
	return j[[2]int{step, int(lane)}]
}

func newPainter(track game.Track, judged judgedSet) (*Painter, *Grid) {
	layout := game.DefaultLayout
	grid := NewGrid(layout.Width, layout.Rows())
	return &Painter{
		Display: grid,
		Theme:   &theme.DefaultTheme{},
		Layout:  layout,
		Track:   track,
		Judged:  judged,
	}, grid
}

func TestBackground(t *testing.T) {
	p, g := newPainter(game.DefaultTrack(), judgedSet{})
	th := p.Theme
	p.Background()
	for row := 0; row < p.Layout.Rows(); row++ {
		if g.At(10, row) != th.Blank() {
			t.Errorf("row %v: column 10 should be blank", row)
		}
		if g.At(13, row) != th.Target(0) || g.At(11, row) != th.Target(2) || g.At(14, row) != th.Target(1) {
			t.Errorf("row %v: scoring region not tinted", row)
		}
	}
}

func TestDrawColors(t *testing.T) {
	// Step 1 has lanes 0 and 2, step 2 has lane 1
	track := game.NewTrack([]game.Step{0x00, 0x05, 0x02})
	p, g := newPainter(track, judgedSet{{1, 0}: true})
	th := p.Theme
	p.Background()

	// Beat 3 puts step 1 in the centre and step 2 at column 8
	p.Draw(3)
	tests := map[[2]int]graphics.Color{
		{13, 0}: th.Hit(),
		{13, 1}: th.Hit(),
		{13, 4}: th.Pending(),
		{13, 5}: th.Pending(),
		{13, 2}: th.Target(0),
		{8, 2}:  th.Pending(),
		{8, 3}:  th.Pending(),
		{8, 0}:  th.Blank(),
	}
	for pos, expected := range tests {
		if got := g.At(pos[0], pos[1]); got != expected {
			t.Errorf("column %v row %v: got %v, expected %v", pos[0], pos[1], got, expected)
		}
	}

	p.Erase(3)
	if g.At(13, 0) != th.Target(0) || g.At(8, 2) != th.Blank() {
		t.Error("erase should restore the background")
	}
}

func TestJudgedOutsideRegionIsPending(t *testing.T) {
	track := game.NewTrack([]game.Step{0x00, 0x01})
	p, g := newPainter(track, judgedSet{{1, 0}: true})
	p.Draw(0)
	if g.At(10, 0) != p.Theme.Pending() {
		t.Error("notes outside the scoring region are always pending")
	}
}

func TestMark(t *testing.T) {
	p, g := newPainter(game.DefaultTrack(), judgedSet{})
	p.Mark(game.Note{Column: 12, Lane: 3, Step: 9})
	if g.At(12, 6) != p.Theme.Hit() || g.At(12, 7) != p.Theme.Hit() {
		t.Error("mark should paint both rows of the lane")
	}
	if g.Writes() != 2 {
		t.Errorf("mark should touch two pixels, touched %v", g.Writes())
	}
}

func TestAdvanceOnlyTouchesNoteColumns(t *testing.T) {
	track := game.DefaultTrack()
	p, g := newPainter(track, judgedSet{})
	p.Background()
	p.Draw(0)

	for beat := 0; beat < track.Duration(p.Layout.Period); beat++ {
		touched := map[int]bool{}
		for n := range p.Layout.Visible(track, beat) {
			touched[n.Column] = true
		}
		for n := range p.Layout.Visible(track, beat+1) {
			touched[n.Column] = true
		}

		before := g.Snapshot()
		p.Erase(beat)
		p.Draw(beat + 1)
		after := g.Snapshot()

		for i := range before {
			col := i % p.Layout.Width
			if !touched[col] && before[i] != after[i] {
				t.Fatalf("beat %v: column %v row %v changed outside the note columns", beat, col, i/p.Layout.Width)
			}
		}
	}
}

func TestAdvanceMatchesFreshDraw(t *testing.T) {
	track := game.DefaultTrack()
	p, g := newPainter(track, judgedSet{})
	fresh, f := newPainter(track, judgedSet{})
	p.Background()
	p.Draw(0)

	for beat := 1; beat < 60; beat++ {
		p.Erase(beat - 1)
		p.Draw(beat)

		fresh.Background()
		fresh.Draw(beat)

		a, b := g.Snapshot(), f.Snapshot()
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("beat %v: pixel %v is %v after scrolling, %v when drawn fresh", beat, i, a[i], b[i])
			}
		}
	}
}
