package render

import (
	"git.lost.host/meutraa/ledhero/internal/game"
	"git.lost.host/meutraa/ledhero/internal/graphics"
	"git.lost.host/meutraa/ledhero/internal/theme"
)

// Judged reports whether a note has already been scored.
type Judged interface {
	IsJudged(step int, lane uint8) bool
}

// Painter draws track notes onto a Display. It keeps no frame state:
// moving one beat erases the notes visible at the old beat and draws
// the notes visible at the new one.
type Painter struct {
	Display Display
	Theme   theme.Theme
	Layout  game.Layout
	Track   game.Track
	Judged  Judged
}

// Background clears the display and tints the scoring region.
func (p *Painter) Background() {
	p.Display.Clear()
	for col := p.Layout.ScoringStart(); col < p.Layout.Width; col++ {
		c := p.Theme.Target(p.Layout.CenterDistance(col))
		for row := 0; row < p.Layout.Rows(); row++ {
			p.Display.SetPixel(col, row, c)
		}
	}
}

// Erase restores the background under every note visible at beat.
func (p *Painter) Erase(beat int) {
	for note := range p.Layout.Visible(p.Track, beat) {
		p.paint(note, p.background(note.Column))
	}
}

// Draw paints every note visible at beat.
func (p *Painter) Draw(beat int) {
	for note := range p.Layout.Visible(p.Track, beat) {
		p.paint(note, p.noteColor(note))
	}
}

// Mark repaints a note that was just hit.
func (p *Painter) Mark(note game.Note) {
	p.paint(note, p.Theme.Hit())
}

func (p *Painter) background(col int) graphics.Color {
	if p.Layout.InScoringRegion(col) {
		return p.Theme.Target(p.Layout.CenterDistance(col))
	}
	return p.Theme.Blank()
}

func (p *Painter) noteColor(note game.Note) graphics.Color {
	if p.Layout.InScoringRegion(note.Column) && p.Judged != nil && p.Judged.IsJudged(note.Step, note.Lane) {
		return p.Theme.Hit()
	}
	return p.Theme.Pending()
}

func (p *Painter) paint(note game.Note, c graphics.Color) {
	top, bottom := note.Rows()
	p.Display.SetPixel(note.Column, top, c)
	p.Display.SetPixel(note.Column, bottom, c)
}
