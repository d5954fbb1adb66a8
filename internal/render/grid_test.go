package render

import (
	"testing"

	"git.lost.host/meutraa/ledhero/internal/graphics"
)

func TestGrid(t *testing.T) {
	g := NewGrid(4, 2)
	g.SetPixel(3, 1, graphics.Red)
	g.SetPixel(4, 0, graphics.Red)
	g.SetPixel(-1, 0, graphics.Red)
	if g.At(3, 1) != graphics.Red {
		t.Error("pixel not set")
	}
	if g.Writes() != 1 {
		t.Errorf("out of bounds writes should be dropped, counted %v", g.Writes())
	}
	g.Clear()
	if g.At(3, 1) != graphics.Black {
		t.Error("clear should blank the grid")
	}
}
