package render

import "git.lost.host/meutraa/ledhero/internal/graphics"

// Grid is an in-memory Display, used headless and in tests.
type Grid struct {
	width, height int
	pixels        []graphics.Color
	writes        int
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		pixels: make([]graphics.Color, width*height),
	}
}

func (g *Grid) SetPixel(column, row int, c graphics.Color) {
	if column < 0 || column >= g.width || row < 0 || row >= g.height {
		return
	}
	g.pixels[row*g.width+column] = c
	g.writes++
}

func (g *Grid) Clear() {
	for i := range g.pixels {
		g.pixels[i] = graphics.Black
	}
}

func (g *Grid) At(column, row int) graphics.Color {
	if column < 0 || column >= g.width || row < 0 || row >= g.height {
		return graphics.Black
	}
	return g.pixels[row*g.width+column]
}

// Writes counts SetPixel calls since the grid was made
func (g *Grid) Writes() int {
	return g.writes
}

// Snapshot copies the current pixels
func (g *Grid) Snapshot() []graphics.Color {
	s := make([]graphics.Color, len(g.pixels))
	copy(s, g.pixels)
	return s
}
