package render

import (
	"time"

	"git.lost.host/meutraa/ledhero/internal/graphics"
)

// Display is a write-only pixel grid.
type Display interface {
	SetPixel(column, row int, color graphics.Color)
	Clear()
}

type Renderer interface {
	Display
	Init() error
	Deinit() error
	RenderLoop(framePeriod time.Duration, render func(now time.Duration) bool)
	Fill(row, column int, message string)
	ClearLine(row int)
}
