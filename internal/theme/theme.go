package theme

import "git.lost.host/meutraa/ledhero/internal/graphics"

type Theme interface {
	// Matrix colours
	Blank() graphics.Color
	Pending() graphics.Color
	Hit() graphics.Color
	Target(distance int) graphics.Color

	// Status text
	RenderScore(score int) string
	RenderJudgement(index int, count int) string
	RenderLabel(name string, value int) string
	RenderBanner(message string) string
}
