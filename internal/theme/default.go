package theme

import (
	"fmt"

	"git.lost.host/meutraa/ledhero/internal/game"
	"git.lost.host/meutraa/ledhero/internal/graphics"
	"github.com/charmbracelet/lipgloss"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) Blank() graphics.Color {
	return graphics.Black
}

func (t *DefaultTheme) Pending() graphics.Color {
	return graphics.Red
}

func (t *DefaultTheme) Hit() graphics.Color {
	return graphics.Green
}

// Target tints the scoring region, brightest in the centre column.
func (t *DefaultTheme) Target(distance int) graphics.Color {
	if distance < 0 {
		distance = -distance
	}
	if distance >= len(targetShades) {
		distance = len(targetShades) - 1
	}
	return graphics.Yellow.Scale(1, targetShades[distance])
}

func (t *DefaultTheme) RenderScore(score int) string {
	style := scoreStyle
	if score < 0 {
		style = style.Foreground(color(graphics.Red))
	}
	return style.Render(fmt.Sprintf("Game Score: %4d", score))
}

func (t *DefaultTheme) RenderJudgement(index int, count int) string {
	if index < 0 || index >= len(game.Judgements) {
		return ""
	}
	name := fmt.Sprintf("%8s", game.Judgements[index].Name)
	return judgementStyles[index].Render(name) + fmt.Sprintf(":  %6v", count)
}

func (t *DefaultTheme) RenderLabel(name string, value int) string {
	return labelStyle.Render(fmt.Sprintf("%8s", name)) + fmt.Sprintf(":  %6v", value)
}

func (t *DefaultTheme) RenderBanner(message string) string {
	return bannerStyle.Render(message)
}

func color(c graphics.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

var (
	targetShades = [...]int{1, 2, 4}

	scoreStyle  = lipgloss.NewStyle().Bold(true).Foreground(color(graphics.White))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(color(graphics.Yellow))

	judgementStyles = [...]lipgloss.Style{
		game.Perfect: lipgloss.NewStyle().Bold(true).Foreground(color(graphics.Green)),
		game.Great:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00c0ec")),
		game.Good:    lipgloss.NewStyle().Foreground(color(graphics.Yellow)),
		game.Repeat:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ec8000")),
		game.Miss:    lipgloss.NewStyle().Bold(true).Foreground(color(graphics.Red)),
	}
)
