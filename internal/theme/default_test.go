package theme

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/ledhero/internal/game"
)

func brightness(t *DefaultTheme, distance int) int {
	c := t.Target(distance)
	return int(c.R) + int(c.G) + int(c.B)
}

func TestTargetBrightestInCentre(t *testing.T) {
	th := &DefaultTheme{}
	if !(brightness(th, 0) > brightness(th, 1) && brightness(th, 1) > brightness(th, 2)) {
		t.Error("target tint should fade away from the centre")
	}
	if th.Target(-1) != th.Target(1) || th.Target(7) != th.Target(2) {
		t.Error("target tint should be symmetric and clamp at the edge")
	}
	if th.Target(2).IsBlack() {
		t.Error("outer scoring column should still be tinted")
	}
}

func TestRenderText(t *testing.T) {
	th := &DefaultTheme{}
	if !strings.Contains(th.RenderScore(-4), "-4") {
		t.Error("score text should contain the score")
	}
	for i, j := range game.Judgements {
		if !strings.Contains(th.RenderJudgement(i, 12), j.Name) {
			t.Errorf("judgement text should contain %v", j.Name)
		}
	}
	if th.RenderJudgement(len(game.Judgements), 1) != "" {
		t.Error("unknown judgements render nothing")
	}
}
