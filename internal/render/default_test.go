package render

import (
	"bytes"
	"strings"
	"testing"

	"git.lost.host/meutraa/ledhero/internal/graphics"
)

func TestDefaultRendererSetPixel(t *testing.T) {
	var out bytes.Buffer
	r := NewDefaultRenderer(2, 4, 16, 8)
	r.Out = &out

	r.SetPixel(1, 3, graphics.Color{R: 1, G: 2, B: 3})
	r.SetPixel(16, 0, graphics.Red)
	if err := r.flush(); nil != err {
		t.Fatal(err)
	}

	expected := "\033[5;6H\033[38;2;1;2;3m██\033[0m"
	if out.String() != expected {
		t.Log("out     ", strings.ReplaceAll(out.String(), "\033", "^["))
		t.Log("expected", strings.ReplaceAll(expected, "\033", "^["))
		t.Fail()
	}
}

func TestDefaultRendererBlackIsBlank(t *testing.T) {
	var out bytes.Buffer
	r := NewDefaultRenderer(1, 1, 16, 8)
	r.Out = &out
	r.SetPixel(0, 0, graphics.Black)
	r.flush()
	if out.String() != "\033[1;1H  " {
		t.Errorf("unexpected output %q", out.String())
	}
}
