package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/ledhero/internal/graphics"
	"golang.org/x/term"
)

var ErrTerminalTooSmall = errors.New("terminal too small for the matrix")

// DefaultRenderer draws the pixel grid as coloured blocks on an ANSI
// terminal. Each pixel is two cells wide so it looks roughly square.
type DefaultRenderer struct {
	Top, Left     int // Terminal origin of the matrix, 1 based
	Width, Height int // Matrix size in pixels

	Out io.Writer

	buffer strings.Builder
}

func NewDefaultRenderer(top, left, width, height int) *DefaultRenderer {
	return &DefaultRenderer{
		Top:    top,
		Left:   left,
		Width:  width,
		Height: height,
		Out:    os.Stdout,
	}
}

func (r *DefaultRenderer) Init() error {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		columns, rows, err := term.GetSize(fd)
		if nil != err {
			return fmt.Errorf("unable to get terminal size: %w", err)
		}
		if columns < r.Left+2*r.Width || rows < r.Top+r.Height {
			return fmt.Errorf("%w: need %vx%v, have %vx%v",
				ErrTerminalTooSmall, r.Left+2*r.Width, r.Top+r.Height, columns, rows)
		}
	}

	r.buffer.WriteString("\033[?1049h") // Enable alternate buffer
	r.buffer.WriteString("\033[?25l")   // Make the cursor invisible
	r.buffer.WriteString("\033[2J")     // Clear the screen
	return r.flush()
}

func (r *DefaultRenderer) Deinit() error {
	r.buffer.WriteString("\033[?1049l") // Disable alternate buffer
	r.buffer.WriteString("\033[?25h")   // Make the cursor visible
	return r.flush()
}

func (r *DefaultRenderer) RenderLoop(framePeriod time.Duration, render func(now time.Duration) bool) {
	cont := true
	startTime := time.Now()
	for cont {
		now := time.Now()
		deadline := now.Add(framePeriod)

		cont = render(now.Sub(startTime))

		r.flush()
		time.Sleep(time.Until(deadline))
	}
}

func (r *DefaultRenderer) SetPixel(column, row int, c graphics.Color) {
	if column < 0 || column >= r.Width || row < 0 || row >= r.Height {
		return
	}
	if c.IsBlack() {
		r.Fill(r.Top+row, r.Left+2*column, "  ")
		return
	}
	r.FillColor(r.Top+row, r.Left+2*column, c, "██")
}

func (r *DefaultRenderer) Clear() {
	for row := 0; row < r.Height; row++ {
		r.Fill(r.Top+row, r.Left, strings.Repeat(" ", 2*r.Width))
	}
}

func (r *DefaultRenderer) ClearLine(row int) {
	r.moveTo(row, 1)
	r.buffer.WriteString("\033[2K")
}

func (r *DefaultRenderer) moveTo(row, column int) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.moveTo(row, column)
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column int, c graphics.Color, message string) {
	r.moveTo(row, column)
	r.buffer.WriteString("\033[38;2;")
	r.buffer.WriteString(strconv.Itoa(int(c.R)))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(int(c.G)))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(int(c.B)))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) flush() error {
	defer r.buffer.Reset()
	if r.buffer.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(r.Out, r.buffer.String())
	return err
}
