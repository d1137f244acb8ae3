package screen

import (
	"bufio"
	"io"

	"github.com/charmbracelet/x/ansi"
)

const (
	sgrReverse    = "\x1b[7m"
	sgrReverseOff = "\x1b[27m"
)

// ANSI writes escape sequences to an underlying writer. Output is buffered
// until Flush; the first write error is reported there.
type ANSI struct {
	w *bufio.Writer
}

func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: bufio.NewWriterSize(w, 16*1024)}
}

func (a *ANSI) MoveTo(row, col int) {
	a.w.WriteString(ansi.CursorPosition(col+1, row+1))
}

func (a *ANSI) ClearLine() {
	a.w.WriteString(ansi.EraseEntireLine)
}

func (a *ANSI) ShowCursor() {
	a.w.WriteString(ansi.ShowCursor)
}

func (a *ANSI) HideCursor() {
	a.w.WriteString(ansi.HideCursor)
}

func (a *ANSI) SetReverse(on bool) {
	if on {
		a.w.WriteString(sgrReverse)
	} else {
		a.w.WriteString(sgrReverseOff)
	}
}

func (a *ANSI) Write(text string) {
	a.w.WriteString(text)
}

func (a *ANSI) Flush() error {
	return a.w.Flush()
}

// EnterAltScreen switches to the alternate screen and clears it.
func (a *ANSI) EnterAltScreen() error {
	a.w.WriteString(ansi.SetAltScreenSaveCursorMode)
	a.w.WriteString(ansi.EraseEntireScreen)
	return a.w.Flush()
}

// ExitAltScreen returns to the normal screen.
func (a *ANSI) ExitAltScreen() error {
	a.w.WriteString(sgrReverseOff)
	a.w.WriteString(ansi.ResetAltScreenSaveCursorMode)
	return a.w.Flush()
}
