// Package render repaints the screen regions a Viewport has marked dirty.
package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"hexview/internal/hexfmt"
	"hexview/internal/prompt"
	"hexview/internal/screen"
	"hexview/internal/viewport"
)

// Row is one display row of the data region. Present is false once the
// data has run out and the line should be cleared.
type Row struct {
	Bytes   []byte
	Present bool
}

// Rows computes what the data region shows. Offsets and scroll values past
// the end of the data are tolerated and produce empty rows.
func Rows(v *viewport.Viewport) []Row {
	height := v.DataHeight()
	rows := make([]Row, height)

	data := v.Visible()
	bpr := v.BytesPerRow()
	total := len(data) / bpr
	if len(data)%bpr != 0 {
		total++
	}
	perLine := hexfmt.MaxBytes(v.DataWidth())
	scrollX := v.ScrollX()

	for i := range rows {
		if v.ScrollY() >= total || i >= total-v.ScrollY() {
			break
		}
		r := v.ScrollY() + i
		start := r * bpr
		end := min(start+bpr, len(data))
		chunk := data[start:end]

		lo := min(scrollX, len(chunk))
		hi := len(chunk)
		if perLine < hi-lo {
			hi = lo + perLine
		}
		rows[i] = Row{Bytes: chunk[lo:hi], Present: true}
	}
	return rows
}

// StatusLine builds the status bar text: the file name on the left and the
// view parameters on the right, exactly width cells wide.
func StatusLine(v *viewport.Viewport, width int) string {
	if width <= 0 {
		return ""
	}
	buf := v.Buffer()
	right := fmt.Sprintf("%s|%s|o:%d|s:%d|x:%d|w:%d",
		v.Mode(),
		humanize.IBytes(uint64(buf.Size())),
		v.Offset(),
		v.ScrollY(),
		v.ScrollX(),
		v.BytesPerRow(),
	)

	rw := runewidth.StringWidth(right)
	if rw >= width {
		return runewidth.Truncate(right, width, "")
	}

	left := ""
	if room := width - rw - 1; room > 0 {
		left = runewidth.Truncate(buf.Filename(), room, "…")
	}
	pad := width - runewidth.StringWidth(left) - rw
	return left + strings.Repeat(" ", pad) + right
}

// Render repaints every dirty region, clears the dirty flags and flushes.
func Render(t screen.Terminal, v *viewport.Viewport, p prompt.State) error {
	dirty := v.Dirty()

	if dirty.Has(viewport.RegionData) {
		renderData(t, v)
	}
	if dirty.Has(viewport.RegionStatus) {
		renderStatus(t, v)
	}
	if v.FocusPrompt() {
		t.ShowCursor()
		t.MoveTo(v.PromptRow(), 0)
		t.ClearLine()
		t.Write(":")
	} else if dirty.Has(viewport.RegionPrompt) {
		renderPrompt(t, v, p)
	}

	v.ClearDirty()
	return t.Flush()
}

func renderData(t screen.Terminal, v *viewport.Viewport) {
	width := v.DataWidth()
	for i, row := range Rows(v) {
		t.MoveTo(i, 0)
		t.ClearLine()
		if row.Present {
			t.Write(hexfmt.FormatRow(row.Bytes, width))
		}
	}
}

func renderStatus(t screen.Terminal, v *viewport.Viewport) {
	row := v.StatusRow()
	if row < 0 {
		return
	}
	t.MoveTo(row, 0)
	t.ClearLine()
	t.SetReverse(true)
	t.Write(StatusLine(v, v.Frame().Width))
	t.SetReverse(false)
}

func renderPrompt(t screen.Terminal, v *viewport.Viewport, p prompt.State) {
	row := v.PromptRow()
	if row < 0 {
		return
	}
	switch v.Mode() {
	case viewport.ModeNavigating:
		t.MoveTo(row, 0)
		t.ClearLine()
		if msg := v.Message(); msg != "" {
			t.Write(runewidth.Truncate(msg, v.Frame().Width, ""))
		}
		t.HideCursor()
	case viewport.ModeEditingCommand:
		t.ShowCursor()
		t.MoveTo(row, 0)
		t.ClearLine()
		t.Write(":" + p.Text())
		t.MoveTo(row, 1+p.Cursor())
	}
}

// Reset leaves the cursor visible at the top left before the terminal
// returns to cooked mode.
func Reset(t screen.Terminal) error {
	t.SetReverse(false)
	t.MoveTo(0, 0)
	t.ShowCursor()
	return t.Flush()
}
