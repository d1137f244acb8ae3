package render

import (
	"strings"
	"testing"

	"hexview/internal/buffer"
	"hexview/internal/hexfmt"
	"hexview/internal/keys"
	"hexview/internal/prompt"
	"hexview/internal/screen"
	"hexview/internal/viewport"
)

func sequential(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func setup(size, width, height, bpr int) (*viewport.Viewport, *screen.Grid) {
	buf := buffer.FromBytes("data.bin", sequential(size))
	v := viewport.New(buf, viewport.Frame{Width: width, Height: height}, bpr)
	return v, screen.NewGrid(width, height)
}

func TestTwoFullRows(t *testing.T) {
	// 95 columns fit exactly 32 bytes, 4 rows leave a 2 row data region
	v, g := setup(64, 95, 4, 32)

	if err := Render(g, v, prompt.State{}); err != nil {
		t.Fatal(err)
	}

	want0 := hexfmt.FormatRow(sequential(64)[:32], 95)
	want1 := hexfmt.FormatRow(sequential(64)[32:], 95)
	if g.Line(0) != want0 {
		t.Errorf("row 0: expected %q, got %q", want0, g.Line(0))
	}
	if g.Line(1) != want1 {
		t.Errorf("row 1: expected %q, got %q", want1, g.Line(1))
	}
	if !strings.HasPrefix(g.Line(0), "00 01 02") || !strings.HasSuffix(g.Line(1), "3E 3F") {
		t.Errorf("unexpected row contents %q / %q", g.Line(0), g.Line(1))
	}

	v.Down()
	if v.ScrollY() != 0 {
		t.Errorf("expected scroll to stay at the ceiling 0, got %d", v.ScrollY())
	}
	if v.Dirty() != viewport.RegionData|viewport.RegionStatus {
		t.Errorf("expected data|status dirty, got %v", v.Dirty())
	}
}

func TestRenderClearsDirtyFlags(t *testing.T) {
	v, g := setup(64, 95, 4, 32)
	v.Prompt()
	if err := Render(g, v, prompt.State{}); err != nil {
		t.Fatal(err)
	}
	if v.Dirty() != viewport.RegionNone || v.FocusPrompt() {
		t.Errorf("expected flags cleared, got %v focus=%v", v.Dirty(), v.FocusPrompt())
	}
}

func TestRenderOnlyTouchesDirtyRegions(t *testing.T) {
	v, g := setup(64, 95, 4, 32)
	if err := Render(g, v, prompt.State{}); err != nil {
		t.Fatal(err)
	}

	// scribble on the data region; a prompt-only update must not repaint it
	g.MoveTo(0, 0)
	g.Write("XX")

	v.Prompt()
	if err := Render(g, v, prompt.State{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(g.Line(0), "XX") {
		t.Errorf("data row was repainted: %q", g.Line(0))
	}
	if strings.TrimRight(g.Line(3), " ") != ":" {
		t.Errorf("expected prompt glyph, got %q", g.Line(3))
	}
	if _, _, visible := g.Cursor(); !visible {
		t.Error("expected cursor shown on prompt focus")
	}
}

func TestRowsClearPastEnd(t *testing.T) {
	v, _ := setup(10, 80, 6, 4)
	rows := Rows(v)

	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if !rows[0].Present || !rows[2].Present || rows[3].Present {
		t.Errorf("unexpected presence: %+v", rows)
	}
	if len(rows[2].Bytes) != 2 {
		t.Errorf("expected partial last row of 2 bytes, got %d", len(rows[2].Bytes))
	}
}

func TestRowsHorizontalScroll(t *testing.T) {
	// 11 columns hold 4 bytes
	v, _ := setup(16, 11, 4, 8)
	v.SetScrollX(3)

	rows := Rows(v)
	if got := rows[0].Bytes; len(got) != 4 || got[0] != 3 {
		t.Errorf("expected bytes 3..6, got %v", got)
	}

	v.SetScrollX(6)
	rows = Rows(v)
	if got := rows[1].Bytes; len(got) != 2 || got[0] != 14 {
		t.Errorf("expected bytes 14..15, got %v", got)
	}
}

func TestRowsTolerateOutOfRangeSetters(t *testing.T) {
	v, g := setup(16, 80, 6, 4)
	v.SetOffset(1 << 40)
	v.SetScrollX(1 << 40)
	v.SetScrollY(1 << 40)

	if err := Render(g, v, prompt.State{}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < v.DataHeight(); i++ {
		if strings.TrimSpace(g.Line(i)) != "" {
			t.Errorf("row %d: expected blank, got %q", i, g.Line(i))
		}
	}

	v.SetOffset(0)
	v.SetScrollY(0)
	rows := Rows(v)
	if !rows[0].Present || len(rows[0].Bytes) != 0 {
		t.Errorf("expected present empty row, got %+v", rows[0])
	}
}

func TestStatusLine(t *testing.T) {
	v, _ := setup(64, 60, 4, 32)
	v.SetOffset(2)
	v.SetScrollY(1)

	line := StatusLine(v, 60)
	if len(line) != 60 {
		t.Errorf("expected 60 cells, got %d", len(line))
	}
	if !strings.HasPrefix(line, "data.bin") {
		t.Errorf("expected file name on the left, got %q", line)
	}
	if !strings.HasSuffix(line, "NAV|64 B|o:2|s:1|x:0|w:32") {
		t.Errorf("unexpected parameters in %q", line)
	}

	if got := StatusLine(v, 10); len(got) != 10 {
		t.Errorf("expected truncated line of 10, got %q", got)
	}
	if got := StatusLine(v, 0); got != "" {
		t.Errorf("expected empty line, got %q", got)
	}
}

func TestStatusIsReversed(t *testing.T) {
	v, g := setup(64, 95, 4, 32)
	if err := Render(g, v, prompt.State{}); err != nil {
		t.Fatal(err)
	}
	if !g.Reversed(2, 0) || !g.Reversed(2, 94) {
		t.Error("expected the status row in reverse video")
	}
	if g.Reversed(0, 0) || g.Reversed(3, 0) {
		t.Error("unexpected reverse video outside the status row")
	}
}

func TestPromptEditingAndMessage(t *testing.T) {
	v, g := setup(64, 95, 4, 32)
	Render(g, v, prompt.State{})

	v.Prompt()
	Render(g, v, prompt.State{})

	p, _ := prompt.Feed(prompt.State{}, keys.Chars("w 8")...)
	v.UpdatePrompt()
	Render(g, v, p)
	if strings.TrimRight(g.Line(3), " ") != ":w 8" {
		t.Errorf("expected %q, got %q", ":w 8", g.Line(3))
	}
	if row, col, _ := g.Cursor(); row != 3 || col != 4 {
		t.Errorf("expected cursor at 3,4, got %d,%d", row, col)
	}

	v.RejectCommand("w 8x")
	Render(g, v, prompt.State{})
	if strings.TrimRight(g.Line(3), " ") != "unknown command: w 8x" {
		t.Errorf("unexpected prompt row %q", g.Line(3))
	}
	if _, _, visible := g.Cursor(); visible {
		t.Error("expected hidden cursor while navigating")
	}
}

func TestReset(t *testing.T) {
	g := screen.NewGrid(10, 3)
	g.HideCursor()
	g.MoveTo(2, 5)
	if err := Reset(g); err != nil {
		t.Fatal(err)
	}
	if row, col, visible := g.Cursor(); row != 0 || col != 0 || !visible {
		t.Errorf("expected visible cursor at origin, got %d,%d %v", row, col, visible)
	}
}
