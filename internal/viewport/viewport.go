// Package viewport maps a byte buffer onto a fixed character grid. It owns
// the view parameters (offset, scroll, row width), enforces the navigation
// clamps and records which screen regions need repainting.
//
// The screen is split into a data region on top, a status bar on the second
// to last row and a prompt on the last row.
package viewport

import (
	"fmt"
	"math"

	"hexview/internal/buffer"
	"hexview/internal/command"
	"hexview/internal/hexfmt"
)

const DefaultBytesPerRow = 32

const (
	statusBarHeight = 1
	promptHeight    = 1
)

type Mode int

const (
	ModeNavigating Mode = iota
	ModeEditingCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNavigating:
		return "NAV"
	case ModeEditingCommand:
		return "CMD"
	default:
		return "?"
	}
}

// Frame is the terminal size in character cells.
type Frame struct {
	Width  int
	Height int
}

type Viewport struct {
	buf   *buffer.Buffer
	frame Frame

	offset      int
	scrollY     int
	scrollX     int
	bytesPerRow int
	mode        Mode

	dirty       Region
	focusPrompt bool
	message     string
}

func New(buf *buffer.Buffer, frame Frame, bytesPerRow int) *Viewport {
	if bytesPerRow < 1 {
		bytesPerRow = DefaultBytesPerRow
	}
	return &Viewport{
		buf:         buf,
		frame:       frame,
		bytesPerRow: bytesPerRow,
		mode:        ModeNavigating,
		dirty:       RegionAll,
	}
}

func (v *Viewport) Buffer() *buffer.Buffer { return v.buf }
func (v *Viewport) Frame() Frame           { return v.frame }
func (v *Viewport) Offset() int            { return v.offset }
func (v *Viewport) ScrollY() int           { return v.scrollY }
func (v *Viewport) ScrollX() int           { return v.scrollX }
func (v *Viewport) BytesPerRow() int       { return v.bytesPerRow }
func (v *Viewport) Mode() Mode             { return v.mode }
func (v *Viewport) Dirty() Region          { return v.dirty }

// FocusPrompt reports the one-shot transition into the prompt. It is set by
// Prompt and cleared with the dirty flags.
func (v *Viewport) FocusPrompt() bool { return v.focusPrompt }

// Message is the notice shown on the prompt row while navigating.
func (v *Viewport) Message() string { return v.message }

func (v *Viewport) DataHeight() int {
	h := v.frame.Height - statusBarHeight - promptHeight
	if h < 0 {
		return 0
	}
	return h
}

func (v *Viewport) DataWidth() int { return v.frame.Width }

func (v *Viewport) StatusRow() int { return v.frame.Height - promptHeight - statusBarHeight }

func (v *Viewport) PromptRow() int { return v.frame.Height - promptHeight }

// Visible returns the bytes from the current offset to the end of the buffer.
func (v *Viewport) Visible() []byte {
	return v.buf.Window(v.offset)
}

func (v *Viewport) maxScrollY() int {
	return MaxScrollY(v.DataHeight(), len(v.Visible()), v.bytesPerRow)
}

func (v *Viewport) mark(r Region) {
	v.dirty |= r
}

// ScrollLeft scrolls one byte column to the left.
func (v *Viewport) ScrollLeft() {
	v.mark(RegionData | RegionStatus)
	if v.scrollX > 0 {
		v.scrollX--
	}
}

// ScrollRight scrolls one byte column to the right.
func (v *Viewport) ScrollRight() {
	v.mark(RegionData | RegionStatus)
	if v.scrollX < MaxScrollX(v.bytesPerRow, v.DataWidth()) {
		v.scrollX++
	}
}

// Left moves the offset back by one byte.
func (v *Viewport) Left() {
	v.mark(RegionData | RegionStatus)
	if v.offset > 0 {
		v.offset--
	}
}

// Right moves the offset forward by one byte, stopping at the buffer end.
func (v *Viewport) Right() {
	v.mark(RegionData | RegionStatus)
	if v.offset < v.buf.Size() {
		v.offset++
	}
}

// Down scrolls one row. It stops half a screen past the last row.
func (v *Viewport) Down() {
	v.mark(RegionData | RegionStatus)
	if v.scrollY < v.maxScrollY() {
		v.scrollY++
	}
}

func (v *Viewport) Up() {
	v.mark(RegionData | RegionStatus)
	if v.scrollY > 0 {
		v.scrollY--
	}
}

func (v *Viewport) PageDown() {
	v.mark(RegionData | RegionStatus)
	h := v.DataHeight()
	ceiling := v.maxScrollY()
	if v.scrollY+h < ceiling {
		v.scrollY += h
	} else {
		v.scrollY = ceiling
	}
}

func (v *Viewport) PageUp() {
	v.mark(RegionData | RegionStatus)
	h := v.DataHeight()
	if h > v.scrollY {
		v.scrollY = 0
	} else {
		v.scrollY -= h
	}
}

func (v *Viewport) Start() {
	v.mark(RegionData | RegionStatus)
	v.scrollY = 0
}

func (v *Viewport) End() {
	v.mark(RegionData | RegionStatus)
	v.scrollY = v.maxScrollY()
}

// Prompt moves focus to the command prompt.
func (v *Viewport) Prompt() {
	v.mark(RegionPrompt | RegionStatus)
	v.focusPrompt = true
	v.message = ""
	v.mode = ModeEditingCommand
}

// ResetPrompt returns focus to the data view, e.g. after a cancelled edit.
func (v *Viewport) ResetPrompt() {
	v.mark(RegionPrompt | RegionStatus)
	v.mode = ModeNavigating
}

// UpdatePrompt signals that the prompt text changed.
func (v *Viewport) UpdatePrompt() {
	v.mark(RegionPrompt | RegionStatus)
}

// RejectCommand returns to navigation and leaves a notice on the prompt row.
func (v *Viewport) RejectCommand(text string) {
	v.ResetPrompt()
	v.message = fmt.Sprintf("unknown command: %s", text)
}

// SetWidth changes the number of bytes per row while keeping the byte in the
// top left cell in place. Offset and vertical scroll are rebalanced so that
// the offset stays below the new width.
func (v *Viewport) SetWidth(n int) {
	v.commandApplied()
	if n < 1 {
		n = 1
	}

	anchor := TopLeft(v.offset, v.scrollY, v.bytesPerRow)
	rel := anchor - v.offset

	scrollY := rel / n
	offset := v.offset + rel%n

	v.scrollY = scrollY + offset/n
	v.offset = offset % n
	v.bytesPerRow = n
}

// SetOffset sets the offset without clamping. Values past the end of the
// buffer are tolerated by the renderer.
func (v *Viewport) SetOffset(n int) {
	v.commandApplied()
	v.offset = n
}

// SetScrollX sets the horizontal scroll without clamping.
func (v *Viewport) SetScrollX(n int) {
	v.commandApplied()
	v.scrollX = n
}

// SetScrollY sets the vertical scroll without clamping.
func (v *Viewport) SetScrollY(n int) {
	v.commandApplied()
	v.scrollY = n
}

func (v *Viewport) commandApplied() {
	v.mark(RegionAll)
	v.mode = ModeNavigating
}

// Apply executes a parsed prompt command.
func (v *Viewport) Apply(cmd command.Command) {
	switch cmd.Op {
	case command.OpSetOffset:
		v.SetOffset(cmd.Arg)
	case command.OpSetWidth:
		v.SetWidth(cmd.Arg)
	case command.OpSetScrollX:
		v.SetScrollX(cmd.Arg)
	case command.OpSetScrollY:
		v.SetScrollY(cmd.Arg)
	}
}

func (v *Viewport) ClearDirty() {
	v.dirty = RegionNone
	v.focusPrompt = false
}

// MaxScrollY is the furthest vertical scroll for dataLen bytes shown in rows
// of width bytes on a height row screen. Once the data spans more rows than
// fit, scrolling may run half a screen past the last row.
func MaxScrollY(height, dataLen, width int) int {
	if width < 1 {
		width = 1
	}
	rows := dataLen / width
	if dataLen%width != 0 {
		rows++
	}
	if rows > height {
		return rows - height/2
	}
	return 0
}

// MaxScrollX is the furthest horizontal scroll for rows of bytesPerRow bytes
// on a cols wide screen.
func MaxScrollX(bytesPerRow, cols int) int {
	onScreen := hexfmt.MaxBytes(cols)
	if bytesPerRow < onScreen/2 {
		return onScreen / 2
	}
	return bytesPerRow - onScreen/2
}

// TopLeft returns the absolute index of the byte shown in the top left cell,
// saturating instead of overflowing.
func TopLeft(offset, scrollY, bytesPerRow int) int {
	if bytesPerRow > 0 && scrollY > (math.MaxInt-offset)/bytesPerRow {
		return math.MaxInt
	}
	return offset + scrollY*bytesPerRow
}
