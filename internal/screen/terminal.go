// Package screen provides the character grid targets the renderer paints
// into. Rows and columns are zero based.
package screen

// Terminal is the write-only surface the renderer draws on.
type Terminal interface {
	MoveTo(row, col int)
	ClearLine()
	ShowCursor()
	HideCursor()
	SetReverse(on bool)
	Write(text string)
	Flush() error
}
