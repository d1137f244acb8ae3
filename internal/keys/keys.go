// Package keys defines the decoded key events consumed by the viewer.
package keys

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

type Kind int

const (
	KindOther Kind = iota
	KindChar
	KindCtrl
	KindBackspace
	KindEnter
	KindEscape
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindUp
	KindDown
	KindLeft
	KindRight
)

// Key is a single key press. Rune is set for KindChar and KindCtrl.
type Key struct {
	Kind Kind
	Rune rune
}

var (
	Backspace = Key{Kind: KindBackspace}
	Enter     = Key{Kind: KindEnter}
	Escape    = Key{Kind: KindEscape}
	Home      = Key{Kind: KindHome}
	End       = Key{Kind: KindEnd}
	PageUp    = Key{Kind: KindPageUp}
	PageDown  = Key{Kind: KindPageDown}
	Up        = Key{Kind: KindUp}
	Down      = Key{Kind: KindDown}
	Left      = Key{Kind: KindLeft}
	Right     = Key{Kind: KindRight}
	Other     = Key{Kind: KindOther}
)

func Char(r rune) Key { return Key{Kind: KindChar, Rune: r} }

func Ctrl(r rune) Key { return Key{Kind: KindCtrl, Rune: r} }

// IsCancel reports whether k aborts an in-progress prompt edit.
func (k Key) IsCancel() bool {
	return k == Ctrl('c') || k == Escape
}

// Chars converts a string into a sequence of character keys.
func Chars(s string) []Key {
	out := make([]Key, 0, len(s))
	for _, r := range s {
		out = append(out, Char(r))
	}
	return out
}

var teaNamed = map[tea.KeyType]Key{
	tea.KeyBackspace: Backspace,
	tea.KeyEnter:     Enter,
	tea.KeyEscape:    Escape,
	tea.KeyHome:      Home,
	tea.KeyEnd:       End,
	tea.KeyPgUp:      PageUp,
	tea.KeyPgDown:    PageDown,
	tea.KeyUp:        Up,
	tea.KeyDown:      Down,
	tea.KeyLeft:      Left,
	tea.KeyRight:     Right,
	tea.KeyCtrlC:     Ctrl('c'),
	tea.KeyCtrlD:     Ctrl('d'),
	tea.KeyCtrlU:     Ctrl('u'),
	tea.KeySpace:     Char(' '),
}

// FromTea translates a bubbletea key message. Runes read in one burst
// (fast typing, key repeat, paste) arrive in a single message and come back
// as one key each; unprintable runes become Other.
func FromTea(msg tea.KeyMsg) []Key {
	if msg.Type == tea.KeyRunes {
		if msg.Alt || len(msg.Runes) == 0 {
			return []Key{Other}
		}
		out := make([]Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if !unicode.IsPrint(r) {
				out = append(out, Other)
				continue
			}
			out = append(out, Char(r))
		}
		return out
	}
	if k, ok := teaNamed[msg.Type]; ok {
		return []Key{k}
	}
	return []Key{Other}
}
