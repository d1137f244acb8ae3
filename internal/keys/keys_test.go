package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFromTea(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []Key
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, []Key{Char('j')}},
		{"colon", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{':'}}, []Key{Char(':')}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []Key{Char(' ')}},
		{"burst", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(":w 8")}, Chars(":w 8")},
		{"repeat", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("jjj")}, Chars("jjj")},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o 16"), Paste: true}, Chars("o 16")},
		{"unprintable in burst", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a', '\x07', 'b'}}, []Key{Char('a'), Other, Char('b')}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, []Key{Other}},
		{"no runes", tea.KeyMsg{Type: tea.KeyRunes}, []Key{Other}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []Key{Enter}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []Key{Backspace}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []Key{Ctrl('c')}},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, []Key{Ctrl('d')}},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, []Key{PageDown}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []Key{Other}},
	}

	for _, tt := range tests {
		got := FromTea(tt.msg)
		if len(got) != len(tt.want) {
			t.Errorf("%s: expected %d keys, got %d: %+v", tt.name, len(tt.want), len(got), got)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%s: key %d: expected %+v, got %+v", tt.name, i, tt.want[i], got[i])
			}
		}
	}
}

func TestIsCancel(t *testing.T) {
	if !Ctrl('c').IsCancel() || !Escape.IsCancel() {
		t.Error("expected ctrl+c and escape to cancel")
	}
	if Char('c').IsCancel() || Ctrl('d').IsCancel() {
		t.Error("unexpected cancel key")
	}
}

func TestChars(t *testing.T) {
	got := Chars("w 8")
	want := []Key{Char('w'), Char(' '), Char('8')}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
