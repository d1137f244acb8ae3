package command

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"offset 32", SetOffset(32)},
		{"o 32", SetOffset(32)},
		{"offset 0", SetOffset(0)},
		{"o  0", SetOffset(0)},
		{"width 32", SetWidth(32)},
		{"w 32", SetWidth(32)},
		{"width 0", SetWidth(0)},
		{"w  0", SetWidth(0)},
		{"scrollx 0", SetScrollX(0)},
		{"x  0", SetScrollX(0)},
		{"scrolly 0", SetScrollY(0)},
		{"y  0", SetScrollY(0)},
		{"y 32", SetScrollY(32)},
		{" \r \n width 8", SetWidth(8)},
		{"\tw\t16\t", SetWidth(16)},
		{"w16", SetWidth(16)},
		{"o 7\n", SetOffset(7)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"wdith 3", "width", "wid",
		"offest 3", "offset", "offse",
		"", "   ", "32", "unknown 1",
		"w 3 4", "w 3x", "w -3", "W 3", "width 0x10",
	}
	for _, in := range inputs {
		if _, err := Parse(in); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q): expected ErrParse, got %v", in, err)
		}
	}
}

func TestParseHugeArgumentSaturates(t *testing.T) {
	got, err := Parse("offset 99999999999999999999999999999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Arg != math.MaxInt {
		t.Errorf("expected saturated argument, got %d", got.Arg)
	}
}

func TestCommandString(t *testing.T) {
	if s := SetScrollX(4).String(); s != "scrollx 4" {
		t.Errorf("expected %q, got %q", "scrollx 4", s)
	}
}
