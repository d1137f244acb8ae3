// Package command parses the prompt mini-language used to set view
// parameters, e.g. "offset 32" or "w 16".
package command

import (
	"errors"
	"fmt"
	"math"
)

type Op int

const (
	OpSetOffset Op = iota
	OpSetWidth
	OpSetScrollX
	OpSetScrollY
)

func (o Op) String() string {
	switch o {
	case OpSetOffset:
		return "offset"
	case OpSetWidth:
		return "width"
	case OpSetScrollX:
		return "scrollx"
	case OpSetScrollY:
		return "scrolly"
	default:
		return "unknown"
	}
}

// Command is a parsed prompt line.
type Command struct {
	Op  Op
	Arg int
}

func SetOffset(n int) Command  { return Command{Op: OpSetOffset, Arg: n} }
func SetWidth(n int) Command   { return Command{Op: OpSetWidth, Arg: n} }
func SetScrollX(n int) Command { return Command{Op: OpSetScrollX, Arg: n} }
func SetScrollY(n int) Command { return Command{Op: OpSetScrollY, Arg: n} }

func (c Command) String() string {
	return fmt.Sprintf("%s %d", c.Op, c.Arg)
}

// ErrParse is returned for any line that does not match the grammar.
var ErrParse = errors.New("unknown command")

var names = map[string]Op{
	"o":       OpSetOffset,
	"offset":  OpSetOffset,
	"w":       OpSetWidth,
	"width":   OpSetWidth,
	"x":       OpSetScrollX,
	"scrollx": OpSetScrollX,
	"y":       OpSetScrollY,
	"scrolly": OpSetScrollY,
}

// Parse parses a single command line:
//
//	ws* name ws* digit+ ws* EOF
//
// Arguments too large for an int saturate at math.MaxInt.
func Parse(s string) (Command, error) {
	i := skipSpace(s, 0)

	start := i
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	op, ok := names[s[start:i]]
	if !ok {
		return Command{}, ErrParse
	}

	i = skipSpace(s, i)

	start = i
	n := 0
	for i < len(s) && isDigit(s[i]) {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
		} else {
			n = n*10 + d
		}
		i++
	}
	if i == start {
		return Command{}, ErrParse
	}

	if skipSpace(s, i) != len(s) {
		return Command{}, ErrParse
	}
	return Command{Op: op, Arg: n}, nil
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
			i++
		default:
			return i
		}
	}
	return i
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
