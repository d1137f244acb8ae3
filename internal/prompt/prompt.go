// Package prompt implements the command line edit buffer as a pure state
// machine: Step takes the previous state and a key and returns the next
// state together with the event the key produced.
package prompt

import (
	"hexview/internal/command"
	"hexview/internal/keys"
)

type EventKind int

const (
	EventUpdate EventKind = iota
	EventReset
	EventExecute
	EventUnknownCommand
)

func (k EventKind) String() string {
	switch k {
	case EventUpdate:
		return "update"
	case EventReset:
		return "reset"
	case EventExecute:
		return "execute"
	case EventUnknownCommand:
		return "unknown-command"
	default:
		return "invalid"
	}
}

// Event is emitted for every key. Text carries the buffer for EventUpdate and
// the rejected line for EventUnknownCommand; Command is set for EventExecute.
type Event struct {
	Kind    EventKind
	Text    string
	Command command.Command
}

// State is the edit buffer and the cursor index into it.
type State struct {
	text   []rune
	cursor int
}

func (s State) Text() string { return string(s.text) }

func (s State) Cursor() int { return s.cursor }

func (s State) Empty() bool { return len(s.text) == 0 }

func Step(s State, k keys.Key) (State, Event) {
	switch {
	case k.Kind == keys.KindEnter, k == keys.Char('\n'):
		line := s.Text()
		cmd, err := command.Parse(line)
		if err != nil {
			return State{}, Event{Kind: EventUnknownCommand, Text: line}
		}
		return State{}, Event{Kind: EventExecute, Command: cmd}

	case k.IsCancel():
		return State{}, Event{Kind: EventReset}

	case k.Kind == keys.KindChar:
		text := make([]rune, 0, len(s.text)+1)
		text = append(text, s.text[:s.cursor]...)
		text = append(text, k.Rune)
		text = append(text, s.text[s.cursor:]...)
		next := State{text: text, cursor: s.cursor + 1}
		return next, Event{Kind: EventUpdate, Text: next.Text()}

	case k.Kind == keys.KindBackspace:
		if s.cursor == 0 {
			return s, Event{Kind: EventUpdate, Text: s.Text()}
		}
		text := make([]rune, 0, len(s.text)-1)
		text = append(text, s.text[:s.cursor-1]...)
		text = append(text, s.text[s.cursor:]...)
		next := State{text: text, cursor: s.cursor - 1}
		return next, Event{Kind: EventUpdate, Text: next.Text()}
	}

	return s, Event{Kind: EventUpdate, Text: s.Text()}
}

// Feed steps through ks in order and returns the final state and the last
// event. An empty key list yields the initial state and an update event.
func Feed(s State, ks ...keys.Key) (State, Event) {
	ev := Event{Kind: EventUpdate, Text: s.Text()}
	for _, k := range ks {
		s, ev = Step(s, k)
	}
	return s, ev
}
