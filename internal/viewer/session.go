package viewer

import (
	"github.com/charmbracelet/log"

	"hexview/internal/keys"
	"hexview/internal/prompt"
	"hexview/internal/render"
	"hexview/internal/screen"
	"hexview/internal/viewport"
)

// Session drives one viewport: every key is applied, the dirty regions are
// repainted and the flags cleared before the next key is accepted.
type Session struct {
	vp     *viewport.Viewport
	prompt prompt.State
	term   screen.Terminal
	log    *log.Logger
}

func NewSession(vp *viewport.Viewport, term screen.Terminal, logger *log.Logger) *Session {
	return &Session{
		vp:   vp,
		term: term,
		log:  logger,
	}
}

func (s *Session) Viewport() *viewport.Viewport { return s.vp }

func (s *Session) Prompt() prompt.State { return s.prompt }

func (s *Session) Render() error {
	return render.Render(s.term, s.vp, s.prompt)
}

// Handle processes a single key. It reports quit when the user asked to
// leave; err is a terminal write failure.
func (s *Session) Handle(k keys.Key) (quit bool, err error) {
	switch s.vp.Mode() {
	case viewport.ModeEditingCommand:
		s.edit(k)
	default:
		if s.navigate(k) {
			return true, nil
		}
	}
	return false, s.Render()
}

func (s *Session) navigate(k keys.Key) bool {
	switch k {
	case keys.Char('q'), keys.Ctrl('c'):
		return true
	case keys.Char('h'), keys.Left:
		s.vp.ScrollLeft()
	case keys.Char('l'), keys.Right:
		s.vp.ScrollRight()
	case keys.Char('j'), keys.Down:
		s.vp.Down()
	case keys.Char('k'), keys.Up:
		s.vp.Up()
	case keys.Char('H'):
		s.vp.Left()
	case keys.Char('L'):
		s.vp.Right()
	case keys.Ctrl('d'), keys.PageDown:
		s.vp.PageDown()
	case keys.Ctrl('u'), keys.PageUp:
		s.vp.PageUp()
	case keys.Home, keys.Char('g'):
		s.vp.Start()
	case keys.End, keys.Char('G'):
		s.vp.End()
	case keys.Char(':'):
		s.prompt = prompt.State{}
		s.vp.Prompt()
	}
	return false
}

func (s *Session) edit(k keys.Key) {
	next, ev := prompt.Step(s.prompt, k)
	s.prompt = next

	switch ev.Kind {
	case prompt.EventReset:
		s.vp.ResetPrompt()
	case prompt.EventUnknownCommand:
		s.log.Warn("unknown command", "input", ev.Text)
		s.vp.RejectCommand(ev.Text)
	case prompt.EventExecute:
		s.log.Debug("command", "cmd", ev.Command.String())
		s.vp.Apply(ev.Command)
	default:
		s.vp.UpdatePrompt()
	}
}
