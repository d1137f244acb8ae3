package viewer

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"hexview/internal/buffer"
	"hexview/internal/config"
	"hexview/internal/keys"
	"hexview/internal/render"
	"hexview/internal/screen"
	"hexview/internal/viewport"
)

// Model adapts a Session to bubbletea. With a grid the View is the painted
// grid; without one the session writes to the terminal itself.
type Model struct {
	session *Session
	grid    *screen.Grid
	styles  *config.Styles
	log     *log.Logger
	err     error
}

func NewModel(session *Session, grid *screen.Grid, styles *config.Styles, logger *log.Logger) *Model {
	return &Model{
		session: session,
		grid:    grid,
		styles:  styles,
		log:     logger,
	}
}

// Err returns the write error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		for _, k := range keys.FromTea(msg) {
			quit, err := m.session.Handle(k)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			if quit {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		// The frame is fixed at startup.
		m.log.Debug("ignoring resize", "width", msg.Width, "height", msg.Height)

	default:
		m.log.Debug("ignoring message", "type", fmt.Sprintf("%T", msg))
	}

	return m, nil
}

func (m *Model) View() string {
	if m.grid == nil {
		return ""
	}
	lines := m.grid.RenderLines(m.styles.Status, m.styles.Cursor)
	if last := len(lines) - 1; last >= 0 {
		vp := m.session.Viewport()
		style := m.styles.Prompt
		if vp.Mode() == viewport.ModeNavigating && vp.Message() != "" {
			style = m.styles.Message
		}
		lines[last] = style.Render(lines[last])
	}
	return strings.Join(lines, "\n")
}

type Options struct {
	Buffer      *buffer.Buffer
	Frame       viewport.Frame
	BytesPerRow int
	Renderer    string
	Styles      *config.Styles
	Logger      *log.Logger
	In          *os.File
	Out         *os.File
}

// Run shows the viewer until the user quits. The terminal is restored
// before Run returns, also on error.
func Run(ctx context.Context, opts Options) error {
	vp := viewport.New(opts.Buffer, opts.Frame, opts.BytesPerRow)

	opts.Logger.Info("starting viewer",
		"path", opts.Buffer.Filename(),
		"size", opts.Buffer.Size(),
		"width", opts.Frame.Width,
		"height", opts.Frame.Height,
		"renderer", opts.Renderer,
	)

	switch opts.Renderer {
	case config.RendererGrid:
		return runGrid(ctx, vp, opts)
	default:
		return runANSI(ctx, vp, opts)
	}
}

func runGrid(ctx context.Context, vp *viewport.Viewport, opts Options) error {
	grid := screen.NewGrid(opts.Frame.Width, opts.Frame.Height)
	session := NewSession(vp, grid, opts.Logger)
	if err := session.Render(); err != nil {
		return err
	}

	model := NewModel(session, grid, opts.Styles, opts.Logger)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(opts.In),
		tea.WithOutput(opts.Out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return model.Err()
}

func runANSI(ctx context.Context, vp *viewport.Viewport, opts Options) (err error) {
	fd := int(opts.In.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	out := screen.NewANSI(opts.Out)
	if err := out.EnterAltScreen(); err != nil {
		return err
	}
	defer func() {
		rerr := render.Reset(out)
		if xerr := out.ExitAltScreen(); rerr == nil {
			rerr = xerr
		}
		if err == nil {
			err = rerr
		}
	}()

	session := NewSession(vp, out, opts.Logger)
	if err := session.Render(); err != nil {
		return err
	}

	model := NewModel(session, nil, opts.Styles, opts.Logger)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(opts.In),
		tea.WithOutput(opts.Out),
		tea.WithoutRenderer(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return model.Err()
}
