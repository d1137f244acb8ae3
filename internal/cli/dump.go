package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hexview/internal/buffer"
	"hexview/internal/hexfmt"
	"hexview/internal/prompt"
	"hexview/internal/render"
	"hexview/internal/screen"
	"hexview/internal/viewport"
)

type dumpOptions struct {
	width  int
	offset int
	rows   int
	cols   int
}

func newDumpCmd(root *rootOptions) *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the hex rows of FILE without the interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			if opts.offset < 0 {
				return fmt.Errorf("offset must not be negative, got %d", opts.offset)
			}
			if opts.width <= 0 {
				opts.width = cfg.View.BytesPerRow
			}
			if opts.cols <= 0 {
				opts.cols = terminalWidth()
			}

			buf, err := buffer.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}

			lines, err := dump(buf, *opts)
			if err != nil {
				return err
			}
			for _, line := range lines {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "bytes per row (default from config)")
	cmd.Flags().IntVarP(&opts.offset, "offset", "o", 0, "first byte to show")
	cmd.Flags().IntVarP(&opts.rows, "rows", "n", 0, "number of rows to print (default all)")
	cmd.Flags().IntVar(&opts.cols, "cols", 0, "display columns (default terminal width or 80)")

	return cmd
}

// dump renders the data region of a viewport sized to hold the requested
// rows and returns its lines. Rows beyond the end of the data are dropped.
func dump(buf *buffer.Buffer, opts dumpOptions) ([]string, error) {
	n := len(buf.Window(opts.offset))
	rows := n / opts.width
	if n%opts.width != 0 {
		rows++
	}
	if opts.rows > 0 && opts.rows < rows {
		rows = opts.rows
	}
	cols := min(opts.cols, hexfmt.RowWidth(min(opts.width, n)))

	frame := viewport.Frame{Width: cols, Height: rows + 2}
	vp := viewport.New(buf, frame, opts.width)
	vp.SetOffset(opts.offset)

	grid := screen.NewGrid(frame.Width, frame.Height)
	if err := render.Render(grid, vp, prompt.State{}); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		lines = append(lines, strings.TrimRight(grid.Line(i), " "))
	}
	return lines, nil
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
