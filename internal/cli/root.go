package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hexview/internal/buffer"
	"hexview/internal/config"
	"hexview/internal/logging"
	"hexview/internal/viewer"
	"hexview/internal/viewport"
)

type rootOptions struct {
	configPath string
	width      int
	renderer   string
	logFile    string
	logLevel   string
}

// NewRootCmd builds the hexview command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var logCloser io.Closer

	cmd := &cobra.Command{
		Use:   "hexview FILE",
		Short: "hexview - terminal hex viewer",
		Long: "hexview shows a file as rows of hex bytes. Navigate with h/j/k/l, " +
			"press : to set offset, width, scrollx or scrolly, q to quit.",
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := opts.logFile
			if path == "" {
				path = os.Getenv("HEXVIEW_LOG")
			}
			c, err := logging.Setup(path, opts.logLevel)
			if err != nil {
				return err
			}
			logCloser = c
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				logCloser.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(cmd, opts, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.ConfigPath()+")")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "append logs to this file (or $HEXVIEW_LOG)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "bytes per row (overrides config)")
	cmd.Flags().StringVar(&opts.renderer, "renderer", "", "screen renderer: ansi or grid (overrides config)")

	cmd.AddCommand(newDumpCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logging.Logger.Error("exiting", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	if opts.configPath != "" {
		return config.LoadFile(opts.configPath)
	}
	return config.Load()
}

func runViewer(cmd *cobra.Command, opts *rootOptions, path string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		cfg.View.BytesPerRow = opts.width
	}
	if opts.renderer != "" {
		cfg.View.Renderer = opts.renderer
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	buf, err := buffer.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("hexview needs a terminal; use `hexview dump` for piped output")
	}
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	return viewer.Run(cmd.Context(), viewer.Options{
		Buffer:      buf,
		Frame:       viewport.Frame{Width: width, Height: height},
		BytesPerRow: cfg.View.BytesPerRow,
		Renderer:    cfg.View.Renderer,
		Styles:      config.NewStyles(&cfg.Theme),
		Logger:      logging.Logger,
		In:          os.Stdin,
		Out:         os.Stdout,
	})
}
