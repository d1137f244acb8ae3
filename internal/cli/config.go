package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hexview/internal/config"
	"hexview/internal/logging"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the hexview config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), configPath(root))
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(root)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			cfg := config.DefaultConfig()
			save := cfg.Save
			if root.configPath != "" {
				save = func() error { return cfg.SaveFile(path) }
			}
			if err := save(); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			logging.Logger.Info("wrote config", "path", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}

func configPath(root *rootOptions) string {
	if root.configPath != "" {
		return root.configPath
	}
	return config.ConfigPath()
}
