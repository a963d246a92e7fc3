package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the tally config file",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the resolved configuration to the config file",
		Long: `Write the configuration in effect (defaults, environment and flags) to
$XDG_CONFIG_HOME/tally/config.yaml so later runs start from it.`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path, err := config.Path()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s already exists (use --force to overwrite)", errInvalidConfig, path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := configFrom(cmd.Context()).Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return err
}
