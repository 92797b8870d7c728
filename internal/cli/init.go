package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/bracecheck/internal/configloader"
	"github.com/yaklabco/bracecheck/internal/logging"
)

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .bracecheck.yml configuration file",
		Long: `Create a .bracecheck.yml configuration file in the current directory
with the default settings.

Examples:
  bracecheck init                     Create .bracecheck.yml
  bracecheck init --force             Overwrite an existing file
  bracecheck init -o ci/bracecheck.yml   Write to a custom file path`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigName, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(cmd.Context())

	path, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	if err := configloader.WriteDefault(path, flags.force); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	logger.Info("created configuration file", logging.FieldPath, path)
	return nil
}
