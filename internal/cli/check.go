package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/bracecheck/internal/configloader"
	"github.com/yaklabco/bracecheck/internal/logging"
	"github.com/yaklabco/bracecheck/pkg/balance"
	"github.com/yaklabco/bracecheck/pkg/config"
	"github.com/yaklabco/bracecheck/pkg/fsutil"
	"github.com/yaklabco/bracecheck/pkg/langdetect"
	"github.com/yaklabco/bracecheck/pkg/reporter"
)

type checkFlags struct {
	format   string
	context  bool
	noDetect bool
	compact  bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check the brackets of one file",
		Long:  checkLongDescription + envHelp(),
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.context, "context", false, "print the offending source line under a failure")
	cmd.Flags().BoolVar(&flags.noDetect, "no-detect", false, "skip language detection")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact JSON output")

	return cmd
}

const checkLongDescription = `Check that the parentheses, square brackets and curly braces of a file
are correctly nested and matched.

Exactly one line is written to standard output:
  All balanced
  Unmatched closing <ch> at line <n>
  Mismatched <open> opened at line <n> closed by <close> at line <m>
  Unclosed <open> opened at line <n>

Exit status is 0 when balanced, 1 for a bracket error, 74 when the file
cannot be read.

Examples:
  bracecheck check lib/main.dart
  bracecheck check --context src/app.ts
  bracecheck check --format json main.go
`

func envHelp() string {
	vars := configloader.ListEnvVars()

	var builder strings.Builder
	builder.WriteString("\nEnvironment:\n")
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		fmt.Fprintf(&builder, "  %-28s %s\n", name, vars[name])
	}
	return builder.String()
}

// cliConfig collects only the flags the user set explicitly.
func cliConfig(cmd *cobra.Command, flags *checkFlags) (*config.Config, error) {
	cfg := &config.Config{}

	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("context") {
		cfg.ShowContext = config.Bool(flags.context)
	}
	if cmd.Flags().Changed("no-detect") {
		cfg.DetectLanguage = config.Bool(!flags.noDetect)
	}
	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cfg.Color = config.ColorMode(color)
	}
	if cmd.Flags().Changed("debug") {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

func runCheck(cmd *cobra.Command, path string, flags *checkFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	cfgFlags, err := cliConfig(cmd, flags)
	if err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfgFlags,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg := loadResult.Config

	logging.SetLoggerLevel(logger, cfg.LogLevel)
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldLoadedFrom, loadResult.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldFormat, cfg.Format,
		logging.FieldColor, cfg.Color,
		logging.FieldLogLevel, cfg.LogLevel,
	)

	format, err := reporter.FromConfig(cfg.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	file, err := balance.CheckFile(ctx, path)
	if err != nil {
		return err
	}

	language := ""
	if cfg.DetectionEnabled() {
		language = langdetect.Detect(path, file.Content)
	}

	logger.Debug("scan complete",
		logging.FieldPath, path,
		logging.FieldBytes, len(file.Content),
		logging.FieldKind, file.Result.Kind,
		logging.FieldMaxDepth, file.Result.MaxDepth,
		logging.FieldLanguage, language,
	)

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       cfg.Color,
		ShowContext: cfg.ContextEnabled(),
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, reporter.FromFile(file, language)); err != nil {
		return fmt.Errorf("report result: %w", err)
	}

	warnIfModified(ctx, file)

	if scanErr := file.Result.Err(); scanErr != nil {
		return errors.Join(ErrUnbalanced, scanErr)
	}
	return nil
}

// warnIfModified logs when the input changed while it was being checked,
// since the printed result may then be stale.
func warnIfModified(ctx context.Context, file *balance.FileReport) {
	logger := logging.FromContext(ctx)

	modified, err := fsutil.CheckModified(ctx, file.Info)
	if err != nil {
		logger.Debug("modification check failed", logging.FieldPath, file.Path, logging.FieldError, err)
		return
	}
	if modified {
		logger.Warn("input changed while it was being checked",
			logging.FieldPath, file.Path,
			logging.FieldSHA256, file.Info.HexHash(),
		)
	}
}
