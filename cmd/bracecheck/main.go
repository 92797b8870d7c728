// Package main is the entry point for the bracecheck CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/bracecheck/internal/cli"
	"github.com/yaklabco/bracecheck/internal/logging"
	"github.com/yaklabco/bracecheck/pkg/balance"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	code := cli.ExitCodeFromError(err)
	if err == nil || code == cli.ExitUnbalanced {
		// The result line on stdout already explains a bracket error.
		return code
	}

	logger := logging.Default()
	var accessErr *balance.FileAccessError
	if errors.As(err, &accessErr) {
		logger.Error("cannot read input", logging.FieldPath, accessErr.Path, logging.FieldError, accessErr.Err)
	} else {
		logger.Error("command failed", logging.FieldError, err)
	}

	return code
}
