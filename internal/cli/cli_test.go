package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/bracecheck/internal/cli"
	"github.com/yaklabco/bracecheck/pkg/balance"
	"github.com/yaklabco/bracecheck/pkg/fsutil"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	assert.Equal(t, "bracecheck", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"check", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, subCmd.Name())
		}
	}
}

func TestCheckCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	checkCmd, _, err := cmd.Find([]string{"check"})
	if !assert.NoError(t, err) {
		return
	}

	for _, name := range []string{"format", "context", "no-detect", "compact"} {
		assert.NotNil(t, checkCmd.Flags().Lookup(name), "missing flag %q", name)
	}
	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing persistent flag %q", name)
	}

	assert.Contains(t, checkCmd.Long, "BRACECHECK_FORMAT")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	assert.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "test-version")
	assert.Contains(t, stdout.String(), "test-commit")
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	scanErr := balance.ScanString(")").Err()
	accessErr := &balance.FileAccessError{Path: "x", Err: fsutil.ErrNotFound}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"unbalanced sentinel", errors.Join(cli.ErrUnbalanced, scanErr), cli.ExitUnbalanced},
		{"bare scan error", scanErr, cli.ExitUnbalanced},
		{"file access", fmt.Errorf("wrapped: %w", accessErr), cli.ExitIOError},
		{"usage", fmt.Errorf("%w: bad flag", cli.ErrInvalidUsage), cli.ExitInvalidUsage},
		{"config", fmt.Errorf("%w: bad file", cli.ErrConfig), cli.ExitConfigError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cli.ExitCodeFromError(tt.err))
		})
	}
}
