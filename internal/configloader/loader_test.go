package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/bracecheck/pkg/config"
)

// isolatedDir returns a temp dir that is its own VCS root, so the upward
// project config search never escapes it.
func isolatedDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:       isolatedDir(t),
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, config.NewConfig(), result.Config)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	root := isolatedDir(t)
	writeFile(t, filepath.Join(root, ProjectConfigName), "format: json\nshow_context: true\n")

	nested := filepath.Join(root, "lib", "feature")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:       nested,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, result.Config.Format)
	assert.True(t, result.Config.ContextEnabled())
	assert.Equal(t, config.ColorAuto, result.Config.Color)
	assert.Equal(t, []string{filepath.Join(root, ProjectConfigName)}, result.LoadedFrom)
}

func TestLoad_Precedence(t *testing.T) {
	t.Parallel()

	root := isolatedDir(t)
	writeFile(t, filepath.Join(root, ProjectConfigName), "format: json\ncolor: always\nlog_level: warn\n")

	explicit := filepath.Join(t.TempDir(), "explicit.yml")
	writeFile(t, explicit, "color: never\n")

	cli := &config.Config{LogLevel: "debug"}

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:       root,
		ExplicitPath:     explicit,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
		CLIConfig:        cli,
	})
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, result.Config.Format)
	assert.Equal(t, config.ColorNever, result.Config.Color)
	assert.Equal(t, "debug", result.Config.LogLevel)
	assert.Len(t, result.LoadedFrom, 2)
	assert.Equal(t, explicit, result.Paths.Explicit)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Parallel()

	root := isolatedDir(t)
	writeFile(t, filepath.Join(root, ProjectConfigName), "format: sarif\n")

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:       root,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "format", validationErr.Field)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	root := isolatedDir(t)
	path := filepath.Join(root, ProjectConfigName)
	writeFile(t, path, "format: [unterminated\n")

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:       root,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, path, validationErr.FilePath)
}

func TestLoad_MissingExplicit(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:       isolatedDir(t),
		ExplicitPath:     filepath.Join(t.TempDir(), "missing.yml"),
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BRACECHECK_FORMAT", "json")
	t.Setenv("BRACECHECK_SHOW_CONTEXT", "1")
	t.Setenv("BRACECHECK_DETECT_LANGUAGE", "false")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.True(t, cfg.ContextEnabled())
	assert.False(t, cfg.DetectionEnabled())
}

func TestLoadFromEnv_InvalidBool(t *testing.T) {
	t.Setenv("BRACECHECK_SHOW_CONTEXT", "sometimes")

	err := LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BRACECHECK_SHOW_CONTEXT")
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	for suffix := range envMappings {
		assert.Contains(t, vars, envVarPrefix+suffix)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	override := &config.Config{Color: config.ColorNever, ShowContext: config.Bool(true)}

	merged := merge(base, override)
	assert.Equal(t, config.ColorNever, merged.Color)
	assert.True(t, merged.ContextEnabled())
	assert.Equal(t, config.FormatText, merged.Format)
	assert.False(t, base.ContextEnabled(), "base must not be mutated")

	assert.Same(t, base, merge(base, nil))
	assert.Same(t, override, merge(nil, override))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.True(t, Validate(config.NewConfig()).Valid())
	assert.True(t, Validate(nil).Valid())

	result := Validate(&config.Config{Format: "xml", Color: "rainbow", LogLevel: "loud"})
	require.Len(t, result.Errors, 3)
	assert.Equal(t, "format", result.Errors[0].Field)
	assert.Equal(t, "color", result.Errors[1].Field)
	assert.Equal(t, "log_level", result.Errors[2].Field)
	assert.Contains(t, result.Errors[0].Error(), "invalid format")
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ProjectConfigName)
	require.NoError(t, WriteDefault(path, false))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig(), cfg)

	err = WriteDefault(path, false)
	assert.ErrorIs(t, err, ErrConfigExists)
	assert.NoError(t, WriteDefault(path, true))
}
