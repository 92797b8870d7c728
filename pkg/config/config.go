// Package config defines the configuration types for bracecheck.
// These types are plain data with no dependency on the loaders that fill them.
package config

// OutputFormat specifies how a scan result is written.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for bracecheck.
type Config struct {
	// Format is the output format ("text" or "json").
	Format OutputFormat `yaml:"format,omitempty"`

	// Color is the color mode ("auto", "always" or "never").
	Color ColorMode `yaml:"color,omitempty"`

	// LogLevel is the logging level ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level,omitempty"`

	// ShowContext prints the offending source line under a failure.
	ShowContext *bool `yaml:"show_context,omitempty"`

	// DetectLanguage annotates reports with the detected file language.
	DetectLanguage *bool `yaml:"detect_language,omitempty"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Format:         FormatText,
		Color:          ColorAuto,
		LogLevel:       "info",
		ShowContext:    Bool(false),
		DetectLanguage: Bool(true),
	}
}

// ContextEnabled reports whether source context should be shown.
func (c *Config) ContextEnabled() bool {
	return c.ShowContext != nil && *c.ShowContext
}

// DetectionEnabled reports whether language detection is on.
func (c *Config) DetectionEnabled() bool {
	return c.DetectLanguage == nil || *c.DetectLanguage
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}
