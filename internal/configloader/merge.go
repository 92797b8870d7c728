package configloader

import "github.com/yaklabco/bracecheck/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer booleans: override overwrites base if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.ShowContext != nil {
		result.ShowContext = config.Bool(*override.ShowContext)
	}
	if override.DetectLanguage != nil {
		result.DetectLanguage = config.Bool(*override.DetectLanguage)
	}

	return result
}
