package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/bracecheck/pkg/config"
)

// envVarPrefix is the prefix for all bracecheck environment variables.
const envVarPrefix = "BRACECHECK_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":          {field: "format", typ: envTypeString},
	"COLOR":           {field: "color", typ: envTypeString},
	"LOG_LEVEL":       {field: "log_level", typ: envTypeString},
	"SHOW_CONTEXT":    {field: "show_context", typ: envTypeBool},
	"DETECT_LANGUAGE": {field: "detect_language", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with BRACECHECK_ (e.g., BRACECHECK_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "show_context":
		cfg.ShowContext = config.Bool(value)
	case "detect_language":
		cfg.DetectLanguage = config.Bool(value)
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"BRACECHECK_FORMAT":          "Output format: text or json",
		"BRACECHECK_COLOR":           "Color mode: auto, always, or never",
		"BRACECHECK_LOG_LEVEL":       "Log level: debug, info, warn, or error",
		"BRACECHECK_SHOW_CONTEXT":    "Print the offending source line: true or false",
		"BRACECHECK_DETECT_LANGUAGE": "Detect the language of the input: true or false",
	}
}
