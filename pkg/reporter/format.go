package reporter

import (
	"fmt"

	"github.com/yaklabco/bracecheck/pkg/config"
)

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, json", formatStr)
	}
}

// FromConfig converts a configured output format.
func FromConfig(format config.OutputFormat) (Format, error) {
	return ParseFormat(string(format))
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}
