// Package reporter writes scan results.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/bracecheck/pkg/balance"
)

// Report is everything known about one checked file.
type Report struct {
	// Path is the path of the scanned file.
	Path string

	// Content is the scanned text, used for source context.
	Content []byte

	// Result is the scan outcome.
	Result balance.Result

	// Language is the detected language, empty when detection is off.
	Language string

	// SHA256 is the hex content hash, empty when unknown.
	SHA256 string
}

// FromFile builds a Report from a checked file.
func FromFile(file *balance.FileReport, language string) *Report {
	report := &Report{
		Path:     file.Path,
		Content:  file.Content,
		Result:   file.Result,
		Language: language,
	}
	if file.Info != nil {
		report.SHA256 = file.Info.HexHash()
	}
	return report
}

// Reporter formats and writes a scan result.
type Reporter interface {
	Report(ctx context.Context, report *Report) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
