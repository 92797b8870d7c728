package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/bracecheck/pkg/balance"
)

// jsonSchemaVersion is the version of the JSON output layout.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version  string       `json:"version"`
	Path     string       `json:"path"`
	Balanced bool         `json:"balanced"`
	Kind     string       `json:"kind"`
	Message  string       `json:"message"`
	Open     *JSONBracket `json:"open,omitempty"`
	Close    *JSONBracket `json:"close,omitempty"`
	MaxDepth int          `json:"maxDepth"`
	Language string       `json:"language,omitempty"`
	SHA256   string       `json:"sha256,omitempty"`
}

// JSONBracket is a bracket occurrence.
type JSONBracket struct {
	Char   string `json:"char"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, report *Report) (err error) {
	bw := bufio.NewWriter(r.opts.Writer)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(buildJSON(report)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func buildJSON(report *Report) *JSONOutput {
	result := report.Result
	return &JSONOutput{
		Version:  jsonSchemaVersion,
		Path:     report.Path,
		Balanced: result.Balanced(),
		Kind:     result.Kind.String(),
		Message:  result.Message(),
		Open:     jsonBracket(result.Open),
		Close:    jsonBracket(result.Close),
		MaxDepth: result.MaxDepth,
		Language: report.Language,
		SHA256:   report.SHA256,
	}
}

func jsonBracket(b *balance.Bracket) *JSONBracket {
	if b == nil {
		return nil
	}
	return &JSONBracket{
		Char:   string(b.Char),
		Line:   b.Line,
		Column: b.Column,
		Offset: b.Offset,
	}
}
