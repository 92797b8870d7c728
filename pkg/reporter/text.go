package reporter

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/bracecheck/internal/ui/pretty"
)

// TextReporter writes the one-line result message.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, report *Report) error {
	var builder strings.Builder

	message := report.Result.Message()
	if report.Result.Balanced() {
		builder.WriteString(r.styles.Success.Render(message))
	} else {
		builder.WriteString(r.styles.Failure.Render(message))
	}
	builder.WriteByte('\n')

	if r.opts.ShowContext {
		if pos := report.Result.Position(); pos != nil {
			if report.Path != "" {
				location := fmt.Sprintf("%s:%d:%d", report.Path, pos.Line, pos.Column)
				builder.WriteString(contextIndent + r.styles.Location.Render(location) + "\n")
			}
			line := pretty.LineAt(report.Content, pos.Offset)
			builder.WriteString(r.styles.FormatSourceContext(line, pos.Column))
			if open := report.Result.Open; open != nil && report.Result.Close != nil && open.Line != pos.Line {
				note := fmt.Sprintf("%c opened here (line %d):", open.Char, open.Line)
				builder.WriteString(contextIndent + r.styles.Dim.Render(note) + "\n")
				builder.WriteString(r.styles.FormatSourceContext(pretty.LineAt(report.Content, open.Offset), open.Column))
			}
		}
	}

	if _, err := fmt.Fprint(r.opts.Writer, builder.String()); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

const contextIndent = "    "
