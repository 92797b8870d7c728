package pretty

import (
	"bytes"
	"strings"
)

// contextIndent aligns source context under the result line.
const contextIndent = "    "

// LineAt returns the line of content containing the byte offset, without
// its line terminator.
func LineAt(content []byte, offset int) string {
	if offset < 0 || offset > len(content) {
		return ""
	}

	start := bytes.LastIndexByte(content[:offset], '\n') + 1
	end := len(content)
	if idx := bytes.IndexByte(content[offset:], '\n'); idx >= 0 {
		end = offset + idx
	}

	return strings.TrimSuffix(string(content[start:end]), "\r")
}

// FormatSourceContext renders a source line with a caret under the given
// 1-based rune column. Tabs before the column are kept so the caret lines up.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	builder.WriteString(contextIndent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		builder.WriteString(contextIndent)
		col := 1
		for _, r := range line {
			if col >= column {
				break
			}
			if r == '\t' {
				builder.WriteByte('\t')
			} else {
				builder.WriteByte(' ')
			}
			col++
		}
		builder.WriteString(s.Caret.Render("^") + "\n")
	}

	return builder.String()
}
