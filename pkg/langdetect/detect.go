// Package langdetect names the language of a scanned file using go-enry.
// The result is informational and never changes how a file is scanned.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be determined.
const Unknown = "text"

// classifierCandidates limits the content classifier to bracket-heavy languages.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript", "Dart",
	"Ruby", "Rust", "Java", "Kotlin", "C", "C++", "C#", "JSON",
}

// Detect returns the language of the file at path with the given content.
// Strategies, most reliable first: file name, extension, shebang, classifier.
func Detect(path string, content []byte) string {
	if path != "" {
		if lang, safe := enry.GetLanguageByFilename(filepath.Base(path)); safe {
			return normalize(lang)
		}
		if lang, safe := enry.GetLanguageByExtension(path); safe {
			return normalize(lang)
		}
	}

	if len(content) == 0 {
		return Unknown
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

// normalize converts go-enry language names to lowercase identifiers.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	case "C#":
		return "csharp"
	}
	return strings.ToLower(lang)
}
