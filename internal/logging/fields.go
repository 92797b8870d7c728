package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"

	// Configuration fields.
	FieldFormat     = "format"
	FieldColor      = "color"
	FieldLogLevel   = "log_level"
	FieldLoadedFrom = "loaded_from"

	// Scan fields.
	FieldKind     = "kind"
	FieldLine     = "line"
	FieldBytes    = "bytes"
	FieldMaxDepth = "max_depth"
	FieldLanguage = "language"
	FieldSHA256   = "sha256"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
