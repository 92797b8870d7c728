package cli

import (
	"errors"

	"github.com/yaklabco/bracecheck/pkg/balance"
)

// Exit codes for bracecheck.
const (
	// ExitSuccess indicates the input is balanced.
	ExitSuccess = 0

	// ExitUnbalanced indicates a structural bracket error was found.
	ExitUnbalanced = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates the input file could not be read.
	ExitIOError = 74
)

var (
	// ErrUnbalanced is returned when the checked file is not balanced.
	ErrUnbalanced = errors.New("brackets are not balanced")

	// ErrInvalidUsage marks command-line usage errors.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig marks configuration errors.
	ErrConfig = errors.New("configuration error")
)

// ExitCodeFromError maps an error returned by a command to an exit code.
func ExitCodeFromError(err error) int {
	var (
		scanErr   *balance.Error
		accessErr *balance.FileAccessError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUnbalanced), errors.As(err, &scanErr):
		return ExitUnbalanced
	case errors.As(err, &accessErr):
		return ExitIOError
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}
