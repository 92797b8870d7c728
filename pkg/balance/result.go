package balance

import (
	"errors"
	"fmt"
)

// Kind identifies the outcome of a scan.
type Kind int

const (
	// KindBalanced means every opener was closed in order.
	KindBalanced Kind = iota

	// KindUnmatchedCloser means a closer appeared with no open bracket.
	KindUnmatchedCloser

	// KindMismatchedPair means a closer did not match the innermost opener.
	KindMismatchedPair

	// KindUnclosedOpener means openers remained when the input ended.
	KindUnclosedOpener
)

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBalanced:
		return "balanced"
	case KindUnmatchedCloser:
		return "unmatched_closer"
	case KindMismatchedPair:
		return "mismatched_pair"
	case KindUnclosedOpener:
		return "unclosed_opener"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinel errors matched by errors.Is against an *Error.
var (
	ErrUnmatchedCloser = errors.New("unmatched closer")
	ErrMismatchedPair  = errors.New("mismatched pair")
	ErrUnclosedOpener  = errors.New("unclosed opener")
)

// Bracket is a bracket occurrence in the scanned text.
type Bracket struct {
	// Char is the bracket character.
	Char rune

	// Line is 1 plus the number of newlines before the character.
	Line int

	// Column is the 1-based rune column within the line.
	Column int

	// Offset is the byte offset from the start of the input.
	Offset int
}

// Result is the outcome of a scan. Open and Close are set according to Kind:
//
//   - KindBalanced: neither
//   - KindUnmatchedCloser: Close
//   - KindMismatchedPair: Open (the popped entry) and Close
//   - KindUnclosedOpener: Open (the innermost remaining entry)
type Result struct {
	Kind     Kind
	Open     *Bracket
	Close    *Bracket
	MaxDepth int
}

// Balanced reports whether the scan found no structural error.
func (r Result) Balanced() bool {
	return r.Kind == KindBalanced
}

// Message returns the single diagnostic line for the result.
func (r Result) Message() string {
	switch r.Kind {
	case KindUnmatchedCloser:
		return fmt.Sprintf("Unmatched closing %c at line %d", r.Close.Char, r.Close.Line)
	case KindMismatchedPair:
		return fmt.Sprintf("Mismatched %c opened at line %d closed by %c at line %d",
			r.Open.Char, r.Open.Line, r.Close.Char, r.Close.Line)
	case KindUnclosedOpener:
		return fmt.Sprintf("Unclosed %c opened at line %d", r.Open.Char, r.Open.Line)
	default:
		return "All balanced"
	}
}

// Err returns nil for a balanced result and an *Error otherwise.
func (r Result) Err() error {
	if r.Balanced() {
		return nil
	}
	return &Error{Result: r}
}

// Position returns the bracket a diagnostic should point at: the closer for
// unmatched and mismatched results, the opener for unclosed ones.
func (r Result) Position() *Bracket {
	if r.Close != nil {
		return r.Close
	}
	return r.Open
}

// Error is a structural bracket error.
type Error struct {
	Result Result
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Result.Message()
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch e.Result.Kind {
	case KindUnmatchedCloser:
		return target == ErrUnmatchedCloser
	case KindMismatchedPair:
		return target == ErrMismatchedPair
	case KindUnclosedOpener:
		return target == ErrUnclosedOpener
	default:
		return false
	}
}
