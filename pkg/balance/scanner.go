// Package balance checks that the brackets of a text are nested and matched.
//
// The scan is a raw character scan: brackets inside string literals or
// comments count like any other bracket. Scanning stops at the first
// structural error.
package balance

import "unicode/utf8"

// Scan checks src and returns the first structural error, or a balanced
// result.
func Scan(src []byte) Result {
	var (
		stack    []Bracket
		line     = 1
		column   = 0
		maxDepth = 0
	)

	for offset := 0; offset < len(src); {
		ch, size := utf8.DecodeRune(src[offset:])
		column++

		switch {
		case IsOpener(ch):
			stack = append(stack, Bracket{Char: ch, Line: line, Column: column, Offset: offset})
			maxDepth = max(maxDepth, len(stack))
		case IsCloser(ch):
			closer := Bracket{Char: ch, Line: line, Column: column, Offset: offset}
			if len(stack) == 0 {
				return Result{Kind: KindUnmatchedCloser, Close: &closer, MaxDepth: maxDepth}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if want, _ := OpenerFor(ch); top.Char != want {
				return Result{Kind: KindMismatchedPair, Open: &top, Close: &closer, MaxDepth: maxDepth}
			}
		case ch == '\n':
			line++
			column = 0
		}

		offset += size
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return Result{Kind: KindUnclosedOpener, Open: &top, MaxDepth: maxDepth}
	}

	return Result{Kind: KindBalanced, MaxDepth: maxDepth}
}

// ScanString is Scan for a string input.
func ScanString(s string) Result {
	return Scan([]byte(s))
}
