package balance

// pairs maps each closer to the opener it must match.
//
//nolint:gochecknoglobals // Read-only lookup table.
var pairs = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

// IsOpener reports whether r is one of ( [ {.
func IsOpener(r rune) bool {
	switch r {
	case '(', '[', '{':
		return true
	}
	return false
}

// IsCloser reports whether r is one of ) ] }.
func IsCloser(r rune) bool {
	_, ok := pairs[r]
	return ok
}

// OpenerFor returns the opener required by closer.
func OpenerFor(closer rune) (rune, bool) {
	opener, ok := pairs[closer]
	return opener, ok
}
