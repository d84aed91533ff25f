package classify

// Byte-class helpers shared by the recognizers. ASCII-only on purpose: the
// extractor emits printable-ASCII text, so indexing bytes is safe.

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool { return isDigit(c) || isAlpha(c) }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBase64Char(c byte) bool {
	return isAlnum(c) || c == '+' || c == '/'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// hasPrefixFold reports whether s[off:] starts with prefix, ASCII
// case-insensitively.
func hasPrefixFold(s string, off int, prefix string) bool {
	if off+len(prefix) > len(s) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lower(s[off+i]) != lower(prefix[i]) {
			return false
		}
	}
	return true
}

// runLen returns the length of the run of bytes satisfying pred starting
// at off.
func runLen(s string, off int, pred func(byte) bool) int {
	i := off
	for i < len(s) && pred(s[i]) {
		i++
	}
	return i - off
}
