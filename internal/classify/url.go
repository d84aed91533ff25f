package classify

// findURLs locates scheme://rest tokens. The scheme must start with a
// letter and contain only letters, digits, '+', '-', or '.'; the remainder
// extends over the RFC 3986 character repertoire and must begin with a
// non-empty authority or path.
func findURLs(text string) []Span {
	var out []Span
	i := 0
	for {
		j := indexFrom(text, i, "://")
		if j < 0 {
			return out
		}
		start := j
		for start > 0 && isSchemeChar(text[start-1]) {
			start--
		}
		if start == j || !isAlpha(text[start]) {
			i = j + 3
			continue
		}
		end := j + 3 + runLen(text, j+3, isURLChar)
		// strip trailing punctuation commonly adjacent in prose
		for end > j+3 && isTrailingPunct(text[end-1]) {
			end--
		}
		if end == j+3 {
			i = j + 3
			continue
		}
		out = append(out, Span{Start: start, End: end})
		i = end
	}
}

func indexFrom(s string, from int, sub string) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func isSchemeChar(c byte) bool {
	return isAlnum(c) || c == '+' || c == '-' || c == '.'
}

func isURLChar(c byte) bool {
	switch {
	case isAlnum(c):
		return true
	}
	switch c {
	case '-', '.', '_', '~', ':', '/', '?', '#', '[', ']', '@',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', '%':
		return true
	}
	return false
}

func isTrailingPunct(c byte) bool {
	switch c {
	case '.', ',', ';', ':', '!', '?', ')', ']', '\'':
		return true
	}
	return false
}
