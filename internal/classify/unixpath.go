package classify

// findUnixPaths locates absolute POSIX paths with at least two components
// ("/usr/bin"). Single-slash fragments and "//" prefixes (protocol-relative
// URLs, UNC spillover) are not paths.
func findUnixPaths(text string) []Span {
	var out []Span
	i := 0
	for i < len(text) {
		if text[i] != '/' {
			i++
			continue
		}
		// boundary: previous char must not be part of a path or URL token
		if i > 0 && (isUnixPathChar(text[i-1]) || text[i-1] == ':') {
			i++
			continue
		}
		if i+1 < len(text) && text[i+1] == '/' {
			i += 2
			continue
		}
		end := i + runLen(text, i, isUnixPathChar)
		trimmed := end
		for trimmed > i && text[trimmed-1] == '/' {
			trimmed--
		}
		if countByte(text[i:trimmed], '/') >= 2 && trimmed-i >= 4 {
			out = append(out, Span{Start: i, End: trimmed})
		}
		i = end + 1
	}
	return out
}

func isUnixPathChar(c byte) bool {
	return isAlnum(c) || c == '/' || c == '.' || c == '_' || c == '-' || c == '+'
}

func countByte(s string, b byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
		}
	}
	return n
}
