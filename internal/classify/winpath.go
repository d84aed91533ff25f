package classify

// findWindowsPaths locates drive-letter paths ("C:\...") and UNC paths
// ("\\server\share..."). A path must extend at least one component past
// its prefix. Spaces are allowed inside interior components ("Program
// Files") but the final component is cut at its first space, since a space
// after the last separator usually resumes surrounding prose.
func findWindowsPaths(text string) []Span {
	var out []Span
	i := 0
	for i < len(text) {
		// drive letter form
		if isAlpha(text[i]) && i+2 < len(text) && text[i+1] == ':' && text[i+2] == '\\' &&
			(i == 0 || !isAlnum(text[i-1])) {
			if end, ok := pathRun(text, i, i+3); ok {
				out = append(out, Span{Start: i, End: end})
				i = end
				continue
			}
		}
		// UNC form
		if text[i] == '\\' && i+1 < len(text) && text[i+1] == '\\' &&
			(i == 0 || text[i-1] != '\\') {
			if end, ok := pathRun(text, i, i+2); ok {
				out = append(out, Span{Start: i, End: end})
				i = end
				continue
			}
		}
		i++
	}
	return out
}

// pathRun expands path characters from body, then trims the tail back to
// the last separator-delimited component's first space.
func pathRun(text string, start, body int) (end int, ok bool) {
	if body >= len(text) || text[body] == ' ' || !isWinPathChar(text[body]) {
		return 0, false
	}
	end = body + runLen(text, body, isWinPathChar)

	lastSep := body
	for k := body; k < end; k++ {
		if text[k] == '\\' {
			lastSep = k + 1
		}
	}
	for k := lastSep; k < end; k++ {
		if text[k] == ' ' {
			end = k
			break
		}
	}
	for end > body && (text[end-1] == '\\' || text[end-1] == ' ' ||
		text[end-1] == '.' || text[end-1] == ',' || text[end-1] == '!' || text[end-1] == '\'') {
		end--
	}
	if end <= body {
		return 0, false
	}
	return end, true
}

// isWinPathChar admits path component characters plus the separator.
// Characters NTFS forbids in names (<>:"|?*) end the run.
func isWinPathChar(c byte) bool {
	if isAlnum(c) {
		return true
	}
	switch c {
	case '\\', '.', '_', '-', ' ', '~', '$', '%', '(', ')', '{', '}', '@', '+', ',', '&', '!', '\'':
		return true
	}
	return false
}
