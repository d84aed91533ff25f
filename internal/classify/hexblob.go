package classify

// hexMinLen is the minimum digit count for a hex run to count as a blob
// (16 digits = 8 encoded bytes).
const hexMinLen = 16

// findHexBlobs locates even-length runs of hexadecimal digits at least
// hexMinLen long. At least one a-f digit is required so long decimal
// numbers do not qualify.
func findHexBlobs(text string) []Span {
	var out []Span
	i := 0
	for i < len(text) {
		if !isHexDigit(text[i]) {
			i++
			continue
		}
		n := runLen(text, i, isHexDigit)
		if n >= hexMinLen && n%2 == 0 && hasHexAlpha(text[i:i+n]) {
			out = append(out, Span{Start: i, End: i + n})
		}
		i += n
	}
	return out
}

func hasHexAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if isAlpha(s[i]) {
			return true
		}
	}
	return false
}
