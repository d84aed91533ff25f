package classify

// base64MinLen is the minimum run length (including padding) for a run of
// base64-alphabet characters to count as an encoded blob.
const base64MinLen = 24

// findBase64Blobs locates long runs of the standard base64 alphabet whose
// padded length is a multiple of four.
func findBase64Blobs(text string) []Span {
	var out []Span
	i := 0
	for i < len(text) {
		if !isBase64Char(text[i]) {
			i++
			continue
		}
		if i > 0 && (isBase64Char(text[i-1]) || text[i-1] == '=') {
			i++
			continue
		}
		n := runLen(text, i, isBase64Char)
		end := i + n
		pad := 0
		for end < len(text) && text[end] == '=' && pad < 2 {
			end++
			pad++
		}
		if end-i >= base64MinLen && (end-i)%4 == 0 {
			out = append(out, Span{Start: i, End: end})
		}
		i = end
	}
	return out
}
