package classify

// guidGroups is the canonical 8-4-4-4-12 hex digit grouping.
var guidGroups = [5]int{8, 4, 4, 4, 12}

// findGUIDs locates 8-4-4-4-12 hexadecimal identifiers, with or without
// surrounding braces. Braces are included in the span when present.
func findGUIDs(text string) []Span {
	var out []Span
	i := 0
	for i < len(text) {
		if !isHexDigit(text[i]) && text[i] != '{' {
			i++
			continue
		}
		start := i
		j := i
		braced := text[j] == '{'
		if braced {
			j++
		}
		end, ok := parseGUIDBody(text, j)
		if !ok {
			i++
			continue
		}
		if braced {
			if end >= len(text) || text[end] != '}' {
				i++
				continue
			}
			end++
		}
		// no hex spillover on either side
		if start > 0 && isHexDigit(text[start-1]) {
			i++
			continue
		}
		if end < len(text) && isHexDigit(text[end]) {
			i = end
			continue
		}
		out = append(out, Span{Start: start, End: end})
		i = end
	}
	return out
}

func parseGUIDBody(text string, off int) (end int, ok bool) {
	i := off
	for g, want := range guidGroups {
		n := runLen(text, i, isHexDigit)
		if n != want {
			return 0, false
		}
		i += n
		if g < len(guidGroups)-1 {
			if i >= len(text) || text[i] != '-' {
				return 0, false
			}
			i++
		}
	}
	return i, true
}
