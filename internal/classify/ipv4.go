package classify

// findIPv4 locates dotted-quad addresses: four dot-separated octets, each
// 1-3 digits with value <= 255 and no leading-zero padding beyond "0".
func findIPv4(text string) []Span {
	var out []Span
	i := 0
	for i < len(text) {
		if !isDigit(text[i]) || (i > 0 && (isDigit(text[i-1]) || text[i-1] == '.')) {
			i++
			continue
		}
		if end, ok := parseIPv4At(text, i); ok {
			out = append(out, Span{Start: i, End: end})
			i = end
			continue
		}
		i += runLen(text, i, isDigit)
	}
	return out
}

func parseIPv4At(text string, start int) (end int, ok bool) {
	i := start
	for oct := 0; oct < 4; oct++ {
		n := runLen(text, i, isDigit)
		if n == 0 || n > 3 {
			return 0, false
		}
		if n > 1 && text[i] == '0' {
			return 0, false
		}
		v := 0
		for k := i; k < i+n; k++ {
			v = v*10 + int(text[k]-'0')
		}
		if v > 255 {
			return 0, false
		}
		i += n
		if oct < 3 {
			if i >= len(text) || text[i] != '.' {
				return 0, false
			}
			i++
		}
	}
	// The quad must not continue into more digits or dotted groups
	// ("1.2.3.4.5" is a version string, not an address).
	if i < len(text) && isDigit(text[i]) {
		return 0, false
	}
	if i+1 < len(text) && text[i] == '.' && isDigit(text[i+1]) {
		return 0, false
	}
	return i, true
}
