package classify

// findEmails locates address-shaped tokens around each '@': a non-empty
// local part of common mailbox characters, then a domain with at least one
// dot and an alphabetic final label of two or more characters.
func findEmails(text string) []Span {
	isLocal := func(c byte) bool {
		return isAlnum(c) || c == '.' || c == '_' || c == '%' || c == '+' || c == '-'
	}
	isDomain := func(c byte) bool {
		return isAlnum(c) || c == '.' || c == '-'
	}
	var out []Span
	for i := 0; i < len(text); i++ {
		if text[i] != '@' {
			continue
		}
		start := i
		for start > 0 && isLocal(text[start-1]) {
			start--
		}
		if start == i {
			continue
		}
		end := i + 1 + runLen(text, i+1, isDomain)
		// trim trailing punctuation that is not part of a hostname
		for end > i+1 && (text[end-1] == '.' || text[end-1] == '-') {
			end--
		}
		if !validHostname(text[i+1 : end]) {
			continue
		}
		out = append(out, Span{Start: start, End: end})
	}
	return out
}

// validHostname checks dotted labels: alphanumerics and inner hyphens, at
// least two labels, final label alphabetic with length >= 2.
func validHostname(host string) bool {
	if host == "" || len(host) > 253 {
		return false
	}
	labels := 0
	start := 0
	for i := 0; i <= len(host); i++ {
		if i < len(host) && host[i] != '.' {
			continue
		}
		lab := host[start:i]
		if !validLabel(lab) {
			return false
		}
		labels++
		start = i + 1
	}
	if labels < 2 {
		return false
	}
	// final label must look like a TLD
	tld := host[lastDot(host)+1:]
	if len(tld) < 2 {
		return false
	}
	for i := 0; i < len(tld); i++ {
		if !isAlpha(tld[i]) {
			return false
		}
	}
	return true
}

func validLabel(lab string) bool {
	if lab == "" || len(lab) > 63 {
		return false
	}
	if lab[0] == '-' || lab[len(lab)-1] == '-' {
		return false
	}
	for i := 0; i < len(lab); i++ {
		if !isAlnum(lab[i]) && lab[i] != '-' {
			return false
		}
	}
	return true
}

func lastDot(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return i
		}
	}
	return -1
}
