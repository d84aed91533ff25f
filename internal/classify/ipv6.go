package classify

import "net/netip"

// findIPv6 locates IPv6 addresses. Candidate tokens are maximal runs of
// hex digits, colons, and dots (for IPv4-mapped forms); tokens with at
// least two colons are validated with the standard library parser.
func findIPv6(text string) []Span {
	isTok := func(c byte) bool { return isHexDigit(c) || c == ':' || c == '.' }
	var out []Span
	i := 0
	for i < len(text) {
		if !isTok(text[i]) {
			i++
			continue
		}
		n := runLen(text, i, isTok)
		tok := text[i : i+n]
		if plausibleIPv6(tok) {
			if addr, err := netip.ParseAddr(tok); err == nil && addr.Is6() {
				out = append(out, Span{Start: i, End: i + n})
			}
		}
		i += n
	}
	return out
}

// plausibleIPv6 filters tokens before the full parse: at least two colons,
// at least one hex digit, and no stray leading/trailing dot.
func plausibleIPv6(tok string) bool {
	colons, digits := 0, 0
	for i := 0; i < len(tok); i++ {
		switch {
		case tok[i] == ':':
			colons++
		case isHexDigit(tok[i]):
			digits++
		}
	}
	if colons < 2 || digits == 0 {
		return false
	}
	return tok[0] != '.' && tok[len(tok)-1] != '.'
}
