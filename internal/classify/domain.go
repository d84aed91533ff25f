package classify

// commonTLDs keeps bare-word noise ("main.go", "v1.so") out of the domain
// category. The list covers TLDs that dominate malware infrastructure plus
// the major generic and country codes.
var commonTLDs = map[string]bool{
	"com": true, "net": true, "org": true, "io": true, "co": true,
	"gov": true, "edu": true, "mil": true, "info": true, "biz": true,
	"ru": true, "cn": true, "uk": true, "de": true, "fr": true,
	"jp": true, "kr": true, "in": true, "br": true, "nl": true,
	"eu": true, "us": true, "me": true, "cc": true, "tv": true,
	"xyz": true, "top": true, "site": true, "online": true, "club": true,
	"onion": true, "app": true, "dev": true, "cloud": true, "link": true,
}

// findDomains locates bare hostnames: dotted alphanumeric labels ending in
// a recognized TLD. Hostnames inside URLs or e-mail addresses are still
// reported; the aggregator unions categories for identical text.
func findDomains(text string) []Span {
	isTok := func(c byte) bool { return isAlnum(c) || c == '.' || c == '-' }
	var out []Span
	i := 0
	for i < len(text) {
		if !isTok(text[i]) {
			i++
			continue
		}
		n := runLen(text, i, isTok)
		start, end := i, i+n
		i = end + 1
		// strip surrounding dots/hyphens left by prose
		for start < end && (text[start] == '.' || text[start] == '-') {
			start++
		}
		for end > start && (text[end-1] == '.' || text[end-1] == '-') {
			end--
		}
		tok := text[start:end]
		if isDomainName(tok) {
			out = append(out, Span{Start: start, End: end})
		}
	}
	return out
}

func isDomainName(tok string) bool {
	if len(tok) < 4 || len(tok) > 253 {
		return false
	}
	d := lastDot(tok)
	if d <= 0 {
		return false
	}
	if !validHostname(tok) {
		return false
	}
	tld := tok[d+1:]
	lowered := make([]byte, len(tld))
	for i := 0; i < len(tld); i++ {
		lowered[i] = lower(tld[i])
	}
	return commonTLDs[string(lowered)]
}
