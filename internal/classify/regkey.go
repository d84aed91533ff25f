package classify

// Registry hive prefixes, long names before their abbreviations so the
// longest prefix wins.
var regHives = []string{
	"HKEY_LOCAL_MACHINE",
	"HKEY_CURRENT_USER",
	"HKEY_CLASSES_ROOT",
	"HKEY_CURRENT_CONFIG",
	"HKEY_USERS",
	"HKLM",
	"HKCU",
	"HKCR",
	"HKU",
}

// findRegistryKeys locates Windows registry key paths: a hive name
// followed by a backslash and at least one subkey component. Interior
// components may contain spaces ("Windows NT"); the final component is cut
// at its first space, same as filesystem paths.
func findRegistryKeys(text string) []Span {
	var out []Span
	i := 0
	for i < len(text) {
		if text[i] != 'H' && text[i] != 'h' {
			i++
			continue
		}
		if i > 0 && isAlnum(text[i-1]) {
			i++
			continue
		}
		hive := matchHive(text, i)
		if hive == 0 || i+hive >= len(text) || text[i+hive] != '\\' {
			i++
			continue
		}
		body := i + hive + 1
		if body >= len(text) || text[body] == ' ' || !isRegKeyChar(text[body]) {
			i += hive
			continue
		}
		end := body + runLen(text, body, isRegKeyChar)
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
		for end > body && (text[end-1] == '\\' || text[end-1] == ' ' || text[end-1] == '.') {
			end--
		}
		if end <= body {
			i += hive
			continue
		}
		out = append(out, Span{Start: i, End: end})
		i = end
	}
	return out
}

func matchHive(text string, off int) int {
	for _, h := range regHives {
		if hasPrefixFold(text, off, h) {
			return len(h)
		}
	}
	return 0
}

func isRegKeyChar(c byte) bool {
	if isAlnum(c) {
		return true
	}
	switch c {
	case '\\', ' ', '.', '_', '-', '{', '}', '(', ')', '%', '*', '+', ',', '@':
		return true
	}
	return false
}
