package classify

import "github.com/strsift/strsift/internal/types"

// Span is a half-open [Start,End) byte range into the classified text.
type Span struct {
	Start int
	End   int
}

// Match is one recognized span with its category.
type Match struct {
	Category types.Category
	Span     Span
}

// recognizer pairs a category with its span finder and a cheap gate over
// the text's character-class profile. The gate short-circuits recognizers
// that cannot possibly match.
type recognizer struct {
	cat  types.Category
	gate func(p profile) bool
	find func(text string) []Span
}

// Ordered cheapest-gate-first; order does not affect the result set, only
// evaluation cost.
var all = []recognizer{
	{types.CatGUID, func(p profile) bool { return p.hasDigit || p.hasAlpha }, findGUIDs},
	{types.CatIPv4, func(p profile) bool { return p.hasDigit && p.hasDot }, findIPv4},
	{types.CatIPv6, func(p profile) bool { return p.hasColon }, findIPv6},
	{types.CatEmail, func(p profile) bool { return p.hasAt && p.hasDot }, findEmails},
	{types.CatURL, func(p profile) bool { return p.hasColon && p.hasSlash }, findURLs},
	{types.CatWindowsPath, func(p profile) bool { return p.hasBackslash }, findWindowsPaths},
	{types.CatRegistryKey, func(p profile) bool { return p.hasBackslash }, findRegistryKeys},
	{types.CatUnixPath, func(p profile) bool { return p.hasSlash }, findUnixPaths},
	{types.CatDomainName, func(p profile) bool { return p.hasDot && p.hasAlpha }, findDomains},
	{types.CatHexBlob, func(p profile) bool { return p.hasDigit || p.hasAlpha }, findHexBlobs},
	{types.CatBase64Blob, func(p profile) bool { return p.hasAlpha }, findBase64Blobs},
}

// Matches runs every recognizer over the full text and returns all matched
// spans. Pure and deterministic; an empty result means plain text.
func Matches(text string) []Match {
	if text == "" {
		return nil
	}
	p := profileOf(text)
	var out []Match
	for _, r := range all {
		if !r.gate(p) {
			continue
		}
		for _, sp := range r.find(text) {
			out = append(out, Match{Category: r.cat, Span: sp})
		}
	}
	return out
}

// Classify returns the set of categories matched anywhere in text. It is
// the span-free view of Matches.
func Classify(text string) types.CategorySet {
	set := types.CategorySet{}
	for _, m := range Matches(text) {
		set.Add(m.Category)
	}
	return set
}

// profile is a one-pass character-class histogram of the text.
type profile struct {
	hasDigit     bool
	hasAlpha     bool
	hasDot       bool
	hasColon     bool
	hasSlash     bool
	hasBackslash bool
	hasAt        bool
}

func profileOf(text string) profile {
	var p profile
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c >= '0' && c <= '9':
			p.hasDigit = true
		case isAlpha(c):
			p.hasAlpha = true
		case c == '.':
			p.hasDot = true
		case c == ':':
			p.hasColon = true
		case c == '/':
			p.hasSlash = true
		case c == '\\':
			p.hasBackslash = true
		case c == '@':
			p.hasAt = true
		}
	}
	return p
}
