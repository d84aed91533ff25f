package classify

import (
	"sort"

	"github.com/strsift/strsift/internal/types"
)

// Resolved is a top-level matched span with the union of its own category
// and the categories of every match nested inside it.
type Resolved struct {
	Span       Span
	Categories types.CategorySet
}

// Resolve reduces raw matches to reportable spans. A span strictly
// contained in another match does not stand alone; instead its category is
// folded into each containing top-level span. Identical spans merge.
// This is how a path containing an embedded GUID ends up as one entry
// carrying both categories, while the GUID alone does not.
func Resolve(matches []Match) []Resolved {
	if len(matches) == 0 {
		return nil
	}

	// merge matches sharing the exact span
	bySpan := make(map[Span]types.CategorySet, len(matches))
	for _, m := range matches {
		set, ok := bySpan[m.Span]
		if !ok {
			set = types.CategorySet{}
			bySpan[m.Span] = set
		}
		set.Add(m.Category)
	}
	spans := make([]Span, 0, len(bySpan))
	for sp := range bySpan {
		spans = append(spans, sp)
	}
	// start ascending, wider span first on ties so containers precede
	// their contents
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})

	var tops []Resolved
	maxEnd := -1
	for _, sp := range spans {
		if sp.End <= maxEnd {
			// contained: top-level ends are strictly increasing, so the
			// containers form a suffix of tops
			for k := len(tops) - 1; k >= 0 && tops[k].Span.End >= sp.End; k-- {
				tops[k].Categories.Union(bySpan[sp])
			}
			continue
		}
		cats := types.CategorySet{}
		cats.Union(bySpan[sp])
		tops = append(tops, Resolved{Span: sp, Categories: cats})
		maxEnd = sp.End
	}
	return tops
}
