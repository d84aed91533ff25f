package types

import (
	"sort"
	"time"
)

// Encoding identifies the byte encoding a candidate was recovered under.
type Encoding string

const (
	EncASCII   Encoding = "ascii"
	EncUTF16LE Encoding = "utf16le"
	EncUTF16BE Encoding = "utf16be"
)

// AllEncodings lists every supported encoding in extraction order.
func AllEncodings() []Encoding {
	return []Encoding{EncASCII, EncUTF16LE, EncUTF16BE}
}

// Category is a semantic tag assigned to an extracted string.
type Category string

const (
	CatURL         Category = "url"
	CatIPv4        Category = "ipv4"
	CatIPv6        Category = "ipv6"
	CatEmail       Category = "email"
	CatWindowsPath Category = "windows_path"
	CatUnixPath    Category = "unix_path"
	CatRegistryKey Category = "registry_key"
	CatGUID        Category = "guid"
	CatBase64Blob  Category = "base64_blob"
	CatHexBlob     Category = "hex_blob"
	CatDomainName  Category = "domain_name"
	CatGeneric     Category = "generic"
)

// Categories lists every category in a stable order.
func Categories() []Category {
	return []Category{
		CatURL, CatIPv4, CatIPv6, CatEmail,
		CatWindowsPath, CatUnixPath, CatRegistryKey, CatGUID,
		CatBase64Blob, CatHexBlob, CatDomainName, CatGeneric,
	}
}

// CategorySet is an unordered set of categories.
type CategorySet map[Category]struct{}

// NewCategorySet builds a set from the given categories.
func NewCategorySet(cats ...Category) CategorySet {
	s := make(CategorySet, len(cats))
	for _, c := range cats {
		s[c] = struct{}{}
	}
	return s
}

func (s CategorySet) Add(c Category)      { s[c] = struct{}{} }
func (s CategorySet) Has(c Category) bool { _, ok := s[c]; return ok }

// Union folds other into s.
func (s CategorySet) Union(other CategorySet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Sorted returns the members in lexical order for deterministic output.
func (s CategorySet) Sorted() []Category {
	out := make([]Category, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RawCandidate is a run of buffer bytes that decoded to printable text under
// one encoding. Bytes is a subslice of the scanned buffer and must not be
// retained past the pipeline step that consumes the candidate.
type RawCandidate struct {
	Offset   uint64
	Length   uint64
	Encoding Encoding
	Bytes    []byte
}

// DecodedString pairs the decoded text with the candidate it came from.
// Text is never empty.
type DecodedString struct {
	Text   string
	Source RawCandidate
}

// ScoredString is a decoded string with its classification and suspicion
// score attached. Immutable once produced.
type ScoredString struct {
	Decoded    DecodedString
	Categories CategorySet
	Entropy    float64 // bits per symbol
	Score      float64 // in [0,1]
}

// AggregateEntry summarizes every occurrence of one exact text value.
type AggregateEntry struct {
	Text       string     `json:"text"`
	Offsets    []uint64   `json:"offsets"`
	Categories []Category `json:"categories"`
	Encodings  []Encoding `json:"encodings"`
	MaxScore   float64    `json:"max_score"`
	Entropy    float64    `json:"entropy"`
	Count      int        `json:"count"`
	FirstSeen  uint64     `json:"first_seen"`
	Suspicious bool       `json:"suspicious"`
	Sources    []string   `json:"sources,omitempty"`
}

// Summary holds the scan-wide counters attached to a report.
type Summary struct {
	TotalCandidates int              `json:"total_candidates"`
	UniqueStrings   int              `json:"unique_strings"`
	BytesScanned    uint64           `json:"bytes_scanned"`
	CategoryCounts  map[Category]int `json:"category_counts"`
	Suspicious      int              `json:"suspicious"`
}

// Statistics are the optional distribution views over a report.
type Statistics struct {
	MostCommon         []EntryCount   `json:"most_common,omitempty"`
	HighEntropy        []EntryScore   `json:"high_entropy,omitempty"`
	LengthDistribution map[string]int `json:"length_distribution,omitempty"`
}

// EntryCount pairs a text value with its occurrence count.
type EntryCount struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// EntryScore pairs a text value with a floating-point measure.
type EntryScore struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// ScanReport is the terminal artifact of one scan. Entries are sorted by
// descending max score, then descending count, then ascending first offset.
type ScanReport struct {
	Entries     []AggregateEntry `json:"entries"`
	Summary     Summary          `json:"summary"`
	Stats       Statistics       `json:"stats"`
	Truncated   bool             `json:"truncated"`
	TruncReason string           `json:"truncated_reason,omitempty"`
	Source      string           `json:"source,omitempty"`
	ContentHash string           `json:"content_hash,omitempty"`
	Duration    time.Duration    `json:"duration"`
}
