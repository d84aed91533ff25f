package extract

import (
	"github.com/strsift/strsift/internal/types"
)

// Config controls candidate extraction.
type Config struct {
	// MinLength is the minimum decoded character count for a run to be
	// emitted. Must be >= 1.
	MinLength int

	// Encodings are attempted in the order given. Empty means all of
	// ASCII, UTF-16LE, UTF-16BE in that order.
	Encodings []types.Encoding

	// IncludeWhitespace also treats tab, newline, and carriage return as
	// printable, extending runs across line breaks.
	IncludeWhitespace bool
}

// Scanner walks a buffer emitting RawCandidates. It is a forward-only
// cursor; once consumed it cannot be restarted. Create a fresh Scanner to
// re-scan the same buffer.
type Scanner struct {
	buf       []byte
	minLen    int
	encodings []types.Encoding
	includeWS bool
	pos       int

	// rejected holds the most recent too-short run measured per encoding
	// (two alignment slots for the 16-bit encodings). Any same-aligned
	// start inside a rejected run is a suffix of it and therefore also too
	// short, so it is skipped without re-measuring. This bounds total
	// measurement work at a constant number of passes over the buffer.
	rejected map[types.Encoding][2]span
}

type span struct{ start, end int }

// NewScanner returns a Scanner over buf. The buffer is never mutated and
// emitted candidates borrow subslices of it.
func NewScanner(buf []byte, cfg Config) *Scanner {
	encs := cfg.Encodings
	if len(encs) == 0 {
		encs = types.AllEncodings()
	}
	minLen := cfg.MinLength
	if minLen < 1 {
		minLen = 1
	}
	return &Scanner{
		buf:       buf,
		minLen:    minLen,
		encodings: encs,
		includeWS: cfg.IncludeWhitespace,
		rejected:  make(map[types.Encoding][2]span, len(encs)),
	}
}

// Next returns the next candidate, or ok=false once the buffer is
// exhausted. At each cursor position encodings are tried in order and the
// first one whose printable run reaches MinLength wins; that byte range is
// consumed whole, so emitted candidates never overlap and no byte range is
// double-counted under a second encoding.
func (s *Scanner) Next() (types.RawCandidate, bool) {
	for s.pos < len(s.buf) {
		for _, enc := range s.encodings {
			chars, nbytes := s.measure(enc, s.pos)
			if chars < s.minLen {
				continue
			}
			c := types.RawCandidate{
				Offset:   uint64(s.pos),
				Length:   uint64(nbytes),
				Encoding: enc,
				Bytes:    s.buf[s.pos : s.pos+nbytes],
			}
			s.pos += nbytes
			return c, true
		}
		s.pos++
	}
	return types.RawCandidate{}, false
}

// measure returns the printable run at off under enc, consulting and
// updating the rejected-run memo.
func (s *Scanner) measure(enc types.Encoding, off int) (chars, nbytes int) {
	slot := 0
	if enc != types.EncASCII {
		slot = off & 1
	}
	zones := s.rejected[enc]
	z := zones[slot]
	if off >= z.start && off < z.end && aligned(enc, z.start, off) {
		return 0, 0
	}

	switch enc {
	case types.EncUTF16LE:
		chars, nbytes = s.utf16Run(off, true)
	case types.EncUTF16BE:
		chars, nbytes = s.utf16Run(off, false)
	default:
		chars, nbytes = s.asciiRun(off)
	}
	if chars > 0 && chars < s.minLen {
		zones[slot] = span{start: off, end: off + nbytes}
		s.rejected[enc] = zones
	}
	return chars, nbytes
}

// aligned reports whether a start inside a rejected run lines up with the
// run's code-unit boundaries. ASCII runs are byte-aligned by definition.
func aligned(enc types.Encoding, runStart, off int) bool {
	if enc == types.EncASCII {
		return true
	}
	return (off-runStart)%2 == 0
}

func (s *Scanner) asciiRun(off int) (chars, nbytes int) {
	i := off
	for i < len(s.buf) && s.printable(uint16(s.buf[i])) {
		i++
	}
	return i - off, i - off
}

// utf16Run walks 16-bit code units from off. A trailing odd byte simply
// terminates the run; truncation is never an error.
func (s *Scanner) utf16Run(off int, little bool) (chars, nbytes int) {
	i := off
	for i+1 < len(s.buf) {
		var u uint16
		if little {
			u = uint16(s.buf[i]) | uint16(s.buf[i+1])<<8
		} else {
			u = uint16(s.buf[i])<<8 | uint16(s.buf[i+1])
		}
		if !s.printable(u) {
			break
		}
		i += 2
	}
	return (i - off) / 2, i - off
}

// printable reports whether a code unit is in the printable ASCII range,
// optionally admitting tab/newline/carriage-return.
func (s *Scanner) printable(u uint16) bool {
	if u >= 0x20 && u <= 0x7E {
		return true
	}
	if s.includeWS && (u == '\t' || u == '\n' || u == '\r') {
		return true
	}
	return false
}
