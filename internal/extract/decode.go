package extract

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/strsift/strsift/internal/types"
)

var (
	utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

// Decode converts a candidate's raw bytes into its text under the tagged
// encoding. Scanner-produced candidates hold only validated printable code
// units; if the decoder still rejects the bytes the run is decoded unit by
// unit instead.
func Decode(c types.RawCandidate) types.DecodedString {
	var text string
	switch c.Encoding {
	case types.EncUTF16LE:
		text = decodeUTF16(c.Bytes, utf16LE, true)
	case types.EncUTF16BE:
		text = decodeUTF16(c.Bytes, utf16BE, false)
	default:
		text = string(c.Bytes)
	}
	return types.DecodedString{Text: text, Source: c}
}

func decodeUTF16(b []byte, enc encoding.Encoding, little bool) string {
	if out, err := enc.NewDecoder().Bytes(b); err == nil {
		return string(out)
	}
	// Fallback: candidates hold BMP code units only, decode unit by unit.
	runes := make([]rune, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		var u uint16
		if little {
			u = uint16(b[i]) | uint16(b[i+1])<<8
		} else {
			u = uint16(b[i])<<8 | uint16(b[i+1])
		}
		runes = append(runes, rune(u))
	}
	return string(runes)
}
