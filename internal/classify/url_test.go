package classify

import "testing"

func TestURL(t *testing.T) {
	text := "visit http://example.com/x today"
	spans := findURLs(text)
	if len(spans) != 1 {
		t.Fatalf("expected one url span, got %d", len(spans))
	}
	if got := text[spans[0].Start:spans[0].End]; got != "http://example.com/x" {
		t.Fatalf("wrong span %q", got)
	}
}

func TestURLSchemes(t *testing.T) {
	for _, text := range []string{
		"https://c2.evil.top/gate.php?id=1",
		"ftp://198.51.100.7/drop.bin",
		"ws://socket.example.io:8080/feed",
	} {
		if spans := findURLs(text); len(spans) != 1 {
			t.Fatalf("%s: expected one span, got %v", text, spans)
		}
	}
}

func TestURLTrailingPunctuationTrimmed(t *testing.T) {
	text := "see https://example.com/a."
	spans := findURLs(text)
	if len(spans) != 1 || text[spans[0].Start:spans[0].End] != "https://example.com/a" {
		t.Fatalf("expected trimmed span, got %v", spans)
	}
}

func TestURLRejectsBareSeparator(t *testing.T) {
	if spans := findURLs("a :// b"); len(spans) != 0 {
		t.Fatalf("expected no spans, got %v", spans)
	}
}
