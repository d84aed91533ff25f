package classify

import "testing"

func TestHexBlob(t *testing.T) {
	text := "sha1 da39a3ee5e6b4b0d3255bfef95601890afd80709 computed"
	spans := findHexBlobs(text)
	if len(spans) != 1 {
		t.Fatalf("expected one hex span, got %d", len(spans))
	}
	if got := text[spans[0].Start:spans[0].End]; got != "da39a3ee5e6b4b0d3255bfef95601890afd80709" {
		t.Fatalf("wrong span %q", got)
	}
}

func TestHexBlobRejectsOddLength(t *testing.T) {
	if spans := findHexBlobs("abcdef0123456789a"); len(spans) != 0 {
		t.Fatalf("expected no spans, got %v", spans)
	}
}

func TestHexBlobRejectsDecimalRun(t *testing.T) {
	if spans := findHexBlobs("12345678901234567890"); len(spans) != 0 {
		t.Fatalf("expected no spans, got %v", spans)
	}
}

func TestHexBlobRejectsShortRun(t *testing.T) {
	if spans := findHexBlobs("deadbeef"); len(spans) != 0 {
		t.Fatalf("expected no spans, got %v", spans)
	}
}
