package classify

import "testing"

func TestBase64Blob(t *testing.T) {
	text := "payload TVqQAAMAAAAEAAAA//8AALgAAAAAAAAAQA== follows"
	spans := findBase64Blobs(text)
	if len(spans) != 1 {
		t.Fatalf("expected one blob span, got %d", len(spans))
	}
	if got := text[spans[0].Start:spans[0].End]; got != "TVqQAAMAAAAEAAAA//8AALgAAAAAAAAAQA==" {
		t.Fatalf("wrong span %q", got)
	}
}

func TestBase64BlobRejectsShortRun(t *testing.T) {
	if spans := findBase64Blobs("dG9vc2hvcnQ="); len(spans) != 0 {
		t.Fatalf("expected no spans, got %v", spans)
	}
}

func TestBase64BlobRejectsBadPadding(t *testing.T) {
	// 25 chars, not a multiple of four
	if spans := findBase64Blobs("AAAAAAAAAAAAAAAAAAAAAAAAB"); len(spans) != 0 {
		t.Fatalf("expected no spans, got %v", spans)
	}
}

func TestBase64Blob64Chars(t *testing.T) {
	text := "Zm9vYmFyYmF6cXV4QUJDREVGR0hJSktMTU5PUFFSU1RVVldYWVowMTIzNDU2Nzg5"
	if len(text) != 64 {
		t.Fatalf("fixture length changed: %d", len(text))
	}
	spans := findBase64Blobs(text)
	if len(spans) != 1 || spans[0].Start != 0 || spans[0].End != 64 {
		t.Fatalf("expected full span, got %v", spans)
	}
}
