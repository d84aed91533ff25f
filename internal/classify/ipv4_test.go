package classify

import "testing"

func TestIPv4(t *testing.T) {
	spans := findIPv4("connect to 192.168.1.1 now")
	if len(spans) != 1 {
		t.Fatalf("expected one ipv4 span, got %d", len(spans))
	}
	if got := "connect to 192.168.1.1 now"[spans[0].Start:spans[0].End]; got != "192.168.1.1" {
		t.Fatalf("wrong span %q", got)
	}
}

func TestIPv4RejectsOutOfRangeOctet(t *testing.T) {
	if spans := findIPv4("999.1.1.1"); len(spans) != 0 {
		t.Fatalf("expected no spans, got %v", spans)
	}
}

func TestIPv4RejectsVersionString(t *testing.T) {
	if spans := findIPv4("release 1.2.3.4.5 shipped"); len(spans) != 0 {
		t.Fatalf("expected no spans, got %v", spans)
	}
}

func TestIPv4AllowsSentencePunctuation(t *testing.T) {
	text := "beacon to 10.0.0.1."
	spans := findIPv4(text)
	if len(spans) != 1 || text[spans[0].Start:spans[0].End] != "10.0.0.1" {
		t.Fatalf("expected 10.0.0.1, got %v", spans)
	}
}

func TestIPv4RejectsLeadingZeroOctet(t *testing.T) {
	if spans := findIPv4("10.01.0.1"); len(spans) != 0 {
		t.Fatalf("expected no spans, got %v", spans)
	}
}
