package classify

import "testing"

func TestDomainName(t *testing.T) {
	text := "resolve evil-cdn.example.top then sleep"
	spans := findDomains(text)
	if len(spans) != 1 {
		t.Fatalf("expected one domain span, got %d", len(spans))
	}
	if got := text[spans[0].Start:spans[0].End]; got != "evil-cdn.example.top" {
		t.Fatalf("wrong span %q", got)
	}
}

func TestDomainNameOnion(t *testing.T) {
	if spans := findDomains("gate at expyuzz4wqqyqhjn.onion stop"); len(spans) != 1 {
		t.Fatalf("expected onion match, got %v", spans)
	}
}

func TestDomainNameRejectsFilename(t *testing.T) {
	if spans := findDomains("compiled main.rs and util.c quickly"); len(spans) != 0 {
		t.Fatalf("expected no spans, got %v", spans)
	}
}

func TestDomainNameRejectsDottedQuad(t *testing.T) {
	if spans := findDomains("peer 10.20.30.40 up"); len(spans) != 0 {
		t.Fatalf("expected no spans, got %v", spans)
	}
}
