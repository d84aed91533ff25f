package classify

import "testing"

func TestGUIDBraced(t *testing.T) {
	text := "clsid {3F2504E0-4F89-11D3-9A0C-0305E82C3301} registered"
	spans := findGUIDs(text)
	if len(spans) != 1 {
		t.Fatalf("expected one guid span, got %d", len(spans))
	}
	if got := text[spans[0].Start:spans[0].End]; got != "{3F2504E0-4F89-11D3-9A0C-0305E82C3301}" {
		t.Fatalf("wrong span %q", got)
	}
}

func TestGUIDBare(t *testing.T) {
	text := "id=3f2504e0-4f89-11d3-9a0c-0305e82c3301"
	spans := findGUIDs(text)
	if len(spans) != 1 || text[spans[0].Start:spans[0].End] != "3f2504e0-4f89-11d3-9a0c-0305e82c3301" {
		t.Fatalf("expected bare guid, got %v", spans)
	}
}

func TestGUIDRejectsWrongGrouping(t *testing.T) {
	if spans := findGUIDs("3f2504e0-4f89-11d3-9a0c"); len(spans) != 0 {
		t.Fatalf("expected no spans, got %v", spans)
	}
}

func TestGUIDUnbalancedBraceMatchesBareID(t *testing.T) {
	text := "{3F2504E0-4F89-11D3-9A0C-0305E82C3301"
	spans := findGUIDs(text)
	if len(spans) != 1 || text[spans[0].Start:spans[0].End] != text[1:] {
		t.Fatalf("expected bare guid span, got %v", spans)
	}
}
