package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strsift/strsift/internal/types"
)

func TestClassifySoundness(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.Category
	}{
		{"ipv4", "192.168.1.1", types.CatIPv4},
		{"windows path", `C:\Windows\System32`, types.CatWindowsPath},
		{"guid", "{3F2504E0-4F89-11D3-9A0C-0305E82C3301}", types.CatGUID},
		{"base64", "Zm9vYmFyYmF6cXV4QUJDREVGR0hJSktMTU5PUFFSU1RVVldYWVowMTIzNDU2Nzg5", types.CatBase64Blob},
		{"url", "http://example.com/x", types.CatURL},
		{"email", "admin@example.com", types.CatEmail},
		{"ipv6", "fe80::1ff:fe23:4567:890a", types.CatIPv6},
		{"registry", `HKLM\Software\Run`, types.CatRegistryKey},
		{"unix path", "/usr/local/bin/curl", types.CatUnixPath},
		{"hex blob", "da39a3ee5e6b4b0d3255bfef95601890afd80709", types.CatHexBlob},
		{"domain", "update.evil.com", types.CatDomainName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Classify(tt.text)
			assert.True(t, set.Has(tt.want), "categories: %v", set.Sorted())
		})
	}
}

func TestClassifyPlainText(t *testing.T) {
	assert.Empty(t, Classify("just some ordinary words"))
}

func TestClassifyDeterministic(t *testing.T) {
	text := `beacon https://c2.evil.top/x from C:\Users\Public\run.exe`
	first := Classify(text).Sorted()
	second := Classify(text).Sorted()
	assert.Equal(t, first, second)
}

func TestClassifyIsLinearOnAdversarialInput(t *testing.T) {
	// pathological repetition must not blow up; this guards against
	// backtracking-style matchers sneaking in
	text := strings.Repeat("a@", 20000) + strings.Repeat(":", 20000)
	_ = Classify(text)
}

func TestResolveNestedSpans(t *testing.T) {
	text := `C:\ProgramData\{3F2504E0-4F89-11D3-9A0C-0305E82C3301}\loader.dll`
	resolved := Resolve(Matches(text))

	require.Len(t, resolved, 1)
	assert.Equal(t, text, text[resolved[0].Span.Start:resolved[0].Span.End])
	assert.True(t, resolved[0].Categories.Has(types.CatWindowsPath))
	assert.True(t, resolved[0].Categories.Has(types.CatGUID))
}

func TestResolveSeparateSpans(t *testing.T) {
	text := "Contact: admin@example.com or visit http://example.com/x"
	resolved := Resolve(Matches(text))

	require.Len(t, resolved, 2)
	texts := []string{
		text[resolved[0].Span.Start:resolved[0].Span.End],
		text[resolved[1].Span.Start:resolved[1].Span.End],
	}
	assert.Contains(t, texts, "admin@example.com")
	assert.Contains(t, texts, "http://example.com/x")
}

func TestResolveIdenticalSpansMerge(t *testing.T) {
	resolved := Resolve([]Match{
		{Category: types.CatIPv4, Span: Span{Start: 0, End: 11}},
		{Category: types.CatGeneric, Span: Span{Start: 0, End: 11}},
	})
	require.Len(t, resolved, 1)
	assert.True(t, resolved[0].Categories.Has(types.CatIPv4))
	assert.True(t, resolved[0].Categories.Has(types.CatGeneric))
}

func TestResolveEmpty(t *testing.T) {
	assert.Nil(t, Resolve(nil))
}
