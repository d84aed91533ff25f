package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnoreMatch(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, ".strsiftignore")
	content := "vendorlibs/\n*.pdb\n# comment\n\nknown-good.bin\n"
	if err := os.WriteFile(ig, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(ig)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"vendorlibs/zlib/inflate.o": true,
		"build/app.pdb":             true,
		"known-good.bin":            true,
		"samples/dropper.exe":       false,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}

func TestIgnoreLoadMissing(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), ".strsiftignore"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if m.Match("anything.bin") {
		t.Fatal("zero matcher must match nothing")
	}
}
