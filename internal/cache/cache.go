package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/strsift/strsift/internal/types"
)

// Entry pairs a file's content hash with the report produced for it.
// A batch scan reuses the report when the hash still matches.
type Entry struct {
	Hash   string            `json:"hash"`
	Report *types.ScanReport `json:"report"`
}

type DB struct {
	// Path relative to scan root -> cached entry
	Entries map[string]Entry `json:"entries"`
}

func defaultPath(root string) string {
	return filepath.Join(root, ".strsiftcache.json")
}

func Load(root string) (DB, error) {
	var db DB
	p := defaultPath(root)
	f, err := os.ReadFile(p)
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(f, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	p := defaultPath(root)
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(p, b, 0644)
}
