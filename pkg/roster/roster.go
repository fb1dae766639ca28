// CLAUDE:SUMMARY Member-of-parliament roster model and JSON loading.
package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Entry is one member of parliament in the authoritative roster.
// Entries are immutable once loaded.
type Entry struct {
	ID          string   `json:"id"`
	FullName    string   `json:"fullName"`
	Aliases     []string `json:"aliases,omitempty"`
	Party       string   `json:"party,omitempty"`
	Bloc        string   `json:"parliamentaryBloc,omitempty"`
	Governorate string   `json:"governorate,omitempty"`
	District    string   `json:"district,omitempty"`
	PhotoURL    string   `json:"photoUrl,omitempty"`
}

// Decode reads a roster from JSON. Entries without an id or full name are
// rejected: the resolver keys on both.
func Decode(r io.Reader) ([]*Entry, error) {
	var entries []*Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("roster entry %d: missing id", i)
		}
		if e.FullName == "" {
			return nil, fmt.Errorf("roster entry %s: missing fullName", e.ID)
		}
	}
	return entries, nil
}

// Load reads a roster from a JSON file.
func Load(path string) ([]*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
