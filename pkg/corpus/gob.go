// CLAUDE:SUMMARY Gob snapshot of the flattened segment index for fast loading.
package corpus

import (
	"encoding/gob"
	"fmt"
	"os"
)

// LoadSegmentsSnapshot deserializes a segment index written by
// SaveSegmentsSnapshot.
func LoadSegmentsSnapshot(path string) ([]Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open segments snapshot: %w", err)
	}
	defer f.Close()

	var segments []Segment
	if err := gob.NewDecoder(f).Decode(&segments); err != nil {
		return nil, fmt.Errorf("decode segments snapshot: %w", err)
	}
	return segments, nil
}

// SaveSegmentsSnapshot serializes a flattened segment index to path.
// Built offline by the validate subcommand; the store prefers it over
// re-flattening when present.
func SaveSegmentsSnapshot(segments []Segment, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create segments snapshot: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(segments); err != nil {
		return fmt.Errorf("encode segments snapshot: %w", err)
	}
	return nil
}
