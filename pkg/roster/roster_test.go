package roster

import (
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	in := `[
		{"id": "mp_1", "fullName": "خميس عطية", "aliases": ["ابو فلان"], "parliamentaryBloc": "الميثاق"},
		{"id": "mp_2", "fullName": "محمد الحجوج"}
	]`
	entries, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Bloc != "الميثاق" {
		t.Errorf("Bloc = %q, want الميثاق", entries[0].Bloc)
	}
	if len(entries[0].Aliases) != 1 {
		t.Errorf("aliases = %d, want 1", len(entries[0].Aliases))
	}
}

func TestDecodeRejectsIncomplete(t *testing.T) {
	for _, in := range []string{
		`[{"fullName": "بلا معرف"}]`,
		`[{"id": "mp_1"}]`,
		`{not json`,
	} {
		if _, err := Decode(strings.NewReader(in)); err == nil {
			t.Errorf("Decode(%q): expected error", in)
		}
	}
}

func TestLoadMatcherConfigMissingFileDefaults(t *testing.T) {
	cfg, err := LoadMatcherConfig(t.TempDir() + "/nope.yaml")
	if err != nil {
		t.Fatalf("LoadMatcherConfig: %v", err)
	}
	def := DefaultMatcherConfig()
	if cfg.Weights != def.Weights {
		t.Errorf("weights = %+v, want defaults", cfg.Weights)
	}
	if len(cfg.Honorifics) != len(def.Honorifics) {
		t.Errorf("honorifics = %d, want %d", len(cfg.Honorifics), len(def.Honorifics))
	}
}
