// CLAUDE:SUMMARY CLI subcommand that checks corpus integrity and prebuilds the flattened segment snapshot.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hazyhaar/barlaman-registry/pkg/corpus"
	"github.com/hazyhaar/barlaman-registry/pkg/roster"
)

func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	dataDir := fs.String("data-dir", "data", "corpus directory")
	snapshot := fs.Bool("snapshot", false, "write segments.gob after validation")
	fs.Parse(args)

	var problems int
	fail := func(format string, a ...any) {
		problems++
		fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", a...)
	}

	mps, err := roster.Load(filepath.Join(*dataDir, "mps.json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: load roster: %v\n", err)
		os.Exit(1)
	}
	seenMP := make(map[string]bool, len(mps))
	for _, mp := range mps {
		if seenMP[mp.ID] {
			fail("duplicate mp id %q", mp.ID)
		}
		seenMP[mp.ID] = true
	}

	sessions, err := corpus.LoadSessions(filepath.Join(*dataDir, "sessions.json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: load sessions: %v\n", err)
		os.Exit(1)
	}

	seen := make(map[string]bool, len(sessions))
	var interventions, unattributed int
	for _, s := range sessions {
		if s.ID == "" {
			fail("session with empty id (title %q)", s.Title)
			continue
		}
		if seen[s.ID] {
			fail("duplicate session id %q", s.ID)
		}
		seen[s.ID] = true

		if s.Date == "" {
			fail("session %s has no date", s.ID)
		} else if _, err := time.Parse("2006-01-02", s.Date); err != nil {
			fail("session %s has malformed date %q", s.ID, s.Date)
		}

		for _, c := range s.Chunks {
			for _, iv := range c.Interventions {
				interventions++
				if iv.Text == "" {
					fail("session %s chunk %s has an empty intervention", s.ID, c.ChunkID)
				}
				if iv.SpeakerNameRaw == "" {
					unattributed++
				}
			}
		}
	}

	// Speaker attribution rate, informational only.
	matcher := roster.NewMatcher(roster.DefaultMatcherConfig())
	var resolved, named int
	for _, s := range sessions {
		for _, c := range s.Chunks {
			for _, iv := range c.Interventions {
				if iv.SpeakerNameRaw == "" {
					continue
				}
				named++
				if matcher.Resolve(iv.SpeakerNameRaw, mps) != nil {
					resolved++
				}
			}
		}
	}

	fmt.Printf("mps:            %d\n", len(mps))
	fmt.Printf("sessions:       %d\n", len(sessions))
	fmt.Printf("interventions:  %d (%d unattributed)\n", interventions, unattributed)
	if named > 0 {
		fmt.Printf("resolved:       %d/%d speaker labels\n", resolved, named)
	}

	if problems > 0 {
		fmt.Fprintf(os.Stderr, "\n%d problem(s) found\n", problems)
		os.Exit(1)
	}

	if *snapshot {
		segments := corpus.FlattenSegments(sessions)
		path := filepath.Join(*dataDir, "segments.gob")
		if err := corpus.SaveSegmentsSnapshot(segments, path); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: write snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("snapshot:       %s (%d segments)\n", path, len(segments))
	}

	fmt.Println("OK")
}
