// CLAUDE:SUMMARY Transcript search engine: structured segment containment search plus raw-transcript line scanning with context windows.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hazyhaar/barlaman-registry/pkg/artext"
	"github.com/hazyhaar/barlaman-registry/pkg/corpus"
	"github.com/hazyhaar/barlaman-registry/pkg/transcripts"
)

// Match types.
const (
	MatchExact      = "exact"      // hit inside a structured intervention
	MatchTranscript = "transcript" // hit inside a raw transcript document
)

// Synthetic speaker labels for raw-transcript hits, which are not
// speaker-attributed at line level.
const (
	labelVerbatim = "من التفريغ الحرفي (المحاضر)"
	labelSummary  = "من ملخص الجلسة"
)

// contextLines is the number of lines kept on each side of a matching
// transcript line.
const contextLines = 2

// minQueryLen is the minimum trimmed query length; shorter queries return
// nothing without touching any source.
const minQueryLen = 2

// Match is one search hit.
type Match struct {
	ID           string  `json:"id"`
	SessionID    string  `json:"session_id"`
	SessionTitle string  `json:"session_title"`
	SessionDate  string  `json:"session_date,omitempty"`
	SpeakerName  string  `json:"speaker_name"`
	SpeakerRole  string  `json:"speaker_role"`
	Text         string  `json:"text"`
	StartSec     float64 `json:"start_sec,omitempty"`
	VideoID      string  `json:"video_id,omitempty"`
	MatchType    string  `json:"match_type"`
}

// Engine searches the structured segment index and the raw transcript corpus.
// Both sources are searched on every query and concatenated: structured
// matches first in corpus order, then raw-transcript matches in
// document-then-line order. A failing source degrades to the sources that
// succeeded; Search never returns an error.
type Engine struct {
	store   *corpus.Store
	library *transcripts.Library
	logger  *slog.Logger
}

// NewEngine creates a search engine over a loaded store and a transcript
// library.
func NewEngine(store *corpus.Store, library *transcripts.Library, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: store, library: library, logger: logger}
}

// Search runs a free-text query against both sources.
func (e *Engine) Search(ctx context.Context, query string) []Match {
	if len([]rune(strings.TrimSpace(query))) < minQueryLen {
		return nil
	}

	q := artext.NormalizeSearch(query)
	results := e.searchSegments(q)
	results = append(results, e.searchRawTranscripts(ctx, q)...)
	return results
}

// searchSegments tests normalized substring containment against every
// structured segment, in corpus order.
func (e *Engine) searchSegments(q string) []Match {
	var results []Match
	for _, seg := range e.store.Segments() {
		if !strings.Contains(artext.NormalizeSearch(seg.Text), q) {
			continue
		}
		results = append(results, Match{
			ID:           seg.ID,
			SessionID:    seg.SessionID,
			SessionTitle: seg.SessionTitle,
			SessionDate:  seg.SessionDate,
			SpeakerName:  seg.SpeakerName,
			SpeakerRole:  seg.SpeakerRole,
			Text:         seg.Text,
			StartSec:     seg.StartSec,
			VideoID:      seg.VideoID,
			MatchType:    MatchExact,
		})
	}
	return results
}

// searchRawTranscripts scans every manifest document line by line. Each
// matching line yields one match carrying a context window of two lines
// before through two lines after, clipped at document boundaries.
func (e *Engine) searchRawTranscripts(ctx context.Context, q string) []Match {
	var results []Match
	for _, doc := range e.library.LoadAll(ctx) {
		if !strings.Contains(artext.NormalizeSearch(doc.Content), q) {
			continue
		}

		speaker := labelSummary
		if doc.Type == transcripts.TypeVerbatim {
			speaker = labelVerbatim
		}
		sessionID := strings.TrimSuffix(doc.FileName, ".txt")

		lines := strings.Split(doc.Content, "\n")
		for i, line := range lines {
			if !strings.Contains(artext.NormalizeSearch(line), q) {
				continue
			}
			results = append(results, Match{
				ID:           fmt.Sprintf("transcript_%s_%d", doc.FileName, i),
				SessionID:    sessionID,
				SessionTitle: doc.SessionTitle,
				SpeakerName:  speaker,
				SpeakerRole:  MatchTranscript,
				Text:         contextWindow(lines, i),
				MatchType:    MatchTranscript,
			})
		}
	}
	return results
}

// contextWindow joins lines [max(0,i-contextLines), min(n,i+contextLines+1))
// and trims the result.
func contextWindow(lines []string, i int) string {
	start := i - contextLines
	if start < 0 {
		start = 0
	}
	end := i + contextLines + 1
	if end > len(lines) {
		end = len(lines)
	}
	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}
