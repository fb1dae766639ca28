// CLAUDE:SUMMARY Raw transcript corpus: manifest-indexed verbatim and summary documents, loaded fault-tolerantly.
package transcripts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Document kinds. Verbatim records live under minutes_verbatim/, summary
// transcripts under transcripts/.
const (
	TypeVerbatim = "verbatim"
	TypeSummary  = "transcript"
)

// IndexEntry is one row of the transcript manifest
// (transcripts_index.json): which file, which kind, which session.
type IndexEntry struct {
	FileName     string `json:"fileName"`
	Type         string `json:"type"`
	SessionTitle string `json:"sessionTitle"`
}

// Document is a loaded whole-text transcript.
type Document struct {
	FileName     string
	Type         string
	SessionTitle string
	Content      string
}

// Library reads the raw transcript corpus from the data directory.
type Library struct {
	dataDir string
	logger  *slog.Logger
}

// NewLibrary creates a library over a data directory.
func NewLibrary(dataDir string, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{dataDir: dataDir, logger: logger}
}

// Index reads the manifest. A missing or unreadable manifest is reported as
// an error so callers can decide to degrade.
func (l *Library) Index() ([]IndexEntry, error) {
	data, err := os.ReadFile(filepath.Join(l.dataDir, "transcripts_index.json"))
	if err != nil {
		return nil, fmt.Errorf("read transcript index: %w", err)
	}
	var entries []IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse transcript index: %w", err)
	}
	return entries, nil
}

// LoadAll loads every document listed in the manifest, in manifest order.
// An unreadable individual document is logged and skipped; an unreadable
// manifest yields an empty list. LoadAll never fails: raw transcripts are a
// secondary search source and degrade silently.
func (l *Library) LoadAll(ctx context.Context) []Document {
	entries, err := l.Index()
	if err != nil {
		l.logger.Warn("transcript index unavailable", "error", err)
		return nil
	}

	docs := make([]Document, 0, len(entries))
	for _, e := range entries {
		if ctx.Err() != nil {
			return docs
		}
		content, err := os.ReadFile(l.docPath(e))
		if err != nil {
			l.logger.Warn("transcript unreadable", "file", e.FileName, "error", err)
			continue
		}
		docs = append(docs, Document{
			FileName:     e.FileName,
			Type:         e.Type,
			SessionTitle: e.SessionTitle,
			Content:      string(content),
		})
	}
	return docs
}

func (l *Library) docPath(e IndexEntry) string {
	folder := "transcripts"
	if e.Type == TypeVerbatim {
		folder = "minutes_verbatim"
	}
	return filepath.Join(l.dataDir, folder, e.FileName)
}
