package corpus

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/hazyhaar/barlaman-registry/pkg/roster"
)

// Store is the in-memory cache of the static corpus: roster, sessions and the
// flattened segment index. It is loaded once at startup and refreshed
// explicitly (SIGHUP or the refresh endpoint); there is no hidden per-call
// re-reading.
type Store struct {
	mu      sync.RWMutex
	dataDir string
	logger  *slog.Logger

	mps      []*roster.Entry
	byID     map[string]*roster.Entry
	sessions []*Session
	segments []Segment
}

// NewStore creates an empty store over a data directory laid out as the
// dashboard expects: mps.json, sessions.json, and optionally segments.gob.
func NewStore(dataDir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dataDir: dataDir, logger: logger}
}

// Load reads the corpus from disk, replacing the cached state atomically on
// success. A failure leaves the previous state in place.
func (s *Store) Load() error {
	mps, err := roster.Load(filepath.Join(s.dataDir, "mps.json"))
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	sessions, err := LoadSessions(filepath.Join(s.dataDir, "sessions.json"))
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}

	// A prebuilt snapshot takes priority over re-flattening.
	var segments []Segment
	snapshotPath := filepath.Join(s.dataDir, "segments.gob")
	if _, err := os.Stat(snapshotPath); err == nil {
		segments, err = LoadSegmentsSnapshot(snapshotPath)
		if err != nil {
			s.logger.Warn("segment snapshot unreadable, re-flattening", "path", snapshotPath, "error", err)
			segments = nil
		}
	}
	if segments == nil {
		segments = FlattenSegments(sessions)
	}

	byID := make(map[string]*roster.Entry, len(mps))
	for _, e := range mps {
		byID[e.ID] = e
	}

	s.mu.Lock()
	s.mps = mps
	s.byID = byID
	s.sessions = sessions
	s.segments = segments
	s.mu.Unlock()

	s.logger.Info("corpus loaded",
		"mps", len(mps), "sessions", len(sessions), "segments", len(segments))
	return nil
}

// Refresh reloads the corpus from disk (hot reload).
func (s *Store) Refresh() error {
	return s.Load()
}

// Roster returns the cached roster entries in file order.
func (s *Store) Roster() []*roster.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mps
}

// MPByID returns a roster entry by its stable identifier.
func (s *Store) MPByID(id string) (*roster.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.byID[id]
	return e, ok
}

// Sessions returns the cached sessions in file order.
func (s *Store) Sessions() []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions
}

// SessionByID returns a session by id.
func (s *Store) SessionByID(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return nil, false
}

// Segments returns the flattened segment index in corpus order.
func (s *Store) Segments() []Segment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.segments
}

// Counts returns the cached corpus sizes, for health reporting.
func (s *Store) Counts() (mps, sessions, segments int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mps), len(s.sessions), len(s.segments)
}
