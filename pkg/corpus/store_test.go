package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

const testMPs = `[
	{"id": "mp_1", "fullName": "خميس عطية"},
	{"id": "mp_2", "fullName": "محمد الحجوج"}
]`

const testSessions = `[{
	"id": "s1",
	"title": "الجلسة الأولى",
	"date": "2025-01-01",
	"chunks": [{
		"chunk_id": "c1",
		"interventions": [
			{"id": "i1", "speakerType": "mp", "speakerNameRaw": "النائب خميس عطية",
			 "intervention_text": "حول الموازنة"}
		]
	}]
}]`

func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "mps.json"), []byte(testMPs), 0o644)
	os.WriteFile(filepath.Join(dir, "sessions.json"), []byte(testSessions), 0o644)
	return dir
}

func TestStoreLoad(t *testing.T) {
	dir := writeCorpus(t)
	s := NewStore(dir, nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	mps, sessions, segments := s.Counts()
	if mps != 2 || sessions != 1 || segments != 1 {
		t.Errorf("Counts = %d/%d/%d, want 2/1/1", mps, sessions, segments)
	}

	e, ok := s.MPByID("mp_1")
	if !ok || e.FullName != "خميس عطية" {
		t.Errorf("MPByID(mp_1) = %v, %v", e, ok)
	}
	if _, ok := s.MPByID("mp_404"); ok {
		t.Error("MPByID(mp_404) = true, want false")
	}

	sess, ok := s.SessionByID("s1")
	if !ok || sess.Title != "الجلسة الأولى" {
		t.Errorf("SessionByID(s1) = %v, %v", sess, ok)
	}
}

func TestStoreLoadMissingFiles(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	if err := s.Load(); err == nil {
		t.Error("Load with missing files: expected error")
	}
}

// A broken reload must not clobber the previously loaded state.
func TestStoreLoadKeepsStateOnFailure(t *testing.T) {
	dir := writeCorpus(t)
	s := NewStore(dir, nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	os.WriteFile(filepath.Join(dir, "sessions.json"), []byte("{broken"), 0o644)
	if err := s.Refresh(); err == nil {
		t.Fatal("Refresh with broken file: expected error")
	}

	if _, sessions, _ := s.Counts(); sessions != 1 {
		t.Errorf("sessions after failed refresh = %d, want 1 (previous state)", sessions)
	}
}

func TestStoreSnapshotPriority(t *testing.T) {
	dir := writeCorpus(t)

	// Precomputed snapshot with a marker segment not present in sessions.json.
	snapshot := []Segment{{ID: "snap_1", SessionID: "s1", Text: "من اللقطة"}}
	if err := SaveSegmentsSnapshot(snapshot, filepath.Join(dir, "segments.gob")); err != nil {
		t.Fatalf("SaveSegmentsSnapshot: %v", err)
	}

	s := NewStore(dir, nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	segments := s.Segments()
	if len(segments) != 1 || segments[0].ID != "snap_1" {
		t.Errorf("segments = %+v, want snapshot contents", segments)
	}
}

func TestStoreSnapshotCorruptFallsBack(t *testing.T) {
	dir := writeCorpus(t)
	os.WriteFile(filepath.Join(dir, "segments.gob"), []byte("not gob"), 0o644)

	s := NewStore(dir, nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	segments := s.Segments()
	if len(segments) != 1 || segments[0].ID != "i1" {
		t.Errorf("segments = %+v, want re-flattened contents", segments)
	}
}
