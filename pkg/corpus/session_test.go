package corpus

import (
	"strings"
	"testing"
)

func TestDecodeSessionsChunked(t *testing.T) {
	in := `[{
		"id": "s1",
		"title": "الجلسة الأولى",
		"date": "2025-01-01",
		"term": "الدورة العادية",
		"youtube": {"video_id": "abc123"},
		"chunks": [{
			"chunk_id": "c1",
			"interventions": [
				{"id": "i1", "speakerType": "mp", "speakerNameRaw": "النائب خميس عطية",
				 "intervention_text": "نص المداخلة", "topics": ["الصحة"], "start_sec": 12.5}
			]
		}]
	}]`
	sessions, err := DecodeSessions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	s := sessions[0]
	if s.VideoID != "abc123" {
		t.Errorf("VideoID = %q, want abc123", s.VideoID)
	}
	if len(s.Chunks) != 1 || len(s.Chunks[0].Interventions) != 1 {
		t.Fatalf("unexpected chunk shape: %+v", s.Chunks)
	}
	iv := s.Chunks[0].Interventions[0]
	if iv.SpeakerNameRaw != "النائب خميس عطية" {
		t.Errorf("SpeakerNameRaw = %q", iv.SpeakerNameRaw)
	}
	if iv.StartSec != 12.5 {
		t.Errorf("StartSec = %v, want 12.5", iv.StartSec)
	}
}

func TestDecodeSessionsLegacyReshape(t *testing.T) {
	in := `[{
		"id": "s1",
		"title": "الجلسة الثانية",
		"date": "2025-02-01",
		"segments": [
			{"segmentId": "seg1", "speakerName": "النائب محمد الحجوج",
			 "speakerRole": "نائب", "textExcerpt": "نص قديم", "videoTimestamp": 30},
			{"id": "seg2", "speakerName": "رئيس المجلس", "speakerRole": "رئيس المجلس",
			 "text": "نص بديل"}
		]
	}]`
	sessions, err := DecodeSessions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeSessions: %v", err)
	}
	s := sessions[0]
	if s.Term != "الدورة العادية" {
		t.Errorf("Term = %q, want default", s.Term)
	}
	if len(s.Chunks) != 1 {
		t.Fatalf("chunks = %d, want 1 synthetic chunk", len(s.Chunks))
	}
	c := s.Chunks[0]
	if c.ChunkID != "full" {
		t.Errorf("ChunkID = %q, want full", c.ChunkID)
	}
	if len(c.Interventions) != 2 {
		t.Fatalf("interventions = %d, want 2", len(c.Interventions))
	}
	if c.Interventions[0].ID != "seg1" || c.Interventions[0].Text != "نص قديم" {
		t.Errorf("first intervention = %+v", c.Interventions[0])
	}
	if c.Interventions[0].SpeakerType != RoleMP {
		t.Errorf("first role = %q, want %q", c.Interventions[0].SpeakerType, RoleMP)
	}
	if c.Interventions[1].ID != "seg2" || c.Interventions[1].Text != "نص بديل" {
		t.Errorf("second intervention = %+v", c.Interventions[1])
	}
	if c.Interventions[1].SpeakerType != RoleChair {
		t.Errorf("second role = %q, want %q", c.Interventions[1].SpeakerType, RoleChair)
	}
}

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		label, want string
	}{
		{"نائب", RoleMP},
		{"النائب عن عمان", RoleMP},
		{"رئيس المجلس", RoleChair},
		{"رئيس الجلسة", RoleChair},
		{"وزير المالية", RoleGovernment},
		{"ممثل الحكومة", RoleGovernment},
		{"رئيس الوزراء", RoleGovernment},
		{"متحدث", RoleUnknown},
		{"", RoleUnknown},
		{"mp", RoleMP},
		{"chair", RoleChair},
		{"government", RoleGovernment},
		{"unknown", RoleUnknown},
	}
	for _, tt := range tests {
		if got := ClassifyRole(tt.label); got != tt.want {
			t.Errorf("ClassifyRole(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestFlattenSegmentsOrder(t *testing.T) {
	sessions := []*Session{
		{
			ID: "s1", Title: "جلسة 1", Date: "2025-01-01",
			Chunks: []Chunk{
				{ChunkID: "c1", Interventions: []Intervention{
					{ID: "i1", SpeakerNameRaw: "أ", Text: "١"},
					{ID: "i2", SpeakerNameRaw: "ب", Text: "٢"},
				}},
				{ChunkID: "c2", Interventions: []Intervention{
					{ID: "i3", SpeakerNameRaw: "ج", Text: "٣"},
				}},
			},
		},
		{
			ID: "s2", Title: "جلسة 2", Date: "2025-02-01",
			Chunks: []Chunk{
				{ChunkID: "c1", Interventions: []Intervention{
					{ID: "i4", SpeakerNameRaw: "د", Text: "٤"},
				}},
			},
		},
	}

	segments := FlattenSegments(sessions)
	wantIDs := []string{"i1", "i2", "i3", "i4"}
	if len(segments) != len(wantIDs) {
		t.Fatalf("segments = %d, want %d", len(segments), len(wantIDs))
	}
	for i, want := range wantIDs {
		if segments[i].ID != want {
			t.Errorf("segments[%d].ID = %q, want %q", i, segments[i].ID, want)
		}
	}
	if segments[3].SessionID != "s2" || segments[3].SessionTitle != "جلسة 2" {
		t.Errorf("session linkage = %+v", segments[3])
	}
}
