package history

import (
	"testing"

	"github.com/hazyhaar/barlaman-registry/pkg/corpus"
	"github.com/hazyhaar/barlaman-registry/pkg/roster"
)

func newBuilder() *Builder {
	return NewBuilder(roster.NewMatcher(roster.DefaultMatcherConfig()))
}

func testSessions() []*corpus.Session {
	return []*corpus.Session{
		{ID: "s1", Title: "الجلسة الأولى", Date: "2025-01-01", Term: "الدورة العادية"},
		{ID: "s2", Title: "الجلسة الثانية", Date: "2025-06-01", Term: "الدورة العادية"},
		{
			ID: "s3", Title: "الجلسة الثالثة", Date: "2025-03-15", Term: "الدورة العادية",
			BriefSummary: &corpus.BriefSummary{
				MPInterventions: []corpus.MPIntervention{
					{MPName: "النائب خميس عطية", Points: []string{"طالب بدعم المستشفيات", "سأل عن الموازنة"}},
				},
			},
		},
	}
}

func TestSegmentsFor(t *testing.T) {
	b := newBuilder()
	mp := &roster.Entry{ID: "mp_1", FullName: "خميس عطية"}
	segments := []corpus.Segment{
		{ID: "i1", SessionID: "s1", SpeakerName: "النائب خميس عطية", Text: "أ"},
		{ID: "i2", SessionID: "s1", SpeakerName: "رئيس المجلس", Text: "ب"},
		{ID: "i3", SessionID: "s2", SpeakerName: "خميس عطيه", Text: "ج"},
		{ID: "i4", SessionID: "s2", SpeakerName: "", Text: "د"},
	}

	got := b.SegmentsFor(mp, segments)
	if len(got) != 2 {
		t.Fatalf("segments = %d, want 2", len(got))
	}
	if got[0].ID != "i1" || got[1].ID != "i3" {
		t.Errorf("segment ids = %q, %q", got[0].ID, got[1].ID)
	}
}

func TestBuildOrdering(t *testing.T) {
	b := newBuilder()
	matched := []corpus.Segment{
		{ID: "i1", SessionID: "s1", StartSec: 10},
		{ID: "i2", SessionID: "s2"},
		{ID: "i3", SessionID: "s1"},
	}

	got := b.Build(matched, testSessions(), "")
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	// Most recent session (2025-06-01) first.
	if got[0].SessionID != "s2" || got[1].SessionID != "s1" {
		t.Errorf("order = %s, %s; want s2, s1", got[0].SessionID, got[1].SessionID)
	}
	if got[1].Count != 2 {
		t.Errorf("s1 count = %d, want 2", got[1].Count)
	}
	if got[1].FirstSegmentID != "i1" {
		t.Errorf("s1 first segment = %q, want i1", got[1].FirstSegmentID)
	}
	if got[1].StartSec != 10 {
		t.Errorf("s1 start = %v, want 10", got[1].StartSec)
	}
}

// A session with curated summary points but no structural segment hits must
// still appear in the timeline.
func TestBuildRecoversSummaryOnlySessions(t *testing.T) {
	b := newBuilder()
	matched := []corpus.Segment{{ID: "i1", SessionID: "s1"}}

	got := b.Build(matched, testSessions(), "خميس عطية")
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2 (s1 + summary-only s3)", len(got))
	}
	// s3 (2025-03-15) is more recent than s1 (2025-01-01).
	if got[0].SessionID != "s3" {
		t.Errorf("first entry = %s, want s3", got[0].SessionID)
	}
	if got[0].Count != 2 {
		t.Errorf("s3 count = %d, want 2 (number of points)", got[0].Count)
	}
	if len(got[0].SummaryPoints) != 2 {
		t.Errorf("s3 points = %d, want 2", len(got[0].SummaryPoints))
	}
	if got[0].FirstSegmentID != "" {
		t.Errorf("s3 first segment = %q, want empty", got[0].FirstSegmentID)
	}
}

func TestBuildAttachesSummaryToMatchedSession(t *testing.T) {
	b := newBuilder()
	matched := []corpus.Segment{{ID: "i9", SessionID: "s3"}}

	got := b.Build(matched, testSessions(), "النائب الدكتور خميس عطية")
	if len(got) != 1 {
		t.Fatalf("entries = %d, want 1", len(got))
	}
	if got[0].Count != 1 {
		t.Errorf("count = %d, want 1 (structural hit)", got[0].Count)
	}
	if len(got[0].SummaryPoints) != 2 {
		t.Errorf("points = %d, want 2", len(got[0].SummaryPoints))
	}
}

func TestTopicInterests(t *testing.T) {
	segments := []corpus.Segment{
		{Topics: []string{"الصحة", "الاقتصاد"}},
		{Topics: []string{"الصحة"}},
		{Topics: []string{"التعليم"}},
	}
	got := TopicInterests(segments)
	if len(got) != 3 {
		t.Fatalf("topics = %d, want 3", len(got))
	}
	if got[0].Topic != "الصحة" || got[0].Count != 2 {
		t.Errorf("top topic = %+v, want الصحة x2", got[0])
	}
}

func TestTopicProfile(t *testing.T) {
	entries := []Entry{
		{SummaryPoints: []string{"طالب بدعم مستشفى الجامعة", "سأل عن علاج المرضى"}},
		{SummaryPoints: []string{"ناقش موازنة العام"}},
	}
	got := TopicProfile(entries, DefaultTopicKeywords())
	if len(got) == 0 {
		t.Fatal("profile empty")
	}
	if got[0].Topic != "الصحة" {
		t.Errorf("top topic = %+v, want الصحة", got[0])
	}
	if got[0].Count < 2 {
		t.Errorf("top count = %d, want >= 2", got[0].Count)
	}
}
