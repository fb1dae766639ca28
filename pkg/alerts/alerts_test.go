package alerts

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/hazyhaar/barlaman-registry/pkg/corpus"
)

func openTestDB(t *testing.T) *SubscriptionDB {
	t.Helper()
	db, err := OpenSubscriptionDB(filepath.Join(t.TempDir(), "subs.db"))
	if err != nil {
		t.Fatalf("OpenSubscriptionDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSubscriptionAddListRemove(t *testing.T) {
	db := openTestDB(t)

	sub, err := db.Add(TypeKeyword, "الموازنة", "a@example.org")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sub.ID == "" {
		t.Fatal("Add returned empty id")
	}

	if _, err := db.Add(TypeSpeaker, "خميس عطية", "a@example.org"); err != nil {
		t.Fatalf("Add second: %v", err)
	}

	subs, err := db.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("subscriptions = %d, want 2", len(subs))
	}

	if err := db.Remove(sub.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	subs, _ = db.List()
	if len(subs) != 1 {
		t.Errorf("subscriptions after remove = %d, want 1", len(subs))
	}

	if err := db.Remove("sub_nope"); err == nil {
		t.Error("Remove unknown id: expected error")
	}
}

func TestSubscriptionDuplicateIgnored(t *testing.T) {
	db := openTestDB(t)

	first, err := db.Add(TypeKeyword, "الموازنة", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := db.Add(TypeKeyword, "الموازنة", "")
	if err != nil {
		t.Fatalf("Add duplicate: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("duplicate id = %q, want existing %q", second.ID, first.ID)
	}

	subs, _ := db.List()
	if len(subs) != 1 {
		t.Errorf("subscriptions = %d, want 1", len(subs))
	}
}

func alertSessions() []*corpus.Session {
	return []*corpus.Session{{
		ID: "s1", Title: "الجلسة الأولى", Date: "2025-01-01",
		Chunks: []corpus.Chunk{{
			ChunkID: "c1",
			Interventions: []corpus.Intervention{
				{ID: "i1", SpeakerNameRaw: "النائب خميس عطية", Text: "الحديث عن عجز الموازنة"},
				{ID: "i2", SpeakerNameRaw: "", Text: "نقطة نظام حول الموازنة"},
				{ID: "i3", SpeakerNameRaw: "رئيس المجلس", Text: "البند التالي"},
			},
		}},
	}}
}

func TestGenerate(t *testing.T) {
	subs := []Subscription{{ID: "sub_1", Type: TypeKeyword, Value: "الموازنة"}}

	alerts := Generate(subs, alertSessions())
	if len(alerts) != 2 {
		t.Fatalf("alerts = %d, want 2", len(alerts))
	}
	if alerts[0].SubscriptionID != "sub_1" || alerts[0].SpeakerName != "النائب خميس عطية" {
		t.Errorf("first alert = %+v", alerts[0])
	}
	if alerts[1].SpeakerName != "غير معروف" {
		t.Errorf("anonymous speaker = %q, want fallback label", alerts[1].SpeakerName)
	}
	if alerts[0].MatchType != TypeKeyword {
		t.Errorf("match type = %q, want keyword", alerts[0].MatchType)
	}
}

func TestGenerateCap(t *testing.T) {
	// One session with more matching interventions than the cap.
	ivs := make([]corpus.Intervention, 30)
	for i := range ivs {
		ivs[i] = corpus.Intervention{ID: "x", SpeakerNameRaw: "متحدث", Text: "ذكر الموازنة مجددا"}
	}
	sessions := []*corpus.Session{{
		ID: "s1", Title: "جلسة", Date: "2025-01-01",
		Chunks: []corpus.Chunk{{ChunkID: "c1", Interventions: ivs}},
	}}
	subs := []Subscription{{ID: "sub_1", Type: TypeKeyword, Value: "الموازنة"}}

	alerts := Generate(subs, sessions)
	if len(alerts) != maxAlerts {
		t.Errorf("alerts = %d, want cap %d", len(alerts), maxAlerts)
	}
}

func TestExcerptCaps(t *testing.T) {
	long := strings.Repeat("كلمة ", 60)
	got := excerpt(long)
	if len([]rune(got)) != excerptLen {
		t.Errorf("excerpt length = %d, want %d", len([]rune(got)), excerptLen)
	}
	if excerpt("قصير") != "قصير" {
		t.Error("short text must pass through unchanged")
	}
}
