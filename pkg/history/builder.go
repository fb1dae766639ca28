// CLAUDE:SUMMARY Per-MP intervention history: segment attribution grouped by session, curated summary recovery, topic profiling.
package history

import (
	"sort"
	"time"

	"github.com/hazyhaar/barlaman-registry/pkg/corpus"
	"github.com/hazyhaar/barlaman-registry/pkg/roster"
)

// Entry is one session in a legislator's intervention timeline.
type Entry struct {
	SessionID      string   `json:"session_id"`
	SessionTitle   string   `json:"session_title"`
	SessionDate    string   `json:"session_date"`
	Term           string   `json:"term"`
	OrdinaryTerm   int      `json:"ordinary_term,omitempty"`
	Count          int      `json:"count"`
	FirstSegmentID string   `json:"first_segment_id,omitempty"`
	SummaryPoints  []string `json:"summary_points,omitempty"`
	StartSec       float64  `json:"start_sec,omitempty"`
}

// Builder derives intervention timelines by reusing the roster matcher
// against both transcribed speaker names and curated summary attributions.
type Builder struct {
	matcher *roster.Matcher
}

// NewBuilder creates a builder sharing the given matcher.
func NewBuilder(m *roster.Matcher) *Builder {
	return &Builder{matcher: m}
}

// SegmentsFor collects the segments attributable to one roster entry, in
// corpus order, using the same scoring as name resolution.
func (b *Builder) SegmentsFor(e *roster.Entry, segments []corpus.Segment) []corpus.Segment {
	nameTokens := b.matcher.Tokenize(e.FullName)
	if len(nameTokens) == 0 {
		return nil
	}
	var matched []corpus.Segment
	for _, seg := range segments {
		if seg.SpeakerName == "" {
			continue
		}
		if b.matcher.MatchesName(seg.SpeakerName, nameTokens) {
			matched = append(matched, seg)
		}
	}
	return matched
}

// Build groups a legislator's matched segments by session, most recent
// session first. Sessions whose curated brief summary attributes points to
// the legislator are included even when no segment matched structurally:
// curated commentary counts as much as raw transcript hits.
func (b *Builder) Build(matched []corpus.Segment, sessions []*corpus.Session, mpName string) []Entry {
	bySession := make(map[string]*Entry)
	var order []string

	for _, seg := range matched {
		e, ok := bySession[seg.SessionID]
		if !ok {
			session, found := findSession(sessions, seg.SessionID)
			if !found {
				continue
			}
			e = &Entry{
				SessionID:      session.ID,
				SessionTitle:   session.Title,
				SessionDate:    session.Date,
				Term:           session.Term,
				OrdinaryTerm:   session.OrdinaryTerm,
				FirstSegmentID: seg.ID,
				SummaryPoints:  b.summaryPoints(session, mpName),
				StartSec:       seg.StartSec,
			}
			bySession[seg.SessionID] = e
			order = append(order, seg.SessionID)
		}
		e.Count++
	}

	// Second pass: curated summaries attributed to the legislator in
	// sessions with no structural hits.
	if mpName != "" {
		for _, session := range sessions {
			if _, ok := bySession[session.ID]; ok {
				continue
			}
			points := b.summaryPoints(session, mpName)
			if len(points) == 0 {
				continue
			}
			bySession[session.ID] = &Entry{
				SessionID:     session.ID,
				SessionTitle:  session.Title,
				SessionDate:   session.Date,
				Term:          session.Term,
				OrdinaryTerm:  session.OrdinaryTerm,
				Count:         len(points),
				SummaryPoints: points,
			}
			order = append(order, session.ID)
		}
	}

	entries := make([]Entry, 0, len(order))
	for _, id := range order {
		entries = append(entries, *bySession[id])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return parseDate(entries[i].SessionDate).After(parseDate(entries[j].SessionDate))
	})
	return entries
}

// summaryPoints resolves the legislator's display name against the session's
// curated per-MP summaries, treating the summary names as a roster.
func (b *Builder) summaryPoints(session *corpus.Session, mpName string) []string {
	if mpName == "" || session.BriefSummary == nil || len(session.BriefSummary.MPInterventions) == 0 {
		return nil
	}
	pseudo := make([]*roster.Entry, len(session.BriefSummary.MPInterventions))
	for i, mi := range session.BriefSummary.MPInterventions {
		pseudo[i] = &roster.Entry{ID: mi.MPName, FullName: mi.MPName}
	}
	match := b.matcher.Resolve(mpName, pseudo)
	if match == nil {
		return nil
	}
	for _, mi := range session.BriefSummary.MPInterventions {
		if mi.MPName == match.ID {
			return mi.Points
		}
	}
	return nil
}

func findSession(sessions []*corpus.Session, id string) (*corpus.Session, bool) {
	for _, s := range sessions {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

func parseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
