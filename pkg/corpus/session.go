// CLAUDE:SUMMARY Parliamentary session model with legacy flat-segment reshaping at the decode boundary.
package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Speaker role classifications derived from the transcribed role label.
const (
	RoleMP         = "mp"
	RoleChair      = "chair"
	RoleGovernment = "government"
	RoleUnknown    = "unknown"
)

// Session is one parliamentary sitting. Sessions always carry chunked
// interventions after decoding: files in the legacy flat-segment shape are
// reshaped into a single synthetic chunk, so downstream code sees one
// canonical form.
type Session struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Date         string        `json:"date"`
	Term         string        `json:"term"`
	OrdinaryTerm int           `json:"ordinaryTerm,omitempty"`
	VideoID      string        `json:"video_id,omitempty"`
	Chunks       []Chunk       `json:"chunks"`
	BriefSummary *BriefSummary `json:"brief_summary,omitempty"`
}

// Chunk groups consecutive interventions of one session.
type Chunk struct {
	ChunkID       string         `json:"chunk_id"`
	Label         string         `json:"label,omitempty"`
	Interventions []Intervention `json:"interventions"`
}

// Intervention is one attributable utterance. The raw speaker name is kept
// exactly as transcribed; resolution against the roster is always derived,
// never stored back.
type Intervention struct {
	ID             string   `json:"id"`
	SpeakerType    string   `json:"speakerType"`
	SpeakerNameRaw string   `json:"speakerNameRaw"`
	StartSec       float64  `json:"start_sec,omitempty"`
	Text           string   `json:"intervention_text"`
	Topics         []string `json:"topics,omitempty"`
}

// BriefSummary holds the curated per-session editorial summary.
type BriefSummary struct {
	MPInterventions []MPIntervention `json:"mp_interventions,omitempty"`
}

// MPIntervention is a curated list of summary points attributed to one
// legislator by display name.
type MPIntervention struct {
	MPName string   `json:"mp_name"`
	Points []string `json:"points"`
}

// rawSession accepts both the chunked shape and the legacy flat shape.
type rawSession struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Date         string        `json:"date"`
	Term         string        `json:"term"`
	OrdinaryTerm int           `json:"ordinaryTerm"`
	YouTube      *rawYouTube   `json:"youtube"`
	VideoID      string        `json:"youtubeVideoId"`
	Chunks       []Chunk       `json:"chunks"`
	Segments     []rawSegment  `json:"segments"`
	BriefSummary *BriefSummary `json:"brief_summary"`
}

type rawYouTube struct {
	VideoID string `json:"video_id"`
}

// rawSegment is the legacy flat intervention shape.
type rawSegment struct {
	ID             string   `json:"id"`
	SegmentID      string   `json:"segmentId"`
	SpeakerName    string   `json:"speakerName"`
	SpeakerRole    string   `json:"speakerRole"`
	VideoTimestamp float64  `json:"videoTimestamp"`
	TextExcerpt    string   `json:"textExcerpt"`
	Text           string   `json:"text"`
	Topics         []string `json:"topics"`
}

// DecodeSessions reads a sessions file and canonicalizes every session.
func DecodeSessions(r io.Reader) ([]*Session, error) {
	var raw []rawSession
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode sessions: %w", err)
	}

	sessions := make([]*Session, 0, len(raw))
	for _, rs := range raw {
		s := &Session{
			ID:           rs.ID,
			Title:        rs.Title,
			Date:         rs.Date,
			Term:         rs.Term,
			OrdinaryTerm: rs.OrdinaryTerm,
			VideoID:      rs.VideoID,
			Chunks:       rs.Chunks,
			BriefSummary: rs.BriefSummary,
		}
		if s.Term == "" {
			s.Term = "الدورة العادية"
		}
		if rs.YouTube != nil && rs.YouTube.VideoID != "" {
			s.VideoID = rs.YouTube.VideoID
		}
		if len(s.Chunks) == 0 && len(rs.Segments) > 0 {
			s.Chunks = []Chunk{reshapeLegacy(rs.Segments)}
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// LoadSessions reads sessions from a JSON file.
func LoadSessions(path string) ([]*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sessions %s: %w", path, err)
	}
	defer f.Close()
	return DecodeSessions(f)
}

// reshapeLegacy converts a legacy flat segment list into one synthetic chunk.
func reshapeLegacy(segments []rawSegment) Chunk {
	chunk := Chunk{
		ChunkID:       "full",
		Label:         "مداخلات الجلسة",
		Interventions: make([]Intervention, 0, len(segments)),
	}
	for _, seg := range segments {
		id := seg.ID
		if id == "" {
			id = seg.SegmentID
		}
		text := seg.TextExcerpt
		if text == "" {
			text = seg.Text
		}
		chunk.Interventions = append(chunk.Interventions, Intervention{
			ID:             id,
			SpeakerType:    ClassifyRole(seg.SpeakerRole),
			SpeakerNameRaw: seg.SpeakerName,
			StartSec:       seg.VideoTimestamp,
			Text:           text,
			Topics:         seg.Topics,
		})
	}
	return chunk
}

// ClassifyRole maps a transcribed role label onto one of the four speaker
// roles by keyword. The chair check runs before the government check so that
// "رئيس المجلس" classifies as presiding officer, not as an official.
func ClassifyRole(label string) string {
	switch {
	case label == "":
		return RoleUnknown
	case label == RoleMP, label == RoleChair, label == RoleGovernment, label == RoleUnknown:
		return label
	case strings.Contains(label, "نائب"):
		return RoleMP
	case strings.Contains(label, "رئيس المجلس"), strings.Contains(label, "رئيس الجلسة"):
		return RoleChair
	case strings.Contains(label, "وزير"), strings.Contains(label, "حكوم"), strings.Contains(label, "رئيس الوزراء"):
		return RoleGovernment
	case strings.Contains(label, "رئيس"):
		return RoleChair
	default:
		return RoleUnknown
	}
}
