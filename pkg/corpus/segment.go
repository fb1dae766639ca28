package corpus

// Segment is one flattened, searchable utterance with its session linkage.
// Derived from sessions at load time; read-only afterwards.
type Segment struct {
	ID           string   `json:"id"`
	SessionID    string   `json:"session_id"`
	SessionTitle string   `json:"session_title"`
	SessionDate  string   `json:"session_date"`
	SpeakerName  string   `json:"speaker_name"`
	SpeakerRole  string   `json:"speaker_role"`
	Text         string   `json:"text"`
	Topics       []string `json:"topics,omitempty"`
	StartSec     float64  `json:"start_sec,omitempty"`
	VideoID      string   `json:"video_id,omitempty"`
}

// FlattenSegments emits one segment per intervention, preserving session,
// chunk and intervention order. No sorting or deduplication happens here;
// that is the caller's concern.
func FlattenSegments(sessions []*Session) []Segment {
	var segments []Segment
	for _, s := range sessions {
		for _, chunk := range s.Chunks {
			for _, iv := range chunk.Interventions {
				id := iv.ID
				if id == "" {
					id = chunk.ChunkID
				}
				segments = append(segments, Segment{
					ID:           id,
					SessionID:    s.ID,
					SessionTitle: s.Title,
					SessionDate:  s.Date,
					SpeakerName:  iv.SpeakerNameRaw,
					SpeakerRole:  ClassifyRole(iv.SpeakerType),
					Text:         iv.Text,
					Topics:       iv.Topics,
					StartSec:     iv.StartSec,
					VideoID:      s.VideoID,
				})
			}
		}
	}
	return segments
}
