package alerts

import (
	"strings"

	"github.com/hazyhaar/barlaman-registry/pkg/artext"
	"github.com/hazyhaar/barlaman-registry/pkg/corpus"
)

// maxAlerts caps one generation run.
const maxAlerts = 20

// excerptLen caps the alert excerpt length, in runes.
const excerptLen = 150

// Alert is one mention of a subscribed value inside an intervention.
type Alert struct {
	ID                string `json:"id"`
	SubscriptionID    string `json:"subscription_id"`
	SubscriptionValue string `json:"subscription_value"`
	SessionID         string `json:"session_id"`
	SessionTitle      string `json:"session_title"`
	SessionDate       string `json:"session_date"`
	SpeakerName       string `json:"speaker_name"`
	TextExcerpt       string `json:"text_excerpt"`
	MatchType         string `json:"match_type"`
}

// Generate scans every intervention for every subscription value, using the
// search normalizer on both sides. Results are capped at maxAlerts, in
// subscription-then-corpus order.
func Generate(subs []Subscription, sessions []*corpus.Session) []Alert {
	var alerts []Alert
	for _, sub := range subs {
		normalizedValue := artext.NormalizeSearch(sub.Value)
		if normalizedValue == "" {
			continue
		}
		for _, session := range sessions {
			for _, chunk := range session.Chunks {
				for _, iv := range chunk.Interventions {
					if !strings.Contains(artext.NormalizeSearch(iv.Text), normalizedValue) {
						continue
					}
					speaker := iv.SpeakerNameRaw
					if speaker == "" {
						speaker = "غير معروف"
					}
					alerts = append(alerts, Alert{
						ID:                "alert_" + randomHex(6),
						SubscriptionID:    sub.ID,
						SubscriptionValue: sub.Value,
						SessionID:         session.ID,
						SessionTitle:      session.Title,
						SessionDate:       session.Date,
						SpeakerName:       speaker,
						TextExcerpt:       excerpt(iv.Text),
						MatchType:         sub.Type,
					})
					if len(alerts) >= maxAlerts {
						return alerts
					}
				}
			}
		}
	}
	return alerts
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLen {
		return text
	}
	return string(runes[:excerptLen])
}
