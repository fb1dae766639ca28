package history

import (
	"sort"
	"strings"

	"github.com/hazyhaar/barlaman-registry/pkg/corpus"
)

// TopicCount pairs a topic with how often it occurred.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// profileSize caps topic profiles at the most frequent entries, matching the
// dashboard's radar chart.
const profileSize = 6

// TopicInterests counts the topic tags across a legislator's segments,
// most frequent first. Ties keep first-seen order.
func TopicInterests(segments []corpus.Segment) []TopicCount {
	counts := make(map[string]int)
	var order []string
	for _, seg := range segments {
		for _, topic := range seg.Topics {
			if counts[topic] == 0 {
				order = append(order, topic)
			}
			counts[topic]++
		}
	}
	result := make([]TopicCount, 0, len(order))
	for _, topic := range order {
		result = append(result, TopicCount{Topic: topic, Count: counts[topic]})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Count > result[j].Count })
	return result
}

// TopicProfile scans a timeline's curated summary points for the configured
// topic keywords and returns the top topics by hit count. Keyword lists are
// injectable; DefaultTopicKeywords covers the public deployment.
func TopicProfile(entries []Entry, keywords map[string][]string) []TopicCount {
	counts := make(map[string]int)
	for _, e := range entries {
		for _, point := range e.SummaryPoints {
			lowered := strings.ToLower(point)
			for topic, words := range keywords {
				for _, w := range words {
					if strings.Contains(lowered, w) {
						counts[topic]++
					}
				}
			}
		}
	}

	result := make([]TopicCount, 0, len(counts))
	for topic, count := range counts {
		result = append(result, TopicCount{Topic: topic, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Topic < result[j].Topic
	})
	if len(result) > profileSize {
		result = result[:profileSize]
	}
	return result
}

// DefaultTopicKeywords maps headline topics to the keywords that mark them in
// summary text.
func DefaultTopicKeywords() map[string][]string {
	return map[string][]string{
		"فلسطين وغزة":    {"غزة", "فلسطين", "القدس", "الاحتلال", "المقاومة", "التهجير", "الضفة"},
		"الصحة":          {"الصحة", "صحي", "مستشفى", "طبي", "علاج", "تأمين صحي", "مرضى"},
		"التعليم":        {"التعليم", "مدارس", "جامعة", "طلاب", "مناهج", "توجيهي", "تعليمي"},
		"الاقتصاد":       {"اقتصاد", "مديونية", "ضرائب", "جباية", "موازنة", "استثمار", "البنوك"},
		"البطالة":        {"بطالة", "توظيف", "متعطلين", "فرص عمل"},
		"المياه والطاقة": {"مياه", "ناقل", "كهرباء", "طاقة", "غاز"},
		"التنمية المحلية": {"محافظة", "تنموية", "بلدية", "خدمات", "بنية تحتية", "طرق"},
		"الحريات":        {"حريات", "جرائم إلكترونية", "معتقلين", "رأي", "صحافة"},
		"القوات المسلحة": {"جيش", "عسكري", "متقاعدين", "أمن", "دفاع"},
		"الزراعة":        {"زراعة", "مزارعين", "محاصيل", "بادية"},
		"السياحة":        {"سياحة", "سياحي", "أثري", "البترا", "جرش"},
		"المرأة والأسرة": {"المرأة", "أسرة", "طلاق", "زواج", "أطفال"},
	}
}
