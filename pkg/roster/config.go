// CLAUDE:SUMMARY Matcher configuration: honorifics, government-title exclusions, and scoring weights, yaml-overridable.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights are the scoring constants of the fuzzy name matcher. The defaults
// are empirically tuned against the transcript corpus; changing them changes
// which speeches attach to which legislator, so deployments overriding them
// should re-audit the attachments.
type Weights struct {
	ExactAnchor   float64 `yaml:"exact_anchor"`   // exact token match on first/last name
	ExactMiddle   float64 `yaml:"exact_middle"`   // exact token match elsewhere
	PartialAnchor float64 `yaml:"partial_anchor"` // partial token match on first/last name
	PartialMiddle float64 `yaml:"partial_middle"` // partial token match elsewhere
	AnchorBonus   float64 `yaml:"anchor_bonus"`   // first and last name both matched

	// Minimum accepted total score. MinScoreSingle applies when the speaker
	// name tokenized to a single token, MinScoreMulti otherwise.
	MinScoreMulti  float64 `yaml:"min_score_multi"`
	MinScoreSingle float64 `yaml:"min_score_single"`
}

// MatcherConfig carries the locale-specific knowledge of the matcher as plain
// data: which words are honorifics to strip, and which phrases mark a
// government official who must never resolve to a legislator profile.
type MatcherConfig struct {
	Honorifics       []string `yaml:"honorifics"`
	GovernmentTitles []string `yaml:"government_titles"`
	Weights          Weights  `yaml:"weights"`
}

// DefaultMatcherConfig returns the built-in lists and weights used by the
// public deployment.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		Honorifics: []string{
			"النائب", "الدكتور", "المهندس", "المحامي", "السيد", "السيدة",
			"معالي", "عطوفة", "سعادة", "الوزير", "دولة", "فضيلة", "سماحة",
			"d.", "dr.", "م.",
		},
		GovernmentTitles: []string{
			"رئيس الوزراء", "رئيس مجلس الوزراء",
			"وزير الداخلية", "وزير المالية", "وزير الخارجية", "وزير الدفاع", "وزير العدل",
			"وزير التربية", "وزير الصحة", "وزير الزراعة", "وزير العمل", "وزير الأشغال",
			"وزير الاتصالات", "وزير السياحة", "وزير الثقافة", "وزير البيئة", "وزير الطاقة",
			"وزير التخطيط", "وزير النقل", "وزير الصناعة", "وزير التجارة", "وزير الاقتصاد",
			"وزير الشؤون", "وزير الأوقاف", "وزير التنمية", "وزير الإدارة", "وزير دولة",
			"أمين عام", "الأمين العام", "مدير عام", "المدير العام",
			"رئيس المجلس", "رئيس مجلس النواب", "رئيس مجلس الأعيان",
			"نائب رئيس الوزراء", "نائب الرئيس",
		},
		Weights: Weights{
			ExactAnchor:    2,
			ExactMiddle:    1,
			PartialAnchor:  1.5,
			PartialMiddle:  0.5,
			AnchorBonus:    1,
			MinScoreMulti:  3,
			MinScoreSingle: 2,
		},
	}
}

// LoadMatcherConfig reads a yaml overlay on top of the defaults. Missing file
// means defaults; lists in the file replace the default lists wholesale.
func LoadMatcherConfig(path string) (MatcherConfig, error) {
	cfg := DefaultMatcherConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read matcher config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse matcher config %s: %w", path, err)
	}
	return cfg, nil
}
