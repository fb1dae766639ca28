// CLAUDE:SUMMARY Fuzzy speaker-name matcher: tokenization, weighted scoring, and resolution against the roster.
package roster

import (
	"regexp"
	"strings"

	"github.com/hazyhaar/barlaman-registry/pkg/artext"
)

// annotationRe matches parenthesized, bracketed and quoted substrings in a
// transcribed name. These hold clarifying notes ("مقرر اللجنة", "ورد في النص
// باسم ..."), never part of the name itself.
var annotationRe = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]|"[^"]*"`)

// Matcher resolves raw transcribed speaker names against the roster.
// It is pure: resolution is a repeatable function of the name, the roster and
// the configured lists. Safe for concurrent use.
type Matcher struct {
	weights   Weights
	honorific map[string]bool
	govTitles []string // name-normalized
}

// NewMatcher builds a matcher from a config. The honorific and government
// title lists are normalized once here, so resolution only ever compares
// canonical forms.
func NewMatcher(cfg MatcherConfig) *Matcher {
	m := &Matcher{
		weights:   cfg.Weights,
		honorific: make(map[string]bool, len(cfg.Honorifics)),
	}
	for _, h := range cfg.Honorifics {
		if n := artext.NormalizeName(h); n != "" {
			m.honorific[n] = true
		}
	}
	for _, t := range cfg.GovernmentTitles {
		if n := artext.NormalizeName(t); n != "" {
			m.govTitles = append(m.govTitles, n)
		}
	}
	return m
}

// Tokenize splits a display name into comparable tokens: annotations removed,
// name-normalized, whitespace-split, single-letter tokens and honorifics
// dropped. An empty result means the name is unresolvable.
func (m *Matcher) Tokenize(name string) []string {
	cleaned := annotationRe.ReplaceAllString(name, "")
	normalized := artext.NormalizeName(cleaned)
	if normalized == "" {
		return nil
	}
	var tokens []string
	for _, tok := range strings.Fields(normalized) {
		if len([]rune(tok)) <= 1 {
			continue
		}
		if m.honorific[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// partialMatch reports whether two normalized tokens are close enough to be
// the same name part: equal, one contains the other, or they share a prefix
// of at least 3 letters covering the shorter token.
func partialMatch(a, b string) bool {
	if a == b {
		return true
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) < 3 || len(rb) < 3 {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	minLen := len(ra)
	if len(rb) < minLen {
		minLen = len(rb)
	}
	return string(ra[:minLen]) == string(rb[:minLen])
}

// Score computes the weighted similarity of a speaker's tokens against a
// roster entry's tokens. Not symmetric: the speaker's first and last tokens
// (given and family name) weigh more than middle tokens.
func (m *Matcher) Score(speakerTokens, rosterTokens []string) float64 {
	rosterSet := make(map[string]bool, len(rosterTokens))
	for _, t := range rosterTokens {
		rosterSet[t] = true
	}

	var score float64
	last := len(speakerTokens) - 1
	for i, tok := range speakerTokens {
		if rosterSet[tok] {
			if i == 0 || i == last {
				score += m.weights.ExactAnchor
			} else {
				score += m.weights.ExactMiddle
			}
			continue
		}
		for _, rt := range rosterTokens {
			if partialMatch(tok, rt) {
				if i == 0 || i == last {
					score += m.weights.PartialAnchor
				} else {
					score += m.weights.PartialMiddle
				}
				break
			}
		}
	}
	return score
}

// anchorBonus is the extra weight awarded when both the given name and the
// family name anchor on the roster entry. Single-token speakers have no
// family name and never receive it.
func (m *Matcher) anchorBonus(speakerTokens, rosterTokens []string) float64 {
	if len(speakerTokens) < 2 {
		return 0
	}
	first, last := speakerTokens[0], speakerTokens[len(speakerTokens)-1]
	if anyPartial(first, rosterTokens) && anyPartial(last, rosterTokens) {
		return m.weights.AnchorBonus
	}
	return 0
}

func anyPartial(tok string, candidates []string) bool {
	for _, c := range candidates {
		if partialMatch(tok, c) {
			return true
		}
	}
	return false
}

// TotalScore is the full score of a speaker against a roster name, anchor
// bonus included. Exposed for segment filtering, which applies the same
// arithmetic as Resolve without picking a single best entry.
func (m *Matcher) TotalScore(speakerTokens, rosterTokens []string) float64 {
	return m.Score(speakerTokens, rosterTokens) + m.anchorBonus(speakerTokens, rosterTokens)
}

// minScore returns the acceptance threshold for a tokenized speaker name.
func (m *Matcher) minScore(speakerTokens []string) float64 {
	if len(speakerTokens) >= 2 {
		return m.weights.MinScoreMulti
	}
	return m.weights.MinScoreSingle
}

// Resolve maps a raw speaker name to the best-matching roster entry, or nil.
//
// Government officials are excluded up front: if the normalized name contains
// any configured government title, the speaker is deliberately never mapped
// to a legislator, even when the personal name coincides with a roster entry.
//
// Per entry, a bidirectional containment match against a declared alias
// returns that entry immediately, bypassing scoring. Otherwise the highest
// total score at or above the threshold wins. When two entries tie, the first
// one in roster order wins; roster files are stably ordered, so the outcome
// is reproducible, but the tie-break is iteration order, not a designed rule.
func (m *Matcher) Resolve(speakerName string, entries []*Entry) *Entry {
	if speakerName == "" || len(entries) == 0 {
		return nil
	}

	normalizedSpeaker := artext.NormalizeName(speakerName)
	for _, title := range m.govTitles {
		if strings.Contains(normalizedSpeaker, title) {
			return nil
		}
	}

	speakerTokens := m.Tokenize(speakerName)
	if len(speakerTokens) == 0 {
		return nil
	}

	cleanSpeaker := artext.NormalizeName(annotationRe.ReplaceAllString(speakerName, ""))
	threshold := m.minScore(speakerTokens)

	var best *Entry
	var bestScore float64
	for _, e := range entries {
		for _, alias := range e.Aliases {
			normalizedAlias := artext.NormalizeName(alias)
			if normalizedAlias == "" {
				continue
			}
			if strings.Contains(cleanSpeaker, normalizedAlias) || strings.Contains(normalizedAlias, cleanSpeaker) {
				return e
			}
		}

		rosterTokens := m.Tokenize(e.FullName)
		if len(rosterTokens) == 0 {
			continue
		}

		total := m.TotalScore(speakerTokens, rosterTokens)
		if total > bestScore && total >= threshold {
			bestScore = total
			best = e
		}
	}
	return best
}

// MatchesName reports whether a raw speaker name attributes to the given
// roster display name at the multi-token threshold. Used to collect a
// legislator's segments across sessions.
func (m *Matcher) MatchesName(speakerName string, rosterTokens []string) bool {
	speakerTokens := m.Tokenize(speakerName)
	if len(speakerTokens) == 0 || len(rosterTokens) == 0 {
		return false
	}
	return m.TotalScore(speakerTokens, rosterTokens) >= m.weights.MinScoreMulti
}
