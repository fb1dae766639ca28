// CLAUDE:SUMMARY Arabic text normalization strategies (search-grade and name-grade) for transcript matching.
package artext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer transforms a string before comparison or lookup.
type Normalizer func(string) string

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldSearch folds the letter variants that differ between transcription
// passes but never distinguish two names: hamza-bearing alef forms to bare
// alef, teh marbuta to heh, alef maksura to yeh.
var foldSearch = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ة", "ه",
	"ى", "ي",
)

// foldName additionally folds the remaining hamza carriers. Only used for
// person-name comparison, where spelling drift is worse than in running text.
var foldName = strings.NewReplacer(
	"ئ", "ي",
	"ؤ", "و",
	"ء", "",
)

// NormalizeSearch canonicalizes text for substring search: lowercase, fold
// common letter variants, strip everything outside Arabic letters, Latin
// letters, digits and whitespace, collapse whitespace runs.
// Pure and idempotent; empty input yields empty output.
func NormalizeSearch(s string) string {
	return collapse(stripForeign(foldSearch.Replace(strings.ToLower(s))))
}

// NormalizeName canonicalizes a person name for matching. On top of the
// search normalization it folds the remaining hamza variants and removes
// diacritical marks, so "حَويلة" and "حويله" compare equal.
func NormalizeName(s string) string {
	s = foldName.Replace(foldSearch.Replace(strings.ToLower(s)))
	s, _, _ = transform.String(stripMarks, s)
	return collapse(stripForeign(s))
}

// NormalizeNone returns the input unchanged.
func NormalizeNone(s string) string {
	return s
}

// GetNormalizer returns the normalizer for the given mode.
// Default is search.
func GetNormalizer(mode string) Normalizer {
	switch mode {
	case "search":
		return NormalizeSearch
	case "name":
		return NormalizeName
	case "none":
		return NormalizeNone
	default:
		return NormalizeSearch
	}
}

// stripForeign drops every rune outside the Arabic block, ASCII letters,
// digits and whitespace.
func stripForeign(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x0600 && r <= 0x06FF:
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collapse trims the string and squeezes internal whitespace runs to a
// single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
