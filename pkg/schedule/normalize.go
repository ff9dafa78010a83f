package schedule

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	spaceRun = regexp.MustCompile(`\s+`)
	slugRun  = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalize folds a name down to a comparison-stable form: trimmed, accents
// stripped, internal whitespace collapsed to single spaces, lowercased.
// PDF text extraction introduces double spaces, trailing spaces and
// inconsistent case, so every name comparison goes through this on both
// sides. Idempotent.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.ToLower(s)
}

// CleanSpaces trims and collapses internal whitespace without touching case
// or accents. The mapping lookup matches on this lighter form; Normalize is
// reserved for unmapped-name detection.
func CleanSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Slugify derives the grid display value from a standardized name
// ("Mãe Maria" -> "mae-maria"): ASCII transliteration, lowercase,
// non-alphanumeric runs collapsed to single hyphens.
func Slugify(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(unidecode.Unidecode(s))
	s = slugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
