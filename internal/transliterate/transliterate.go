// Package transliterate maps free text onto a restricted ASCII identifier
// alphabet.
package transliterate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSeparator joins words that were split by unsupported characters.
const DefaultSeparator = "_"

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Letters without a canonical decomposition are substituted before marks are
// stripped.
var substitutions = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ı", "i", "ħ", "h", "Ħ", "H",
)

// ToASCII strips diacritics and substitutes common ligatures. Characters with
// no ASCII equivalent are kept as-is so Slugify can decide what to do with
// them.
func ToASCII(input string) string {
	if input == "" {
		return ""
	}
	input = substitutions.Replace(input)
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(chain, input)
	if err != nil {
		return input
	}
	return out
}

// Slugify transliterates input and collapses every run of characters outside
// [A-Za-z0-9] into sep, trimming sep from both ends. Case is preserved.
func Slugify(input, sep string) string {
	ascii := ToASCII(input)
	slug := nonAlphanumeric.ReplaceAllString(ascii, sep)
	if sep == "" {
		return slug
	}
	return strings.Trim(slug, sep)
}

// FormatOrError returns input unchanged when it already matches pattern,
// otherwise its slug. The slug must match pattern or an error is returned.
func FormatOrError(input string, pattern *regexp.Regexp) (string, error) {
	if pattern == nil {
		return "", fmt.Errorf("transliterate: missing pattern")
	}
	if pattern.MatchString(input) {
		return input, nil
	}
	candidate := Slugify(input, DefaultSeparator)
	if !pattern.MatchString(candidate) {
		return candidate, fmt.Errorf("transliterate: %q does not match %s", candidate, pattern.String())
	}
	return candidate, nil
}
