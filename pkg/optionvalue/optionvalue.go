package optionvalue

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-crmkit/internal/transliterate"
)

const (
	// Pattern is the allowed shape of an option value before uppercasing.
	Pattern = `^[_A-Za-z][_0-9A-Za-z]{0,62}$`
	// DigitPrefix is prepended to labels that start with a decimal digit.
	DigitPrefix = "OPT"
)

// PatternRegexp is the compiled form of Pattern.
var PatternRegexp = regexp.MustCompile(Pattern)

// ErrInvalidLabel is matched by every *InvalidLabelError.
var ErrInvalidLabel = errors.New("optionvalue: invalid label")

// InvalidLabelError reports a label whose transliterated candidate does not
// match Pattern.
type InvalidLabelError struct {
	Label     string
	Candidate string
}

func (e *InvalidLabelError) Error() string {
	if e.Candidate == "" {
		return fmt.Sprintf("optionvalue: %q is not a valid label", e.Label)
	}
	return fmt.Sprintf("optionvalue: %q is not a valid label (candidate %q does not match %s)", e.Label, e.Candidate, Pattern)
}

// Is reports ErrInvalidLabel as a match.
func (e *InvalidLabelError) Is(target error) bool {
	return target == ErrInvalidLabel
}

// ComputeFromLabel converts label into an option value.
func ComputeFromLabel(label string) (string, error) {
	prefixed := label
	if startsWithDigit(label) {
		prefixed = DigitPrefix + label
	}

	candidate, err := transliterate.FormatOrError(prefixed, PatternRegexp)
	if err != nil {
		return "", &InvalidLabelError{Label: label, Candidate: candidate}
	}
	return strings.ToUpper(candidate), nil
}

// MustComputeFromLabel panics when label is invalid. Useful for fixtures.
func MustComputeFromLabel(label string) string {
	value, err := ComputeFromLabel(label)
	if err != nil {
		panic(err)
	}
	return value
}

// IsValid reports whether value is a well-formed option value.
func IsValid(value string) bool {
	return PatternRegexp.MatchString(value) && value == strings.ToUpper(value)
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
