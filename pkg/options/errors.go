package options

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-crmkit/pkg/optionvalue"
)

// ErrEmptyLabel is returned for labels that are blank after sanitizing.
var ErrEmptyLabel = errors.New("options: label is required")

// DuplicateValueError reports a label whose value collides with an existing
// option.
type DuplicateValueError struct {
	Label    string
	Value    string
	Existing string
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("options: label %q produces value %q already used by %q", e.Label, e.Value, e.Existing)
}

// Issue is a single problem found in a Set.
type Issue struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// ValidationErrors aggregates every Issue found while building or validating
// a Set.
type ValidationErrors []Issue

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "options: no validation errors"
	}
	parts := make([]string, 0, len(e))
	for _, issue := range e {
		parts = append(parts, fmt.Sprintf("[%d].%s: %s", issue.Index, issue.Field, issue.Message))
	}
	return "options: " + strings.Join(parts, "; ")
}

// Unwrap exposes the underlying errors to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	out := make([]error, 0, len(e))
	for _, issue := range e {
		if issue.Err != nil {
			out = append(out, issue.Err)
		}
	}
	return out
}

// ByIndex groups messages by option index.
func (e ValidationErrors) ByIndex() map[int][]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[int][]string, len(e))
	for _, issue := range e {
		out[issue.Index] = append(out[issue.Index], issue.Message)
	}
	return out
}

func issueFromError(index int, err error) ValidationErrors {
	var invalid *optionvalue.InvalidLabelError
	var dup *DuplicateValueError
	switch {
	case errors.Is(err, ErrEmptyLabel):
		return ValidationErrors{{Index: index, Field: "label", Message: "label is required", Err: err}}
	case errors.As(err, &invalid):
		return ValidationErrors{{Index: index, Field: "label", Message: fmt.Sprintf("%q cannot be converted to an option value", invalid.Label), Err: err}}
	case errors.As(err, &dup):
		return ValidationErrors{{Index: index, Field: "value", Message: fmt.Sprintf("value %q is already used by %q", dup.Value, dup.Existing), Err: err}}
	default:
		return ValidationErrors{{Index: index, Field: "label", Message: err.Error(), Err: err}}
	}
}
