package options

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-crmkit/pkg/optionvalue"
)

// Validate checks that labels are present and unique, values are well formed
// and unique, and positions do not collide. It returns nil or a
// ValidationErrors listing every problem.
func (s Set) Validate() error {
	var errs ValidationErrors

	labels := make(map[string]int, len(s.Options))
	values := make(map[string]int, len(s.Options))
	positions := make(map[int]int, len(s.Options))

	for index, opt := range s.Options {
		label := strings.TrimSpace(opt.Label)
		if label == "" {
			errs = append(errs, Issue{Index: index, Field: "label", Message: "label is required", Err: ErrEmptyLabel})
		} else if first, ok := labels[strings.ToLower(label)]; ok {
			errs = append(errs, Issue{Index: index, Field: "label", Message: fmt.Sprintf("label duplicates option %d", first)})
		} else {
			labels[strings.ToLower(label)] = index
		}

		if !optionvalue.IsValid(opt.Value) {
			errs = append(errs, Issue{Index: index, Field: "value", Message: fmt.Sprintf("value %q must match %s and be uppercase", opt.Value, optionvalue.Pattern)})
		} else if first, ok := values[opt.Value]; ok {
			errs = append(errs, Issue{Index: index, Field: "value", Message: fmt.Sprintf("value duplicates option %d", first)})
		} else {
			values[opt.Value] = index
		}

		if first, ok := positions[opt.Position]; ok {
			errs = append(errs, Issue{Index: index, Field: "position", Message: fmt.Sprintf("position %d duplicates option %d", opt.Position, first)})
		} else {
			positions[opt.Position] = index
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
