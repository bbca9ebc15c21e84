package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-crmkit/pkg/options"
)

// CollectSet asks for labels until the user declines to add another one and
// returns the resulting option set. Each answer is validated before it is
// accepted, so invalid or duplicated labels are re-prompted by the driver.
func CollectSet(ctx context.Context, driver Driver, builder *options.Builder, field string) (options.Set, error) {
	if driver == nil {
		return options.Set{}, errors.New("prompt: missing driver")
	}
	if builder == nil {
		builder = options.NewBuilder()
	}

	set := options.Set{Field: field}
	for {
		label, err := driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Option %d label", set.Len()+1),
			Help:    "Free text; the stored value is derived from it.",
			Validator: func(answer string) error {
				_, err := builder.Add(set, answer)
				return err
			},
		})
		if err != nil {
			return set, err
		}

		next, err := builder.Add(set, label)
		if err != nil {
			if infoErr := driver.Info(ctx, err.Error()); infoErr != nil {
				return set, infoErr
			}
			continue
		}
		set = next

		added := set.Options[len(set.Options)-1]
		if err := driver.Info(ctx, fmt.Sprintf("  %s -> %s", added.Label, added.Value)); err != nil {
			return set, err
		}

		more, err := driver.Confirm(ctx, ConfirmConfig{Message: "Add another option?", Default: true})
		if err != nil {
			return set, err
		}
		if !more {
			return set, nil
		}
	}
}
