package options

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-crmkit/pkg/optionvalue"
)

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used to trace option creation.
func WithLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithPalette overrides the colors cycled through for new options.
func WithPalette(palette []Color) BuilderOption {
	return func(b *Builder) {
		if len(palette) > 0 {
			b.palette = append([]Color(nil), palette...)
		}
	}
}

// WithIDGenerator overrides the option id generator (UUIDv4 by default).
func WithIDGenerator(fn func() string) BuilderOption {
	return func(b *Builder) {
		if fn != nil {
			b.newID = fn
		}
	}
}

// Builder creates option sets from labels.
type Builder struct {
	logger  *zap.Logger
	palette []Color
	newID   func() string
}

// NewBuilder returns a Builder with defaults applied.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		logger:  zap.NewNop(),
		palette: append([]Color(nil), DefaultPalette...),
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// FromLabels builds a Set for field from labels, in order. Every invalid or
// duplicated label is reported in the returned ValidationErrors.
func (b *Builder) FromLabels(field string, labels []string) (Set, error) {
	set := Set{Field: field, Options: make([]Option, 0, len(labels))}
	var errs ValidationErrors

	for index, raw := range labels {
		next, err := b.Add(set, raw)
		if err != nil {
			errs = append(errs, issueFromError(index, err)...)
			continue
		}
		set = next
	}

	if len(errs) > 0 {
		return Set{}, errs
	}
	return set, nil
}

// Add returns a copy of set with a new option for label appended.
func (b *Builder) Add(set Set, label string) (Set, error) {
	opt, err := b.NewOption(label)
	if err != nil {
		return set, err
	}
	if existing, ok := set.ByValue(opt.Value); ok {
		return set, &DuplicateValueError{Label: opt.Label, Value: opt.Value, Existing: existing.Label}
	}

	opt.Position = set.nextPosition()
	opt.Color = b.palette[len(set.Options)%len(b.palette)]

	out := Set{Field: set.Field, Options: make([]Option, 0, len(set.Options)+1)}
	out.Options = append(out.Options, set.Options...)
	out.Options = append(out.Options, opt)

	b.logger.Debug("option added",
		zap.String("field", set.Field),
		zap.String("label", opt.Label),
		zap.String("value", opt.Value),
		zap.Int("position", opt.Position),
	)
	return out, nil
}

// NewOption sanitizes label and derives its value. Position and color are left
// for the caller.
func (b *Builder) NewOption(label string) (Option, error) {
	clean := SanitizeLabel(label)
	if clean == "" {
		return Option{}, ErrEmptyLabel
	}
	value, err := optionvalue.ComputeFromLabel(clean)
	if err != nil {
		b.logger.Debug("option label rejected", zap.String("label", clean), zap.Error(err))
		return Option{}, err
	}
	return Option{ID: b.newID(), Label: clean, Value: value}, nil
}

// Relabel changes the label of the option with value, keeping its value
// stable.
func (b *Builder) Relabel(set Set, value, label string) (Set, error) {
	clean := SanitizeLabel(label)
	if clean == "" {
		return set, ErrEmptyLabel
	}
	out := Set{Field: set.Field, Options: append([]Option(nil), set.Options...)}
	for i := range out.Options {
		if out.Options[i].Value == value {
			out.Options[i].Label = clean
			return out, nil
		}
	}
	return set, fmt.Errorf("options: unknown value %q", value)
}

// Remove drops the option with value and compacts positions.
func (b *Builder) Remove(set Set, value string) (Set, error) {
	if _, ok := set.ByValue(value); !ok {
		return set, fmt.Errorf("options: unknown value %q", value)
	}
	out := Set{Field: set.Field, Options: make([]Option, 0, len(set.Options))}
	for _, opt := range set.Sorted() {
		if opt.Value == value {
			continue
		}
		opt.Position = len(out.Options)
		out.Options = append(out.Options, opt)
	}
	return out, nil
}
