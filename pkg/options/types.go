package options

import "sort"

// Color names the tag color rendered next to an option.
type Color string

const (
	ColorGreen     Color = "green"
	ColorTurquoise Color = "turquoise"
	ColorSky       Color = "sky"
	ColorBlue      Color = "blue"
	ColorPurple    Color = "purple"
	ColorPink      Color = "pink"
	ColorRed       Color = "red"
	ColorOrange    Color = "orange"
	ColorYellow    Color = "yellow"
	ColorGray      Color = "gray"
)

// DefaultPalette is cycled through when new options are created.
var DefaultPalette = []Color{
	ColorGreen, ColorTurquoise, ColorSky, ColorBlue, ColorPurple,
	ColorPink, ColorRed, ColorOrange, ColorYellow, ColorGray,
}

// Option is a single selectable entry of a field.
type Option struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Value    string `json:"value" yaml:"value"`
	Color    Color  `json:"color,omitempty" yaml:"color,omitempty"`
	Position int    `json:"position" yaml:"position"`
}

// Set is the ordered option list of one field.
type Set struct {
	Field   string   `json:"field,omitempty" yaml:"field,omitempty"`
	Options []Option `json:"options" yaml:"options"`
}

// Len returns the number of options.
func (s Set) Len() int {
	return len(s.Options)
}

// Sorted returns a copy of the options ordered by position. Ties keep their
// original order.
func (s Set) Sorted() []Option {
	out := append([]Option(nil), s.Options...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// Values returns the option values in position order.
func (s Set) Values() []string {
	sorted := s.Sorted()
	out := make([]string, 0, len(sorted))
	for _, opt := range sorted {
		out = append(out, opt.Value)
	}
	return out
}

// Labels returns the option labels in position order.
func (s Set) Labels() []string {
	sorted := s.Sorted()
	out := make([]string, 0, len(sorted))
	for _, opt := range sorted {
		out = append(out, opt.Label)
	}
	return out
}

// ByValue looks up an option by value.
func (s Set) ByValue(value string) (Option, bool) {
	for _, opt := range s.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

func (s Set) nextPosition() int {
	next := 0
	for _, opt := range s.Options {
		if opt.Position >= next {
			next = opt.Position + 1
		}
	}
	return next
}
