package options

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-crmkit/pkg/optionvalue"
)

const extensionNamespace = "x-formgen"

// Schema describes the set as an OpenAPI string enum. Labels and colors are
// carried in the x-formgen extension so form generators can render the
// choices without a second lookup.
func (s Set) Schema() *openapi3.Schema {
	sorted := s.Sorted()

	enum := make([]any, 0, len(sorted))
	labels := make(map[string]any, len(sorted))
	colors := make(map[string]any, len(sorted))
	for _, opt := range sorted {
		enum = append(enum, opt.Value)
		labels[opt.Value] = opt.Label
		if opt.Color != "" {
			colors[opt.Value] = string(opt.Color)
		}
	}

	schema := openapi3.NewStringSchema()
	schema.Pattern = optionvalue.Pattern
	schema.Enum = enum
	if s.Field != "" {
		schema.Title = s.Field
	}

	ext := map[string]any{
		"widget":     "select",
		"enumLabels": labels,
	}
	if len(colors) > 0 {
		ext["enumColors"] = colors
	}
	schema.Extensions = map[string]any{extensionNamespace: ext}
	return schema
}
