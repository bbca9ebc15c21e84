package options

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the document encoding used by Marshal.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Parse decodes a JSON or YAML option set document and validates it.
func Parse(data []byte, source string) (Set, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Set{}, fmt.Errorf("options: file %s is empty", source)
	}

	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		set = Set{}
		if err := yaml.Unmarshal(data, &set); err != nil {
			return Set{}, fmt.Errorf("options: parse %s: invalid JSON or YAML", source)
		}
	}

	if err := set.Validate(); err != nil {
		return Set{}, fmt.Errorf("options: %s: %w", source, err)
	}
	return set, nil
}

// LoadFile reads and parses an option set document from disk.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("options: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses an option set document from fsys.
func LoadFS(fsys fs.FS, path string) (Set, error) {
	if fsys == nil {
		return Set{}, fmt.Errorf("options: missing filesystem")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Set{}, fmt.Errorf("options: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// FormatForPath picks JSON for .json files and YAML otherwise.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Marshal encodes set using format.
func Marshal(set Set, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(set, "", "  ")
	case FormatYAML, "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(set); err != nil {
			return nil, fmt.Errorf("options: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("options: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("options: unsupported format %q", format)
	}
}
