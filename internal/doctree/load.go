package doctree

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a documentation source.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatJS is a JavaScript data module such as `const api = {...};`.
	// Everything outside the outermost braces is discarded.
	FormatJS Format = "js"
)

// DetectFormat picks a Format from the file extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	case ".js", ".mjs":
		return FormatJS
	default:
		return FormatJSON
	}
}

// Load reads and decodes the documentation tree at path.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading doc source %s: %w", path, err)
	}
	tree, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("parsing doc source %s: %w", path, err)
	}
	return tree, nil
}

// Parse decodes a documentation tree. The top level must be an object
// mapping root package names to nodes.
func Parse(data []byte, format Format) (*Tree, error) {
	roots := NewNodeMap()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, roots); err != nil {
			return nil, err
		}
	case FormatJS:
		obj, err := extractObject(data)
		if err != nil {
			return nil, err
		}
		if err := roots.UnmarshalJSON(obj); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := roots.UnmarshalJSON(bytes.TrimSpace(data)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported doc source format %q", format)
	}

	return &Tree{Packages: roots}, nil
}

// extractObject returns the outermost {...} span of a JavaScript module.
func extractObject(data []byte) ([]byte, error) {
	start := bytes.IndexByte(data, '{')
	end := bytes.LastIndexByte(data, '}')
	if start == -1 || end < start {
		return nil, fmt.Errorf("no object literal found in JavaScript source")
	}
	return data[start : end+1], nil
}
