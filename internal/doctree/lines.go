package doctree

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Lines is a sequence of description lines. Sources spell it three ways: a
// single string, a list of strings, or an object wrapping the list under
// "info". All three decode to the same value.
type Lines []string

type wrappedLines struct {
	Info Lines `json:"info" yaml:"info"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Lines) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Lines{s}
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*l = list
	case '{':
		var w wrappedLines
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		*l = w.Info
	default:
		return fmt.Errorf("description lines: unexpected JSON %q", truncate(data, 32))
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Lines) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = Lines{value.Value}
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*l = list
	case yaml.MappingNode:
		var w wrappedLines
		if err := value.Decode(&w); err != nil {
			return err
		}
		*l = w.Info
	default:
		return fmt.Errorf("description lines: unexpected YAML node at line %d", value.Line)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
