package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TagText is the raw comma-separated tag field of a session.
// Sources that publish tags as a list are joined with ", " so that search
// and splitting behave the same for both shapes.
type TagText string

// UnmarshalJSON accepts a string, a list of strings or null.
func (t *TagText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*t = ""
		return nil
	case b[0] == '[':
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return fmt.Errorf("tags list: %w", err)
		}
		*t = TagText(strings.Join(items, ", "))
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("tags must be a string or a list of strings: %w", err)
	}
	*t = TagText(s)
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (t *TagText) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*t = ""
			return nil
		}
		*t = TagText(value.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("tags list: %w", err)
		}
		*t = TagText(strings.Join(items, ", "))
		return nil
	}
	return fmt.Errorf("tags must be a string or a list, got yaml kind %d at line %d", value.Kind, value.Line)
}
