package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ID is an identifier that may arrive as a JSON string or number.
// Numbers are kept as their literal text, so 7 and "7" compare equal.
type ID string

// String returns the identifier text.
func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts a string, a number or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar node.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("id must be a scalar, got yaml kind %d at line %d", value.Kind, value.Line)
	}
	if value.Tag == "!!null" {
		*id = ""
		return nil
	}
	*id = ID(value.Value)
	return nil
}
