// Package source implements program sources backed by files and HTTP
// endpoints, plus the document decoding they share.
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"programviewer/internal/domain"
)

// Format is the serialization of a program document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultEnvelopeField is the object field holding the agenda list when a
// document is an envelope rather than a bare list.
const DefaultEnvelopeField = "agendas"

// FormatFromName guesses the format from a file name or URL path.
func FormatFromName(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Decode parses a program document: either a bare list of agendas or an
// object whose envelopeField holds that list. An empty or null document
// decodes to no agendas.
func Decode(data []byte, format Format, envelopeField string) ([]domain.Agenda, error) {
	if envelopeField == "" {
		envelopeField = DefaultEnvelopeField
	}
	if format == FormatYAML {
		return decodeYAML(data, envelopeField)
	}
	return decodeJSON(data, envelopeField)
}

func decodeJSON(data []byte, envelopeField string) ([]domain.Agenda, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	switch data[0] {
	case '[':
		var agendas []domain.Agenda
		if err := json.Unmarshal(data, &agendas); err != nil {
			return nil, fmt.Errorf("failed to decode program list: %w", err)
		}
		return agendas, nil
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode program envelope: %w", err)
		}
		raw, ok := envelope[envelopeField]
		if !ok {
			return nil, fmt.Errorf("program envelope has no %q field", envelopeField)
		}
		return decodeJSON(raw, envelopeField)
	}
	return nil, fmt.Errorf("program document must be a list or an object")
}

func decodeYAML(data []byte, envelopeField string) ([]domain.Agenda, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode program yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return decodeYAMLNode(doc.Content[0], envelopeField)
}

func decodeYAMLNode(node *yaml.Node, envelopeField string) ([]domain.Agenda, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		var agendas []domain.Agenda
		if err := node.Decode(&agendas); err != nil {
			return nil, fmt.Errorf("failed to decode program list: %w", err)
		}
		return agendas, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == envelopeField {
				return decodeYAMLNode(node.Content[i+1], envelopeField)
			}
		}
		return nil, fmt.Errorf("program envelope has no %q field", envelopeField)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("program document must be a list or a mapping")
}
