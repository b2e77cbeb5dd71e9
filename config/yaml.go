package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a YAML payload contains no data.
var ErrEmptyDocument = errors.New("config: empty document")

// ErrUnsupportedValue is returned when a YAML value cannot be flattened to
// a flat string property (sequences, nested non-scalar leaves).
var ErrUnsupportedValue = errors.New("config: unsupported value")

// FromYAML decodes a YAML mapping into flat Properties. Nested mappings are
// flattened with dot-joined keys; scalar leaves are stringified. Sequences
// are rejected with ErrUnsupportedValue — the property surface is flat by
// contract.
func FromYAML(data []byte) (Properties, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: decode properties: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyDocument
	}

	out := make(Properties)
	if err := flatten("", raw, out); err != nil {
		return nil, err
	}

	return out, nil
}

// LoadFile reads path and decodes it via FromYAML.
func LoadFile(path string) (Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	props, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return props, nil
}

// flatten walks a decoded YAML tree, joining map keys with dots and
// stringifying scalar leaves into out.
func flatten(prefix string, node map[string]any, out Properties) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case string:
			out[key] = val
		case bool:
			out[key] = strconv.FormatBool(val)
		case int:
			out[key] = strconv.Itoa(val)
		case int64:
			out[key] = strconv.FormatInt(val, 10)
		case float64:
			out[key] = strconv.FormatFloat(val, 'g', -1, 64)
		case nil:
			out[key] = ""
		default:
			return fmt.Errorf("%w: key %q holds %T", ErrUnsupportedValue, key, v)
		}
	}

	return nil
}
