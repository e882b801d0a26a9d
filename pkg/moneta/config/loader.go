package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile loads configuration from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json, .properties
func FromFile(path string) (Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	case ".properties":
		return FromProperties(data)
	default:
		return nil, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Static provider. Nested mappings
// are flattened into dotted keys; scalar values become strings.
func FromYAML(data []byte) (Static, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out := make(Static)
	flatten("", m, out)
	return out, nil
}

// FromJSON parses JSON data into a Static provider. Nested objects
// are flattened into dotted keys; scalar values become strings.
func FromJSON(data []byte) (Static, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	out := make(Static)
	flatten("", m, out)
	return out, nil
}

// FromProperties parses key=value lines into a Static provider.
// Blank lines and lines starting with '#' or '!' are ignored; the
// separator is the first '=' or ':' on the line. Keys and values are
// trimmed of surrounding whitespace.
func FromProperties(data []byte) (Static, error) {
	out := make(Static)
	sc := bufio.NewScanner(strings.NewReader(string(data)))
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '!' {
			continue
		}
		sep := strings.IndexAny(text, "=:")
		if sep < 0 {
			return nil, fmt.Errorf("parse properties: line %d: missing separator", line)
		}
		key := strings.TrimSpace(text[:sep])
		if key == "" {
			return nil, fmt.Errorf("parse properties: line %d: empty key", line)
		}
		out[key] = strings.TrimSpace(text[sep+1:])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse properties: %w", err)
	}
	return out, nil
}

// flatten walks a decoded document, joining nested map keys with dots
// and rendering scalars as strings.
func flatten(prefix string, v any, out Static) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, out)
		}
	case string:
		out[prefix] = val
	case bool:
		out[prefix] = strconv.FormatBool(val)
	case int:
		out[prefix] = strconv.Itoa(val)
	case int64:
		out[prefix] = strconv.FormatInt(val, 10)
	case float64:
		// JSON numbers decode as float64; render integral values
		// without a fractional part so "precision: 256" stays "256".
		if val == float64(int64(val)) {
			out[prefix] = strconv.FormatInt(int64(val), 10)
		} else {
			out[prefix] = strconv.FormatFloat(val, 'g', -1, 64)
		}
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprintf("%v", val)
	}
}
