package yamlutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/crmarques/nfvctl/faults"
	"go.yaml.in/yaml/v3"
)

// Source names where a config document comes from. Exactly one field is
// expected to be set; Path wins when both are.
type Source struct {
	Path    string
	Literal string
}

func (s Source) IsZero() bool {
	return s.Path == "" && s.Literal == ""
}

func Load(source Source) (map[string]any, error) {
	if source.Path != "" {
		return LoadFile(source.Path)
	}
	return LoadString(source.Literal)
}

func LoadFile(path string) (map[string]any, error) {
	value, trimmed, err := readFileValue(path)
	if err != nil {
		return nil, err
	}
	document, err := asMapping(value)
	if err != nil {
		return nil, faults.NewTypedError(faults.ParseError, fmt.Sprintf("file %q is not a valid YAML mapping", trimmed), err)
	}
	return document, nil
}

func LoadString(text string) (map[string]any, error) {
	value, err := LoadStringValue(text)
	if err != nil {
		return nil, err
	}
	document, err := asMapping(value)
	if err != nil {
		return nil, faults.NewTypedError(faults.ParseError, "value is not a valid YAML mapping", err)
	}
	return document, nil
}

// LoadFileValue is LoadFile without the mapping requirement. An empty file
// yields nil.
func LoadFileValue(path string) (any, error) {
	value, _, err := readFileValue(path)
	return value, err
}

// LoadStringValue parses any YAML value. An empty document yields nil.
func LoadStringValue(text string) (any, error) {
	value, err := parseValue([]byte(text))
	if err != nil {
		return nil, faults.NewTypedError(faults.ParseError, "value is not valid YAML", err)
	}
	return value, nil
}

func readFileValue(path string) (any, string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, "", faults.NewTypedError(faults.ValidationError, "file path is required", nil)
	}

	content, err := os.ReadFile(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, trimmed, faults.NewTypedError(faults.NotFoundError, fmt.Sprintf("file %q not found", trimmed), err)
		}
		return nil, trimmed, faults.NewTypedError(faults.ValidationError, fmt.Sprintf("file %q could not be read", trimmed), err)
	}

	value, err := parseValue(content)
	if err != nil {
		return nil, trimmed, faults.NewTypedError(faults.ParseError, fmt.Sprintf("file %q is not valid YAML", trimmed), err)
	}
	return value, trimmed, nil
}

func parseValue(content []byte) (any, error) {
	var decoded any
	if err := yaml.Unmarshal(content, &decoded); err != nil {
		return nil, err
	}
	return normalizeValue(decoded), nil
}

func asMapping(value any) (map[string]any, error) {
	if value == nil {
		return map[string]any{}, nil
	}
	document, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value is %T, expected mapping", value)
	}
	return document, nil
}

// normalizeValue rewrites map[any]any nodes so the result encodes as JSON.
func normalizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, item := range typed {
			typed[key] = normalizeValue(item)
		}
		return typed
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for key, item := range typed {
			converted[fmt.Sprint(key)] = normalizeValue(item)
		}
		return converted
	case []any:
		for idx, item := range typed {
			typed[idx] = normalizeValue(item)
		}
		return typed
	default:
		return value
	}
}
