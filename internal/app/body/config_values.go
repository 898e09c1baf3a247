package body

import (
	"fmt"
	"strings"

	"github.com/crmarques/nfvctl/yamlutil"
)

// popString removes key from document and renders scalar values as strings.
func popString(document map[string]any, key string) (string, bool, error) {
	raw, found := document[key]
	if !found {
		return "", false, nil
	}
	delete(document, key)

	switch typed := raw.(type) {
	case nil:
		return "", false, nil
	case string:
		return typed, true, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(typed), true, nil
	default:
		return "", false, validationError(fmt.Sprintf("config key %q must be a scalar value", key), nil)
	}
}

func popStringOrEmpty(document map[string]any, key string) (string, error) {
	value, _, err := popString(document, key)
	return value, err
}

func loadOptionalFile(path string) (map[string]any, bool, error) {
	if strings.TrimSpace(path) == "" {
		return nil, false, nil
	}
	document, err := yamlutil.LoadFile(path)
	if err != nil {
		return nil, false, err
	}
	return document, true, nil
}

// isEmptyValue reports values that count as "not provided": nil, false, zero,
// and empty strings, maps or lists.
func isEmptyValue(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case bool:
		return !typed
	case string:
		return typed == ""
	case int:
		return typed == 0
	case float64:
		return typed == 0
	case map[string]any:
		return len(typed) == 0
	case []any:
		return len(typed) == 0
	default:
		return false
	}
}
