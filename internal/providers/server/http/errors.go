package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/crmarques/nfvctl/faults"
)

func validationError(message string, cause error) error {
	return faults.NewTypedError(faults.ValidationError, message, cause)
}

func authError(message string, cause error) error {
	return faults.NewTypedError(faults.AuthError, message, cause)
}

func transportError(message string, cause error) error {
	return faults.NewTypedError(faults.TransportError, message, cause)
}

func internalError(message string, cause error) error {
	return faults.NewTypedError(faults.InternalError, message, cause)
}

func classifyStatusError(statusCode int, body []byte) error {
	message, ok := extractServerMessage(body)
	if !ok {
		message = fmt.Sprintf("remote request failed with status %d: %s", statusCode, summarizeBody(body))
	}

	category := faults.TransportError
	switch {
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		category = faults.AuthError
	case statusCode == http.StatusNotFound:
		category = faults.NotFoundError
	case statusCode == http.StatusConflict:
		category = faults.ConflictError
	case statusCode >= 400 && statusCode < 500:
		category = faults.ValidationError
	}

	return faults.NewTypedErrorWithStatus(category, message, statusCode, nil)
}

// extractServerMessage understands {"TackerError": {"message": ...}} style
// envelopes as well as a bare {"message": ...} object.
func extractServerMessage(body []byte) (string, bool) {
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", false
	}

	if message, ok := decoded["message"].(string); ok && strings.TrimSpace(message) != "" {
		return strings.TrimSpace(message), true
	}

	keys := make([]string, 0, len(decoded))
	for key := range decoded {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		nested, ok := decoded[key].(map[string]any)
		if !ok {
			continue
		}
		if message, ok := nested["message"].(string); ok && strings.TrimSpace(message) != "" {
			return strings.TrimSpace(message), true
		}
	}
	return "", false
}

func summarizeBody(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "<empty>"
	}
	if len(trimmed) > 512 {
		return trimmed[:512] + "..."
	}
	return trimmed
}
