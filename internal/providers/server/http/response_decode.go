package http

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/crmarques/nfvctl/server"
)

func decodeJSONResponse(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, validationError("response body is not valid JSON", err)
	}
	return value, nil
}

// decodeListEnvelope reads {"<key>": [...]}; a bare array is accepted too.
func decodeListEnvelope(body []byte, key string) ([]server.Object, error) {
	payload, err := decodeJSONResponse(body)
	if err != nil {
		return nil, err
	}

	var items []any
	switch typed := payload.(type) {
	case nil:
		return []server.Object{}, nil
	case []any:
		items = typed
	case map[string]any:
		raw, ok := typed[key]
		if !ok {
			return nil, validationError(fmt.Sprintf("list response must include a %q array", key), nil)
		}
		if raw == nil {
			return []server.Object{}, nil
		}
		items, ok = raw.([]any)
		if !ok {
			return nil, validationError(fmt.Sprintf("list response %q must be an array", key), nil)
		}
	default:
		return nil, validationError("list response must be a JSON object", nil)
	}

	objects := make([]server.Object, 0, len(items))
	for _, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			return nil, validationError("list payload entries must be JSON objects", nil)
		}
		objects = append(objects, object)
	}
	return objects, nil
}

// decodeObjectEnvelope unwraps {"<key>": {...}}. Objects without the
// envelope are returned unchanged.
func decodeObjectEnvelope(body []byte, key string) (server.Object, error) {
	payload, err := decodeJSONResponse(body)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, nil
	}

	object, ok := payload.(map[string]any)
	if !ok {
		return nil, validationError("response body must be a JSON object", nil)
	}

	inner, found := object[key]
	if !found {
		return object, nil
	}
	innerObject, ok := inner.(map[string]any)
	if !ok {
		return nil, validationError(fmt.Sprintf("response %q must be a JSON object", key), nil)
	}
	return innerObject, nil
}

func decodeVersions(body []byte) ([]server.APIVersion, error) {
	var envelope struct {
		Versions []server.APIVersion `json:"versions"`
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, validationError("versions response is not valid JSON", err)
	}
	return envelope.Versions, nil
}
