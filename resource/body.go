package resource

import (
	"encoding/json"
	"strings"

	"github.com/crmarques/nfvctl/faults"
)

const ScaleKey = "scale"

// Body is the request envelope {"<key>": payload} sent to the orchestrator.
type Body struct {
	Key     string
	Payload any
}

func NewBody(kind Kind, payload any) Body {
	return Body{Key: string(kind), Payload: payload}
}

func (b Body) MarshalJSON() ([]byte, error) {
	if strings.TrimSpace(b.Key) == "" {
		return nil, faults.NewTypedError(faults.InternalError, "request body key is required", nil)
	}
	return json.Marshal(map[string]any{b.Key: b.Payload})
}

// Object decodes the body into its generic JSON shape.
func (b Body) Object() (map[string]any, error) {
	encoded, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}

	var decoded map[string]any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return nil, faults.NewTypedError(faults.InternalError, "failed to decode request body", err)
	}
	return decoded, nil
}
