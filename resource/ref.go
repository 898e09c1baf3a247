package resource

import (
	"fmt"
	"strings"

	"github.com/crmarques/nfvctl/faults"
)

// Ref points at a remote resource either by ID or by name, never both.
type Ref struct {
	id   string
	name string
}

func RefByID(id string) Ref {
	return Ref{id: strings.TrimSpace(id)}
}

func RefByName(name string) Ref {
	return Ref{name: strings.TrimSpace(name)}
}

// NewRef builds a Ref out of a --x-id / --x-name flag pair. label is the
// flag stem used in error messages (for example "vnfd").
func NewRef(label string, id string, name string, required bool) (Ref, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)

	switch {
	case id != "" && name != "":
		return Ref{}, faults.NewTypedError(
			faults.ValidationError,
			fmt.Sprintf("flags --%s-id and --%s-name are mutually exclusive", label, label),
			nil,
		)
	case id != "":
		return Ref{id: id}, nil
	case name != "":
		return Ref{name: name}, nil
	case required:
		return Ref{}, faults.NewTypedError(
			faults.ValidationError,
			fmt.Sprintf("one of --%s-id or --%s-name is required", label, label),
			nil,
		)
	default:
		return Ref{}, nil
	}
}

func (r Ref) IsZero() bool {
	return r.id == "" && r.name == ""
}

func (r Ref) ID() (string, bool) {
	return r.id, r.id != ""
}

func (r Ref) Name() (string, bool) {
	return r.name, r.name != ""
}

func (r Ref) String() string {
	if r.id != "" {
		return r.id
	}
	return r.name
}
