package lookup

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/crmarques/nfvctl/debugctx"
	"github.com/crmarques/nfvctl/faults"
	"github.com/crmarques/nfvctl/resource"
	"github.com/crmarques/nfvctl/server"
	"github.com/google/uuid"
	"github.com/itchyny/gojq"
)

const matchByNameExpression = `.[] | select(.name == $name) | .id`

var compileMatchByName = sync.OnceValues(func() (*gojq.Code, error) {
	query, err := gojq.Parse(matchByNameExpression)
	if err != nil {
		return nil, err
	}
	return gojq.Compile(query, gojq.WithVariables([]string{"$name"}))
})

type Lister interface {
	List(ctx context.Context, kind resource.Kind, opts server.ListOptions) ([]server.Object, error)
}

var _ server.Resolver = (*Resolver)(nil)

type Resolver struct {
	lister Lister
}

func NewResolver(lister Lister) *Resolver {
	return &Resolver{lister: lister}
}

// LooksLikeID reports whether value is a canonical 36 character UUID.
func LooksLikeID(value string) bool {
	if len(value) != 36 {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

func (r *Resolver) Resolve(ctx context.Context, kind resource.Kind, nameOrID string) (string, error) {
	value := strings.TrimSpace(nameOrID)
	if value == "" {
		return "", faults.NewTypedError(faults.ValidationError, fmt.Sprintf("%s name or id is required", kind), nil)
	}
	if LooksLikeID(value) {
		debugctx.Printf(ctx, "lookup kind=%q value=%q treated as id", kind, value)
		return value, nil
	}
	if r == nil || r.lister == nil {
		return "", faults.NewTypedError(faults.InternalError, "resource lookup is not configured", nil)
	}

	items, err := r.lister.List(ctx, kind, server.ListOptions{
		Fields:  []string{"id", "name"},
		Filters: map[string][]string{"name": {value}},
	})
	if err != nil {
		return "", err
	}

	matches, err := matchIDsByName(ctx, items, value)
	if err != nil {
		return "", err
	}
	debugctx.Printf(ctx, "lookup kind=%q name=%q candidates=%d matches=%d", kind, value, len(items), len(matches))

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", faults.NewTypedErrorWithStatus(
			faults.NotFoundError,
			fmt.Sprintf("Unable to find %s with name '%s'", kind, value),
			http.StatusNotFound,
			nil,
		)
	default:
		return "", faults.NewTypedErrorWithStatus(
			faults.NotFoundError,
			fmt.Sprintf("Multiple %s matches found for name '%s', use an ID to be more specific.", kind, value),
			http.StatusConflict,
			nil,
		)
	}
}

// ResolveRef resolves ref with resolver. A zero ref resolves to "".
func ResolveRef(ctx context.Context, resolver server.Resolver, kind resource.Kind, ref resource.Ref) (string, error) {
	if id, ok := ref.ID(); ok {
		return id, nil
	}
	name, ok := ref.Name()
	if !ok {
		return "", nil
	}
	if resolver == nil {
		return "", faults.NewTypedError(faults.InternalError, "resource lookup is not configured", nil)
	}
	return resolver.Resolve(ctx, kind, name)
}

// matchIDsByName filters client side since older servers ignore the name
// query parameter.
func matchIDsByName(ctx context.Context, items []server.Object, name string) ([]string, error) {
	code, err := compileMatchByName()
	if err != nil {
		return nil, faults.NewTypedError(faults.InternalError, "invalid lookup expression", err)
	}

	input := make([]any, 0, len(items))
	for _, item := range items {
		input = append(input, map[string]any(item))
	}

	iterator := code.RunWithContext(ctx, input, name)
	matches := make([]string, 0, 1)
	for {
		value, ok := iterator.Next()
		if !ok {
			break
		}
		if valueErr, isErr := value.(error); isErr {
			return nil, faults.NewTypedError(faults.InternalError, "failed to evaluate lookup expression", valueErr)
		}
		if value == nil {
			continue
		}
		matches = append(matches, fmt.Sprint(value))
	}
	return matches, nil
}
