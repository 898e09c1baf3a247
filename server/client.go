package server

import (
	"context"

	"github.com/crmarques/nfvctl/resource"
)

type Object = map[string]any

type ListOptions struct {
	Fields   []string
	Filters  map[string][]string
	PageSize int
	SortKeys []string
	SortDirs []string
	Verbose  bool
}

type APIVersion struct {
	ID     string `json:"id" yaml:"id"`
	Status string `json:"status" yaml:"status"`
}

type Client interface {
	List(ctx context.Context, kind resource.Kind, opts ListOptions) ([]Object, error)
	Show(ctx context.Context, kind resource.Kind, id string, fields []string) (Object, error)
	Create(ctx context.Context, kind resource.Kind, body resource.Body) (Object, error)
	Update(ctx context.Context, kind resource.Kind, id string, body resource.Body) (Object, error)
	Delete(ctx context.Context, kind resource.Kind, id string) error
	ListVNFResources(ctx context.Context, vnfID string, opts ListOptions) ([]Object, error)
	ScaleVNF(ctx context.Context, vnfID string, body resource.Body) error
	APIVersions(ctx context.Context) ([]APIVersion, error)
}

// Resolver turns a name or an ID into the canonical resource ID.
type Resolver interface {
	Resolve(ctx context.Context, kind resource.Kind, nameOrID string) (string, error)
}

type ResolverFunc func(ctx context.Context, kind resource.Kind, nameOrID string) (string, error)

func (f ResolverFunc) Resolve(ctx context.Context, kind resource.Kind, nameOrID string) (string, error) {
	return f(ctx, kind, nameOrID)
}
