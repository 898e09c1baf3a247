package config

import "context"

type ContextCatalogReader interface {
	List(ctx context.Context) ([]Context, error)
	GetCurrent(ctx context.Context) (Context, error)
}

type ContextCatalogWriter interface {
	SetCurrent(ctx context.Context, name string) error
}

type ContextResolver interface {
	ResolveContext(ctx context.Context, selection ContextSelection) (Context, error)
}

type ContextService interface {
	ContextCatalogReader
	ContextCatalogWriter
	ContextResolver
}
