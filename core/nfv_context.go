package core

import (
	"context"

	"github.com/crmarques/nfvctl/config"
	"github.com/crmarques/nfvctl/faults"
	"github.com/crmarques/nfvctl/internal/lookup"
	configfile "github.com/crmarques/nfvctl/internal/providers/config/file"
	httpserver "github.com/crmarques/nfvctl/internal/providers/server/http"
)

func NewContextService(opts BootstrapConfig) (config.ContextService, error) {
	return configfile.NewFileContextService(opts.ContextCatalogPath)
}

// NewNFVContext resolves the selected context and wires the HTTP gateway and
// the name resolver on top of it.
func NewNFVContext(opts BootstrapConfig, selection config.ContextSelection) (NFVContext, error) {
	contextService, err := NewContextService(opts)
	if err != nil {
		return NFVContext{}, err
	}

	resolvedContext, err := contextService.ResolveContext(context.Background(), selection)
	if err != nil {
		return NFVContext{}, err
	}

	gateway, err := httpserver.NewGateway(resolvedContext.Server)
	if err != nil {
		return NFVContext{}, err
	}
	if gateway == nil {
		return NFVContext{}, faults.NewTypedError(faults.InternalError, "server gateway is not configured", nil)
	}

	return NFVContext{
		Name:     resolvedContext.Name,
		Contexts: contextService,
		Client:   gateway,
		Resolver: lookup.NewResolver(gateway),
	}, nil
}
