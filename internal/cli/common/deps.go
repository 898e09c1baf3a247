package common

import (
	"github.com/crmarques/nfvctl/config"
	"github.com/crmarques/nfvctl/server"
)

type CommandDependencies struct {
	Contexts config.ContextService
	Client   server.Client
	Resolver server.Resolver
}

func RequireContexts(deps CommandDependencies) (config.ContextService, error) {
	if deps.Contexts == nil {
		return nil, ValidationError("context service is not configured", nil)
	}
	return deps.Contexts, nil
}

func RequireClient(deps CommandDependencies) (server.Client, error) {
	if deps.Client == nil {
		return nil, ValidationError("server client is not configured", nil)
	}
	return deps.Client, nil
}

func RequireResolver(deps CommandDependencies) (server.Resolver, error) {
	if deps.Resolver == nil {
		return nil, ValidationError("resource lookup is not configured", nil)
	}
	return deps.Resolver, nil
}
