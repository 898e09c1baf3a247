package core

import (
	"github.com/crmarques/nfvctl/config"
	"github.com/crmarques/nfvctl/server"
)

type NFVContext struct {
	Name     string
	Contexts config.ContextService
	Client   server.Client
	Resolver server.Resolver
}

type BootstrapConfig struct {
	ContextCatalogPath string
}
