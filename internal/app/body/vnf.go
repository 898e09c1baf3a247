package body

import (
	"context"
	"strings"

	"github.com/crmarques/nfvctl/debugctx"
	"github.com/crmarques/nfvctl/internal/lookup"
	"github.com/crmarques/nfvctl/resource"
	"github.com/crmarques/nfvctl/server"
	"github.com/crmarques/nfvctl/yamlutil"
)

const legacyConfigWarning = "passing --config as a yaml string is deprecated and may be removed in a future release; use yaml as dictionary instead"

type Dependencies struct {
	Resolver server.Resolver
}

// ConfigInput carries the VNF config sources. Literal or Structured, when
// set, replaces whatever File holds; Literal is the legacy escaped string
// form and Structured is used by programmatic callers. Any YAML value is a
// valid config, not only mappings.
type ConfigInput struct {
	File       string
	Literal    string
	Structured any
}

type VNFCreateRequest struct {
	Name          string
	Description   string
	TenantID      string
	VNFD          resource.Ref
	VIM           resource.Ref
	VIMRegionName string
	Config        ConfigInput
	ParamFile     string
}

type VNFUpdateRequest struct {
	TenantID string
	Config   ConfigInput
}

func BuildVNFCreate(ctx context.Context, deps Dependencies, req VNFCreateRequest) (resource.Body, error) {
	if req.VNFD.IsZero() {
		return resource.Body{}, validationError("one of --vnfd-id or --vnfd-name is required", nil)
	}

	config, err := ResolveConfig(ctx, req.Config)
	if err != nil {
		return resource.Body{}, err
	}

	payload := resource.VNFPayload{
		TenantID:    strings.TrimSpace(req.TenantID),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Attributes:  &resource.VNFAttributes{},
	}
	if !isEmptyValue(config) {
		payload.Attributes.Config = config
	}
	if region := strings.TrimSpace(req.VIMRegionName); region != "" {
		payload.PlacementAttr = &resource.PlacementAttr{RegionName: region}
	}

	payload.VIMID, err = lookup.ResolveRef(ctx, deps.Resolver, resource.KindVIM, req.VIM)
	if err != nil {
		return resource.Body{}, err
	}
	payload.VNFDID, err = lookup.ResolveRef(ctx, deps.Resolver, resource.KindVNFD, req.VNFD)
	if err != nil {
		return resource.Body{}, err
	}

	params, loaded, err := loadOptionalFile(req.ParamFile)
	if err != nil {
		return resource.Body{}, err
	}
	if loaded && len(params) > 0 {
		payload.Attributes.ParamValues = params
	}

	return resource.NewBody(resource.KindVNF, payload), nil
}

func BuildVNFUpdate(ctx context.Context, req VNFUpdateRequest) (resource.Body, error) {
	config, err := ResolveConfig(ctx, req.Config)
	if err != nil {
		return resource.Body{}, err
	}

	payload := resource.VNFPayload{TenantID: strings.TrimSpace(req.TenantID)}
	if !isEmptyValue(config) {
		payload.Attributes = &resource.VNFAttributes{Config: config}
	}
	return resource.NewBody(resource.KindVNF, payload), nil
}

// ResolveConfig loads the file first and lets an inline value replace it.
// The two are never merged.
func ResolveConfig(ctx context.Context, input ConfigInput) (any, error) {
	var (
		config any
		err    error
	)
	if strings.TrimSpace(input.File) != "" {
		config, err = yamlutil.LoadFileValue(input.File)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case input.Structured != nil:
		config = input.Structured
	case input.Literal != "":
		config, err = yamlutil.LoadStringValue(yamlutil.DecodeEscapes(input.Literal))
		if err != nil {
			return nil, err
		}
		debugctx.Warnf(ctx, legacyConfigWarning)
	}

	return config, nil
}
