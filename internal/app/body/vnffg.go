package body

import (
	"context"
	"fmt"
	"strings"

	"github.com/crmarques/nfvctl/internal/lookup"
	"github.com/crmarques/nfvctl/resource"
)

type VNFFGCreateRequest struct {
	Name        string
	Description string
	TenantID    string
	VNFFGD      resource.Ref
	VNFMapping  string
	Symmetrical string
}

type VNFFGUpdateRequest struct {
	TenantID    string
	VNFMapping  string
	Symmetrical string
}

func BuildVNFFGCreate(ctx context.Context, deps Dependencies, req VNFFGCreateRequest) (resource.Body, error) {
	if req.VNFFGD.IsZero() {
		return resource.Body{}, validationError("one of --vnffgd-id or --vnffgd-name is required", nil)
	}

	mapping, err := ResolveVNFMapping(ctx, deps, req.VNFMapping)
	if err != nil {
		return resource.Body{}, err
	}

	vnffgdID, err := lookup.ResolveRef(ctx, deps.Resolver, resource.KindVNFFGD, req.VNFFGD)
	if err != nil {
		return resource.Body{}, err
	}

	return resource.NewBody(resource.KindVNFFG, resource.VNFFGPayload{
		TenantID:    strings.TrimSpace(req.TenantID),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		VNFFGDID:    vnffgdID,
		Symmetrical: req.Symmetrical,
		VNFMapping:  mapping,
	}), nil
}

func BuildVNFFGUpdate(ctx context.Context, deps Dependencies, req VNFFGUpdateRequest) (resource.Body, error) {
	mapping, err := ResolveVNFMapping(ctx, deps, req.VNFMapping)
	if err != nil {
		return resource.Body{}, err
	}

	return resource.NewBody(resource.KindVNFFG, resource.VNFFGPayload{
		TenantID:    strings.TrimSpace(req.TenantID),
		Symmetrical: req.Symmetrical,
		VNFMapping:  mapping,
	}), nil
}

// ResolveVNFMapping parses "VNF1:my_vnf1,VNF2:my_vnf2" into logical VNFD
// names mapped to VNF IDs. Each pair splits on its first colon.
func ResolveVNFMapping(ctx context.Context, deps Dependencies, raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	if deps.Resolver == nil {
		return nil, validationError("resource lookup is not configured", nil)
	}

	mapping := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		logicalName, instance, found := strings.Cut(pair, ":")
		logicalName = strings.TrimSpace(logicalName)
		instance = strings.TrimSpace(instance)
		if !found || logicalName == "" || instance == "" {
			return nil, validationError(fmt.Sprintf("invalid --vnf-mapping entry %q: expected LOGICAL_NAME:VNF", pair), nil)
		}

		vnfID, err := deps.Resolver.Resolve(ctx, resource.KindVNF, instance)
		if err != nil {
			return nil, err
		}
		mapping[logicalName] = vnfID
	}
	return mapping, nil
}
