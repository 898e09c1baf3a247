package body

import (
	"context"
	"strings"

	"github.com/crmarques/nfvctl/internal/lookup"
	"github.com/crmarques/nfvctl/resource"
)

type VNFScaleRequest struct {
	VNF    resource.Ref
	Policy string
	Type   string
}

func BuildVNFScale(ctx context.Context, deps Dependencies, req VNFScaleRequest) (resource.Body, error) {
	if req.VNF.IsZero() {
		return resource.Body{}, validationError("one of --vnf-id or --vnf-name is required", nil)
	}

	vnfID, err := lookup.ResolveRef(ctx, deps.Resolver, resource.KindVNF, req.VNF)
	if err != nil {
		return resource.Body{}, err
	}

	return resource.Body{
		Key: resource.ScaleKey,
		Payload: resource.ScalePayload{
			VNFID:  vnfID,
			Type:   strings.TrimSpace(req.Type),
			Policy: strings.TrimSpace(req.Policy),
		},
	}, nil
}

// SplitScaleTarget pulls vnf_id out of a scale body; the ID travels in the
// request path, never in the payload.
func SplitScaleTarget(scaleBody resource.Body) (string, resource.Body, error) {
	payload, ok := scaleBody.Payload.(resource.ScalePayload)
	if !ok || scaleBody.Key != resource.ScaleKey {
		return "", resource.Body{}, validationError("request body is not a scale action", nil)
	}
	if payload.VNFID == "" {
		return "", resource.Body{}, validationError("scale action has no vnf id", nil)
	}

	vnfID := payload.VNFID
	payload.VNFID = ""
	return vnfID, resource.Body{Key: resource.ScaleKey, Payload: payload}, nil
}
