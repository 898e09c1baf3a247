package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/crmarques/nfvctl/resource"
	"github.com/crmarques/nfvctl/server"
)

const (
	vnfResourcesSegment = "resources"
	vnfActionsSegment   = "actions"
)

func (g *Gateway) List(ctx context.Context, kind resource.Kind, opts server.ListOptions) ([]server.Object, error) {
	body, err := g.execute(ctx, requestSpec{
		purpose:  "list " + kind.String(),
		method:   http.MethodGet,
		segments: []string{g.apiVersion, kind.Collection()},
		query:    opts.Query(),
	})
	if err != nil {
		return nil, err
	}
	return decodeListEnvelope(body, kind.Collection())
}

func (g *Gateway) Show(ctx context.Context, kind resource.Kind, id string, fields []string) (server.Object, error) {
	if err := requireID(kind, id); err != nil {
		return nil, err
	}

	body, err := g.execute(ctx, requestSpec{
		purpose:  "show " + kind.String(),
		method:   http.MethodGet,
		segments: []string{g.apiVersion, kind.Collection(), id},
		query:    server.ListOptions{Fields: fields}.Query(),
	})
	if err != nil {
		return nil, err
	}
	return decodeObjectEnvelope(body, kind.String())
}

func (g *Gateway) Create(ctx context.Context, kind resource.Kind, payload resource.Body) (server.Object, error) {
	body, err := g.execute(ctx, requestSpec{
		purpose:  "create " + kind.String(),
		method:   http.MethodPost,
		segments: []string{g.apiVersion, kind.Collection()},
		body:     payload,
	})
	if err != nil {
		return nil, err
	}
	return decodeObjectEnvelope(body, kind.String())
}

func (g *Gateway) Update(ctx context.Context, kind resource.Kind, id string, payload resource.Body) (server.Object, error) {
	if err := requireID(kind, id); err != nil {
		return nil, err
	}

	body, err := g.execute(ctx, requestSpec{
		purpose:  "update " + kind.String(),
		method:   http.MethodPut,
		segments: []string{g.apiVersion, kind.Collection(), id},
		body:     payload,
	})
	if err != nil {
		return nil, err
	}
	return decodeObjectEnvelope(body, kind.String())
}

func (g *Gateway) Delete(ctx context.Context, kind resource.Kind, id string) error {
	if err := requireID(kind, id); err != nil {
		return err
	}

	_, err := g.execute(ctx, requestSpec{
		purpose:  "delete " + kind.String(),
		method:   http.MethodDelete,
		segments: []string{g.apiVersion, kind.Collection(), id},
	})
	return err
}

func (g *Gateway) ListVNFResources(ctx context.Context, vnfID string, opts server.ListOptions) ([]server.Object, error) {
	if err := requireID(resource.KindVNF, vnfID); err != nil {
		return nil, err
	}

	body, err := g.execute(ctx, requestSpec{
		purpose:  "list vnf resources",
		method:   http.MethodGet,
		segments: []string{g.apiVersion, resource.KindVNF.Collection(), vnfID, vnfResourcesSegment},
		query:    opts.Query(),
	})
	if err != nil {
		return nil, err
	}
	return decodeListEnvelope(body, vnfResourcesSegment)
}

func (g *Gateway) ScaleVNF(ctx context.Context, vnfID string, payload resource.Body) error {
	if err := requireID(resource.KindVNF, vnfID); err != nil {
		return err
	}

	_, err := g.execute(ctx, requestSpec{
		purpose:  "scale vnf",
		method:   http.MethodPost,
		segments: []string{g.apiVersion, resource.KindVNF.Collection(), vnfID, vnfActionsSegment},
		body:     payload,
	})
	return err
}

func (g *Gateway) APIVersions(ctx context.Context) ([]server.APIVersion, error) {
	body, err := g.execute(ctx, requestSpec{
		purpose: "api versions",
		method:  http.MethodGet,
		query:   url.Values{},
	})
	if err != nil {
		return nil, err
	}
	return decodeVersions(body)
}

func requireID(kind resource.Kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return validationError(kind.String()+" id is required", nil)
	}
	return nil
}
