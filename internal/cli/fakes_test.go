package cli

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/crmarques/nfvctl/config"
	"github.com/crmarques/nfvctl/faults"
	"github.com/crmarques/nfvctl/internal/cli/testkit"
	"github.com/crmarques/nfvctl/internal/lookup"
	"github.com/crmarques/nfvctl/resource"
	"github.com/crmarques/nfvctl/server"
	"github.com/spf13/cobra"
)

type recordedBody struct {
	kind resource.Kind
	id   string
	body resource.Body
}

type fakeClient struct {
	mu        sync.Mutex
	objects   map[resource.Kind][]server.Object
	resources map[string][]server.Object
	versions  []server.APIVersion

	listCalls []server.ListOptions
	created   []recordedBody
	updated   []recordedBody
	deleted   []string
	scaled    []recordedBody
}

var _ server.Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{
		objects:   map[resource.Kind][]server.Object{},
		resources: map[string][]server.Object{},
	}
}

func (c *fakeClient) add(kind resource.Kind, items ...server.Object) *fakeClient {
	c.objects[kind] = append(c.objects[kind], items...)
	return c
}

func (c *fakeClient) List(_ context.Context, kind resource.Kind, opts server.ListOptions) ([]server.Object, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listCalls = append(c.listCalls, opts)
	return append([]server.Object(nil), c.objects[kind]...), nil
}

func (c *fakeClient) Show(_ context.Context, kind resource.Kind, id string, _ []string) (server.Object, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.objects[kind] {
		if item["id"] == id {
			return item, nil
		}
	}
	return nil, faults.NewTypedErrorWithStatus(faults.NotFoundError, fmt.Sprintf("%s %s not found", kind, id), 404, nil)
}

func (c *fakeClient) Create(_ context.Context, kind resource.Kind, body resource.Body) (server.Object, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.created = append(c.created, recordedBody{kind: kind, body: body})
	decoded, err := body.Object()
	if err != nil {
		return nil, err
	}
	item, _ := decoded[body.Key].(map[string]any)
	item["id"] = fmt.Sprintf("%s-new", kind)
	item["status"] = "PENDING_CREATE"
	return item, nil
}

func (c *fakeClient) Update(_ context.Context, kind resource.Kind, id string, body resource.Body) (server.Object, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.updated = append(c.updated, recordedBody{kind: kind, id: id, body: body})
	return server.Object{"id": id, "status": "PENDING_UPDATE"}, nil
}

func (c *fakeClient) Delete(_ context.Context, _ resource.Kind, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.deleted = append(c.deleted, id)
	return nil
}

func (c *fakeClient) ListVNFResources(_ context.Context, vnfID string, opts server.ListOptions) ([]server.Object, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listCalls = append(c.listCalls, opts)
	return c.resources[vnfID], nil
}

func (c *fakeClient) ScaleVNF(_ context.Context, vnfID string, body resource.Body) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scaled = append(c.scaled, recordedBody{kind: resource.KindVNF, id: vnfID, body: body})
	return nil
}

func (c *fakeClient) APIVersions(context.Context) ([]server.APIVersion, error) {
	return c.versions, nil
}

type fakeContexts struct {
	mu       sync.Mutex
	contexts []config.Context
	current  string
}

var _ config.ContextService = (*fakeContexts)(nil)

func (s *fakeContexts) List(context.Context) ([]config.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]config.Context(nil), s.contexts...), nil
}

func (s *fakeContexts) GetCurrent(ctx context.Context) (config.Context, error) {
	return s.ResolveContext(ctx, config.ContextSelection{})
}

func (s *fakeContexts) SetCurrent(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.contexts {
		if item.Name == name {
			s.current = name
			return nil
		}
	}
	return faults.NewTypedError(faults.NotFoundError, fmt.Sprintf("context %q not found", name), nil)
}

func (s *fakeContexts) ResolveContext(_ context.Context, selection config.ContextSelection) (config.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := selection.Name
	if name == "" {
		name = s.current
	}
	for _, item := range s.contexts {
		if item.Name == name {
			return item, nil
		}
	}
	return config.Context{}, faults.NewTypedError(faults.NotFoundError, fmt.Sprintf("context %q not found", name), nil)
}

func newFakeContexts() *fakeContexts {
	return &fakeContexts{
		contexts: []config.Context{
			{
				Name: "lab",
				Server: config.HTTPServer{
					BaseURL: "http://lab.example:9890",
					Auth: &config.HTTPAuth{
						CustomHeader: &config.HeaderTokenAuth{Header: "X-Auth-Token", Token: "lab-secret"},
					},
				},
			},
			{
				Name:   "prod",
				Server: config.HTTPServer{BaseURL: "https://prod.example:9890"},
			},
		},
		current: "lab",
	}
}

func newTestRoot(client *fakeClient, contexts *fakeContexts) *cobra.Command {
	deps := Dependencies{Contexts: contexts}
	if client != nil {
		deps.Client = client
		deps.Resolver = lookup.NewResolver(client)
	}
	return NewRootCommand(deps)
}

func runRoot(t *testing.T, client *fakeClient, args ...string) (string, string, error) {
	t.Helper()
	return testkit.ExecuteCommandForTestWithStreams(newTestRoot(client, newFakeContexts()), "", args...)
}
