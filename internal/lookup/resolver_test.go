package lookup

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/crmarques/nfvctl/faults"
	"github.com/crmarques/nfvctl/resource"
	"github.com/crmarques/nfvctl/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	items []server.Object
	err   error
	calls []server.ListOptions
	kinds []resource.Kind
}

func (f *fakeLister) List(_ context.Context, kind resource.Kind, opts server.ListOptions) ([]server.Object, error) {
	f.calls = append(f.calls, opts)
	f.kinds = append(f.kinds, kind)
	return f.items, f.err
}

const vnfdUUID = "6e5a3f0b-5a8e-4c3a-9a3e-3d2f7b1c9e10"

func TestResolveReturnsIDWithoutSearch(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{}
	resolved, err := NewResolver(lister).Resolve(context.Background(), resource.KindVNFD, vnfdUUID)
	require.NoError(t, err)
	assert.Equal(t, vnfdUUID, resolved)
	assert.Empty(t, lister.calls)
}

func TestResolveByName(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{items: []server.Object{
		{"id": "id-1", "name": "vnfd-a"},
		{"id": "id-2", "name": "vnfd-b"},
	}}

	resolved, err := NewResolver(lister).Resolve(context.Background(), resource.KindVNFD, "vnfd-b")
	require.NoError(t, err)
	assert.Equal(t, "id-2", resolved)

	require.Len(t, lister.calls, 1)
	assert.Equal(t, resource.KindVNFD, lister.kinds[0])
	assert.Equal(t, []string{"vnfd-b"}, lister.calls[0].Filters["name"])
	assert.Equal(t, []string{"id", "name"}, lister.calls[0].Fields)
}

func TestResolveFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		items      []server.Object
		listErr    error
		input      string
		category   faults.ErrorCategory
		statusCode int
		message    string
	}{
		{
			name:       "no_match",
			items:      []server.Object{{"id": "id-1", "name": "other"}},
			input:      "vnf1",
			category:   faults.NotFoundError,
			statusCode: http.StatusNotFound,
			message:    "Unable to find vnf with name 'vnf1'",
		},
		{
			name:       "ambiguous",
			items:      []server.Object{{"id": "id-1", "name": "vnf1"}, {"id": "id-2", "name": "vnf1"}},
			input:      "vnf1",
			category:   faults.NotFoundError,
			statusCode: http.StatusConflict,
			message:    "Multiple vnf matches found for name 'vnf1', use an ID to be more specific.",
		},
		{
			name:     "empty_input",
			input:    "  ",
			category: faults.ValidationError,
		},
		{
			name:     "list_failure",
			listErr:  faults.NewTypedError(faults.TransportError, "remote request failed", errors.New("refused")),
			input:    "vnf1",
			category: faults.TransportError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := &fakeLister{items: tc.items, err: tc.listErr}
			_, err := NewResolver(lister).Resolve(context.Background(), resource.KindVNF, tc.input)
			require.Error(t, err)
			assert.True(t, faults.IsCategory(err, tc.category), "unexpected error %v", err)
			if tc.statusCode != 0 {
				assert.Equal(t, tc.statusCode, faults.StatusCode(err))
			}
			if tc.message != "" {
				assert.Equal(t, tc.message, err.Error())
			}
		})
	}
}

func TestLooksLikeID(t *testing.T) {
	t.Parallel()

	assert.True(t, LooksLikeID(vnfdUUID))
	assert.False(t, LooksLikeID("6e5a3f0b5a8e4c3a9a3e3d2f7b1c9e10"), "undashed form must be searched by name")
	assert.False(t, LooksLikeID("my-vnfd"))
	assert.False(t, LooksLikeID(""))
}

func TestResolveRef(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{items: []server.Object{{"id": "vim-id", "name": "site1"}}}
	resolver := NewResolver(lister)

	id, err := ResolveRef(context.Background(), resolver, resource.KindVIM, resource.RefByID("given"))
	require.NoError(t, err)
	assert.Equal(t, "given", id)

	id, err = ResolveRef(context.Background(), resolver, resource.KindVIM, resource.RefByName("site1"))
	require.NoError(t, err)
	assert.Equal(t, "vim-id", id)

	id, err = ResolveRef(context.Background(), resolver, resource.KindVIM, resource.Ref{})
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Len(t, lister.calls, 1)
}
