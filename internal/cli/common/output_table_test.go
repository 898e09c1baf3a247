package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/crmarques/nfvctl/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCell(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "ACTIVE", want: "ACTIVE"},
		{name: "bool", value: true, want: "true"},
		{name: "integral float", value: float64(8080), want: "8080"},
		{name: "fractional float", value: 1.5, want: "1.5"},
		{name: "map", value: map[string]any{"RegionOne": "site-a"}, want: `{"RegionOne":"site-a"}`},
		{name: "list", value: []any{"a", "b"}, want: `["a","b"]`},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, FormatCell(testCase.value))
		})
	}
}

func TestRenderObjectsKeepsColumnOrder(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	items := []server.Object{
		{"id": "vim-1", "name": "site-a", "status": "REACHABLE"},
		{"id": "vim-2", "name": "site-b"},
	}
	require.NoError(t, RenderObjects(out, []string{"name", "id", "status"}, items, false))

	lines := strings.Split(out.String(), "\n")
	header := lines[1]
	assert.Less(t, strings.Index(header, "name"), strings.Index(header, "id"))
	assert.Less(t, strings.Index(header, "id"), strings.Index(header, "status"))
	assert.Contains(t, out.String(), "REACHABLE")
	assert.Contains(t, out.String(), "site-b")
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestRenderFieldsSortsKeys(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, RenderFields(out, server.Object{"status": "ACTIVE", "id": "vnf-1", "name": "web"}, false))

	rendered := out.String()
	assert.Contains(t, rendered, "Field")
	assert.Contains(t, rendered, "Value")
	assert.Less(t, strings.Index(rendered, "id"), strings.Index(rendered, "name"))
	assert.Less(t, strings.Index(rendered, "name"), strings.Index(rendered, "status"))
}

func TestCompleteValues(t *testing.T) {
	t.Parallel()

	values, _ := CompleteValues([]string{"site-b", " site-a ", "", "other", "site-a"}, "site")
	assert.Equal(t, []string{"site-a", "site-b"}, values)
}

func TestRefFlags(t *testing.T) {
	t.Parallel()

	ref, err := RefFlags{Label: "vim", Name: "site-a"}.Ref(true)
	require.NoError(t, err)
	assert.Equal(t, "site-a", ref.String())

	_, err = RefFlags{Label: "vnfd"}.Ref(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--vnfd-id")

	ref, err = RefFlags{Label: "vim"}.Ref(false)
	require.NoError(t, err)
	assert.True(t, ref.IsZero())
}

func TestRequireDependencies(t *testing.T) {
	t.Parallel()

	_, err := RequireClient(CommandDependencies{})
	assert.EqualError(t, err, "server client is not configured")
	_, err = RequireResolver(CommandDependencies{})
	assert.EqualError(t, err, "resource lookup is not configured")
	_, err = RequireContexts(CommandDependencies{})
	assert.EqualError(t, err, "context service is not configured")
}
