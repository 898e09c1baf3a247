package commandmeta

import (
	"testing"

	"github.com/crmarques/nfvctl/resource"
	"github.com/crmarques/nfvctl/server"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorsCoverCommandKinds(t *testing.T) {
	t.Parallel()

	kinds := make([]resource.Kind, 0)
	for _, item := range Descriptors() {
		kinds = append(kinds, item.Kind)
		assert.NotEmpty(t, item.ListColumns, "kind %s", item.Kind)
	}
	assert.Equal(t, []resource.Kind{
		resource.KindVIM,
		resource.KindVNF,
		resource.KindVNFFG,
		resource.KindVNFFGD,
		resource.KindNFP,
		resource.KindSFC,
		resource.KindClassifier,
	}, kinds)

	_, ok := DescriptorFor(resource.KindVNFD)
	assert.False(t, ok)

	nfp, ok := DescriptorFor(resource.KindNFP)
	require.True(t, ok)
	assert.False(t, nfp.Deletable)
}

func TestWithoutOutputFieldsCopies(t *testing.T) {
	t.Parallel()

	descriptor, ok := DescriptorFor(resource.KindVNF)
	require.True(t, ok)

	item := server.Object{"id": "vnf-1", "attributes": map[string]any{"config": "..."}}
	trimmed := descriptor.WithoutOutputFields(item)

	assert.Equal(t, server.Object{"id": "vnf-1"}, trimmed)
	assert.Contains(t, item, "attributes")

	vim, ok := DescriptorFor(resource.KindVIM)
	require.True(t, ok)
	assert.Equal(t, item, vim.WithoutOutputFields(item))
}

func TestRequiresContextBootstrapPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		path string
		want bool
	}{
		{path: "nfvctl vim list", want: true},
		{path: "nfvctl vnf scale", want: true},
		{path: "nfvctl classifier show", want: true},
		{path: "nfvctl vnf", want: false},
		{path: "nfvctl config show", want: false},
		{path: "nfvctl completion bash", want: false},
		{path: "nfvctl version", want: false},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.want, RequiresContextBootstrapPath(testCase.path), testCase.path)
	}
}

func TestRequiresContextBootstrapForVersionServer(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: RootCommandName}
	version := &cobra.Command{Use: "version", Run: func(*cobra.Command, []string) {}}
	version.Flags().Bool("server", false, "")
	root.AddCommand(version)

	assert.False(t, RequiresContextBootstrap(version))
	require.NoError(t, version.Flags().Set("server", "true"))
	assert.True(t, RequiresContextBootstrap(version))
	assert.False(t, RequiresContextBootstrap(nil))
}

func TestOutputPolicyForPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, OutputPolicyYAMLDefaultTextOrYAML, OutputPolicyForPath("nfvctl config show"))
	assert.Equal(t, OutputPolicyTextOnly, OutputPolicyForPath("nfvctl completion zsh"))
	assert.Equal(t, OutputPolicyStructured, OutputPolicyForPath("nfvctl vnf list"))
}
