package commandmeta

import (
	"strings"

	"github.com/crmarques/nfvctl/resource"
	"github.com/crmarques/nfvctl/server"
	"github.com/spf13/cobra"
)

const RootCommandName = "nfvctl"

type OutputPolicy uint8

const (
	OutputPolicyStructured OutputPolicy = iota
	OutputPolicyTextOnly
	OutputPolicyYAMLDefaultTextOrYAML
)

// Descriptor is the static description of one resource command group.
type Descriptor struct {
	Kind  resource.Kind
	Short string
	// ListColumns drive the text table of list commands.
	ListColumns []string
	// RemoveOutputFields are dropped from create output.
	RemoveOutputFields []string
	Paginated          bool
	Deletable          bool
}

var VNFResourceColumns = []string{"name", "id", "type"}

var descriptors = []Descriptor{
	{
		Kind:        resource.KindVIM,
		Short:       "Manage VIMs",
		ListColumns: []string{"id", "tenant_id", "name", "type", "description", "auth_url", "placement_attr", "auth_cred", "status"},
		Deletable:   true,
	},
	{
		Kind:               resource.KindVNF,
		Short:              "Manage VNFs",
		ListColumns:        []string{"id", "name", "description", "mgmt_url", "status", "vim_id", "placement_attr", "error_reason"},
		RemoveOutputFields: []string{"attributes"},
		Deletable:          true,
	},
	{
		Kind:               resource.KindVNFFG,
		Short:              "Manage VNF forwarding graphs",
		ListColumns:        []string{"id", "name", "description", "status", "vnffgd_id"},
		RemoveOutputFields: []string{"attributes"},
		Deletable:          true,
	},
	{
		Kind:               resource.KindVNFFGD,
		Short:              "Manage VNF forwarding graph descriptors",
		ListColumns:        []string{"id", "name", "description"},
		RemoveOutputFields: []string{"attributes"},
		Deletable:          true,
	},
	{
		Kind:        resource.KindNFP,
		Short:       "Inspect network forwarding paths",
		ListColumns: []string{"id", "name", "status", "vnffg_id", "path_id"},
	},
	{
		Kind:        resource.KindSFC,
		Short:       "Inspect service function chains",
		ListColumns: []string{"id", "status", "nfp_id"},
	},
	{
		Kind:        resource.KindClassifier,
		Short:       "Inspect flow classifiers",
		ListColumns: []string{"id", "status", "nfp_id", "chain_id"},
	},
}

// Descriptors returns the registered descriptors in command order.
func Descriptors() []Descriptor {
	items := make([]Descriptor, len(descriptors))
	copy(items, descriptors)
	return items
}

func DescriptorFor(kind resource.Kind) (Descriptor, bool) {
	for _, item := range descriptors {
		if item.Kind == kind {
			return item, true
		}
	}
	return Descriptor{}, false
}

// WithoutOutputFields returns a copy of item without the descriptor's
// RemoveOutputFields.
func (d Descriptor) WithoutOutputFields(item server.Object) server.Object {
	if item == nil || len(d.RemoveOutputFields) == 0 {
		return item
	}

	trimmed := make(server.Object, len(item))
	for key, value := range item {
		trimmed[key] = value
	}
	for _, field := range d.RemoveOutputFields {
		delete(trimmed, field)
	}
	return trimmed
}

func RequiresContextBootstrapPath(commandPath string) bool {
	normalized := strings.TrimSpace(commandPath)
	for _, item := range descriptors {
		if strings.HasPrefix(normalized, RootCommandName+" "+string(item.Kind)+" ") {
			return true
		}
	}
	return false
}

// RequiresContextBootstrap also covers commands that only reach the server
// when a flag such as version --server is set.
func RequiresContextBootstrap(command *cobra.Command) bool {
	if command == nil {
		return false
	}
	if RequiresContextBootstrapPath(command.CommandPath()) {
		return true
	}
	flag := command.Flags().Lookup("server")
	return flag != nil && flag.Changed && strings.TrimSpace(command.CommandPath()) == RootCommandName+" version"
}

func EmitsExecutionStatusPath(path string) bool {
	normalized := strings.TrimSpace(path)
	if normalized == RootCommandName+" vnf scale" {
		return true
	}
	for _, item := range descriptors {
		if !item.Deletable {
			continue
		}
		prefix := RootCommandName + " " + string(item.Kind) + " "
		switch normalized {
		case prefix + "create", prefix + "update", prefix + "delete":
			return true
		}
	}
	return false
}

func OutputPolicyForPath(path string) OutputPolicy {
	switch strings.TrimSpace(path) {
	case RootCommandName + " config show":
		return OutputPolicyYAMLDefaultTextOrYAML
	case RootCommandName + " completion bash",
		RootCommandName + " completion zsh",
		RootCommandName + " completion fish",
		RootCommandName + " completion powershell":
		return OutputPolicyTextOnly
	default:
		return OutputPolicyStructured
	}
}
