package resource

import (
	"fmt"

	"github.com/crmarques/nfvctl/internal/cli/commandmeta"
	"github.com/crmarques/nfvctl/internal/cli/common"
	"github.com/crmarques/nfvctl/resource"
	"github.com/crmarques/nfvctl/server"
	"github.com/spf13/cobra"
)

// WriteCreated prints a created object without the descriptor's hidden
// output fields.
func WriteCreated(command *cobra.Command, globalFlags *common.GlobalFlags, descriptor commandmeta.Descriptor, item server.Object) error {
	if err := WriteMessage(command, globalFlags, fmt.Sprintf("Created a new %s:", descriptor.Kind)); err != nil {
		return err
	}
	return WriteObject(command, globalFlags, descriptor.WithoutOutputFields(item))
}

// WriteUpdated prints a one-line confirmation in text mode and the updated
// object for structured output.
func WriteUpdated(command *cobra.Command, globalFlags *common.GlobalFlags, descriptor commandmeta.Descriptor, ref string, item server.Object) error {
	switch globalFlags.Output {
	case common.OutputJSON, common.OutputYAML:
		return WriteObject(command, globalFlags, descriptor.WithoutOutputFields(item))
	}
	return WriteMessage(command, globalFlags, fmt.Sprintf("Updated %s: %s", descriptor.Kind, ref))
}

func MustDescriptor(kind resource.Kind) commandmeta.Descriptor {
	descriptor, ok := commandmeta.DescriptorFor(kind)
	if !ok {
		panic(fmt.Sprintf("no command descriptor registered for %q", kind))
	}
	return descriptor
}
