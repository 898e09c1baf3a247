package resource

import (
	"github.com/crmarques/nfvctl/internal/cli/commandmeta"
	"github.com/crmarques/nfvctl/internal/cli/common"
	"github.com/spf13/cobra"
)

// NewCommand builds the command group of descriptor with its generic list
// and show commands, plus delete when the kind is deletable. extra commands
// are appended after the generic ones.
func NewCommand(
	deps common.CommandDependencies,
	globalFlags *common.GlobalFlags,
	descriptor commandmeta.Descriptor,
	extra ...*cobra.Command,
) *cobra.Command {
	command := &cobra.Command{
		Use:   string(descriptor.Kind),
		Short: descriptor.Short,
		Args:  cobra.NoArgs,
	}

	command.AddCommand(
		NewListCommand(deps, globalFlags, descriptor),
		NewShowCommand(deps, globalFlags, descriptor),
	)
	if descriptor.Deletable {
		command.AddCommand(NewDeleteCommand(deps, globalFlags, descriptor))
	}
	command.AddCommand(extra...)

	return command
}
