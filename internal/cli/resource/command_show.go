package resource

import (
	"fmt"

	"github.com/crmarques/nfvctl/internal/cli/commandmeta"
	"github.com/crmarques/nfvctl/internal/cli/common"
	"github.com/crmarques/nfvctl/resource"
	"github.com/spf13/cobra"
)

func NewShowCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags, descriptor commandmeta.Descriptor) *cobra.Command {
	var fields []string

	command := &cobra.Command{
		Use:   fmt.Sprintf("show <%s>", descriptor.Kind),
		Short: fmt.Sprintf("Display %s details", descriptor.Kind.Title()),
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			id, err := ResolveArg(command, deps, descriptor.Kind, args[0])
			if err != nil {
				return err
			}

			item, err := client.Show(command.Context(), descriptor.Kind, id, compactFields(fields))
			if err != nil {
				return err
			}
			return WriteObject(command, globalFlags, item)
		},
	}

	common.BindFieldFlags(command, &fields)
	command.ValidArgsFunction = common.ResourceArgCompletionFunc(deps, descriptor.Kind, false)
	return command
}

// ResolveArg turns a positional name-or-ID argument into an ID.
func ResolveArg(command *cobra.Command, deps common.CommandDependencies, kind resource.Kind, nameOrID string) (string, error) {
	resolver, err := common.RequireResolver(deps)
	if err != nil {
		return "", err
	}
	return resolver.Resolve(command.Context(), kind, nameOrID)
}

func compactFields(fields []string) []string {
	compacted := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != "" {
			compacted = append(compacted, field)
		}
	}
	if len(compacted) == 0 {
		return nil
	}
	return compacted
}
