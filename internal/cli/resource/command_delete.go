package resource

import (
	"fmt"
	"strings"

	"github.com/crmarques/nfvctl/debugctx"
	"github.com/crmarques/nfvctl/internal/cli/commandmeta"
	"github.com/crmarques/nfvctl/internal/cli/common"
	"github.com/spf13/cobra"
)

func NewDeleteCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags, descriptor commandmeta.Descriptor) *cobra.Command {
	var assumeYes bool

	command := &cobra.Command{
		Use:   fmt.Sprintf("delete <%s>...", descriptor.Kind),
		Short: fmt.Sprintf("Delete one or more %s", descriptor.Kind.Collection()),
		Example: strings.Join([]string{
			fmt.Sprintf("  nfvctl %s delete my-%s", descriptor.Kind, descriptor.Kind),
			fmt.Sprintf("  nfvctl %s delete first second --yes", descriptor.Kind),
		}, "\n"),
		Args: cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			confirmed, err := common.ConfirmAction(
				command,
				fmt.Sprintf("Delete %s %s?", descriptor.Kind, strings.Join(args, ", ")),
				assumeYes,
			)
			if err != nil {
				return err
			}
			if !confirmed {
				return common.ValidationError("deletion cancelled", nil)
			}

			// Refs are processed in order and the first failure stops the run.
			for _, ref := range args {
				id, err := ResolveArg(command, deps, descriptor.Kind, ref)
				if err != nil {
					return err
				}
				if err := client.Delete(command.Context(), descriptor.Kind, id); err != nil {
					return err
				}
				debugctx.Printf(command.Context(), "deleted %s %s (%s)", descriptor.Kind, ref, id)
				if err := WriteMessage(command, globalFlags, fmt.Sprintf("Deleted %s: %s", descriptor.Kind, ref)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	command.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the delete confirmation prompt")
	command.ValidArgsFunction = common.ResourceArgCompletionFunc(deps, descriptor.Kind, true)
	return command
}
