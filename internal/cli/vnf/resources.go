package vnf

import (
	"github.com/crmarques/nfvctl/debugctx"
	"github.com/crmarques/nfvctl/internal/cli/commandmeta"
	"github.com/crmarques/nfvctl/internal/cli/common"
	resourcecmd "github.com/crmarques/nfvctl/internal/cli/resource"
	"github.com/crmarques/nfvctl/resource"
	"github.com/spf13/cobra"
)

func newResourceListCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var listFlags common.ListFlags

	command := &cobra.Command{
		Use:   "resource-list <vnf>",
		Short: "List the infrastructure resources of a VNF",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			opts, err := listFlags.Options()
			if err != nil {
				return err
			}

			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			vnfID, err := resourcecmd.ResolveArg(command, deps, resource.KindVNF, args[0])
			if err != nil {
				return err
			}

			items, err := client.ListVNFResources(command.Context(), vnfID, opts)
			if err != nil {
				return err
			}
			debugctx.Printf(command.Context(), "vnf %s has %d resources", vnfID, len(items))

			return resourcecmd.WriteObjects(command, globalFlags, commandmeta.VNFResourceColumns, items)
		},
	}

	common.BindListFlags(command, &listFlags, true)
	command.ValidArgsFunction = common.ResourceArgCompletionFunc(deps, resource.KindVNF, false)
	return command
}
