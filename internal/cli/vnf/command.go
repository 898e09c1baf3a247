package vnf

import (
	"github.com/crmarques/nfvctl/internal/cli/common"
	resourcecmd "github.com/crmarques/nfvctl/internal/cli/resource"
	"github.com/crmarques/nfvctl/resource"
	"github.com/spf13/cobra"
)

func NewCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	return resourcecmd.NewCommand(
		deps,
		globalFlags,
		resourcecmd.MustDescriptor(resource.KindVNF),
		newCreateCommand(deps, globalFlags),
		newUpdateCommand(deps, globalFlags),
		newResourceListCommand(deps, globalFlags),
		newScaleCommand(deps, globalFlags),
	)
}
