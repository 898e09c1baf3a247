package vnffg

import (
	"strings"

	"github.com/crmarques/nfvctl/internal/app/body"
	"github.com/crmarques/nfvctl/internal/cli/common"
	resourcecmd "github.com/crmarques/nfvctl/internal/cli/resource"
	"github.com/crmarques/nfvctl/resource"
	"github.com/spf13/cobra"
)

var symmetricalCompletionValues = []string{"True", "False"}

func NewCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	return resourcecmd.NewCommand(
		deps,
		globalFlags,
		resourcecmd.MustDescriptor(resource.KindVNFFG),
		newCreateCommand(deps, globalFlags),
		newUpdateCommand(deps, globalFlags),
	)
}

func newCreateCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var req body.VNFFGCreateRequest
	vnffgdFlags := common.RefFlags{Label: "vnffgd"}

	command := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a VNF forwarding graph",
		Example: strings.Join([]string{
			"  nfvctl vnffg create fg1 --vnffgd-name fgd1 --vnf-mapping VNFD1:vnf1,VNFD2:vnf2 --symmetrical True",
		}, "\n"),
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			if req.VNFFGD, err = vnffgdFlags.Ref(true); err != nil {
				return err
			}
			req.Name = args[0]

			requestBody, err := body.BuildVNFFGCreate(command.Context(), body.Dependencies{Resolver: deps.Resolver}, req)
			if err != nil {
				return err
			}

			created, err := client.Create(command.Context(), resource.KindVNFFG, requestBody)
			if err != nil {
				return err
			}
			return resourcecmd.WriteCreated(command, globalFlags, resourcecmd.MustDescriptor(resource.KindVNFFG), created)
		},
	}

	common.BindRefFlags(command, deps, &vnffgdFlags, resource.KindVNFFGD)
	bindMappingFlags(command, &req.VNFMapping, &req.Symmetrical)
	command.Flags().StringVar(&req.Description, "description", "", "VNFFG description")
	command.Flags().StringVar(&req.TenantID, "tenant-id", "", "owner tenant ID")
	return command
}

func newUpdateCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var req body.VNFFGUpdateRequest

	command := &cobra.Command{
		Use:   "update <vnffg>",
		Short: "Update a VNF forwarding graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			requestBody, err := body.BuildVNFFGUpdate(command.Context(), body.Dependencies{Resolver: deps.Resolver}, req)
			if err != nil {
				return err
			}

			id, err := resourcecmd.ResolveArg(command, deps, resource.KindVNFFG, args[0])
			if err != nil {
				return err
			}

			updated, err := client.Update(command.Context(), resource.KindVNFFG, id, requestBody)
			if err != nil {
				return err
			}
			return resourcecmd.WriteUpdated(command, globalFlags, resourcecmd.MustDescriptor(resource.KindVNFFG), args[0], updated)
		},
	}

	bindMappingFlags(command, &req.VNFMapping, &req.Symmetrical)
	command.Flags().StringVar(&req.TenantID, "tenant-id", "", "owner tenant ID")
	command.ValidArgsFunction = common.ResourceArgCompletionFunc(deps, resource.KindVNFFG, false)
	return command
}

func bindMappingFlags(command *cobra.Command, mapping *string, symmetrical *string) {
	command.Flags().StringVar(mapping, "vnf-mapping", "", "logical VNFD names to VNF names or IDs: VNFD1:vnf1,VNFD2:vnf2")
	command.Flags().StringVar(symmetrical, "symmetrical", "", "whether the chain is symmetrical: True|False")
	common.RegisterFlagValueCompletions(command, "symmetrical", symmetricalCompletionValues)
}
