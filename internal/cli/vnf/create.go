package vnf

import (
	"strings"

	"github.com/crmarques/nfvctl/internal/app/body"
	"github.com/crmarques/nfvctl/internal/cli/common"
	resourcecmd "github.com/crmarques/nfvctl/internal/cli/resource"
	"github.com/crmarques/nfvctl/resource"
	"github.com/spf13/cobra"
)

func newCreateCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var req body.VNFCreateRequest
	vnfdFlags := common.RefFlags{Label: "vnfd"}
	vimFlags := common.RefFlags{Label: "vim"}

	command := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a VNF",
		Example: strings.Join([]string{
			"  nfvctl vnf create web --vnfd-name web-vnfd",
			"  nfvctl vnf create web --vnfd-id 6e5a3f0b-5a8e-4c3a-9a3e-3d2f7b1c9e10 --vim-name site-a --param-file params.yaml",
		}, "\n"),
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			if req.VNFD, err = vnfdFlags.Ref(true); err != nil {
				return err
			}
			if req.VIM, err = vimFlags.Ref(false); err != nil {
				return err
			}
			req.Name = args[0]

			requestBody, err := body.BuildVNFCreate(command.Context(), body.Dependencies{Resolver: deps.Resolver}, req)
			if err != nil {
				return err
			}

			created, err := client.Create(command.Context(), resource.KindVNF, requestBody)
			if err != nil {
				return err
			}
			return resourcecmd.WriteCreated(command, globalFlags, resourcecmd.MustDescriptor(resource.KindVNF), created)
		},
	}

	common.BindRefFlags(command, deps, &vnfdFlags, resource.KindVNFD)
	common.BindRefFlags(command, deps, &vimFlags, resource.KindVIM)
	command.Flags().StringVar(&req.VIMRegionName, "vim-region-name", "", "VIM region to place the VNF in")
	command.Flags().StringVar(&req.Config.File, "config-file", "", "YAML file with the VNF configuration")
	command.Flags().StringVar(&req.Config.Literal, "config", "", "VNF configuration as a YAML string (deprecated, use --config-file)")
	command.Flags().StringVar(&req.ParamFile, "param-file", "", "YAML file with VNFD parameter values")
	command.Flags().StringVar(&req.Description, "description", "", "VNF description")
	command.Flags().StringVar(&req.TenantID, "tenant-id", "", "owner tenant ID")
	_ = command.MarkFlagFilename("config-file", "yaml", "yml")
	_ = command.MarkFlagFilename("param-file", "yaml", "yml")
	return command
}

func newUpdateCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var req body.VNFUpdateRequest

	command := &cobra.Command{
		Use:   "update <vnf>",
		Short: "Update a VNF configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			requestBody, err := body.BuildVNFUpdate(command.Context(), req)
			if err != nil {
				return err
			}

			id, err := resourcecmd.ResolveArg(command, deps, resource.KindVNF, args[0])
			if err != nil {
				return err
			}

			updated, err := client.Update(command.Context(), resource.KindVNF, id, requestBody)
			if err != nil {
				return err
			}
			return resourcecmd.WriteUpdated(command, globalFlags, resourcecmd.MustDescriptor(resource.KindVNF), args[0], updated)
		},
	}

	command.Flags().StringVar(&req.Config.File, "config-file", "", "YAML file with the VNF configuration")
	command.Flags().StringVar(&req.Config.Literal, "config", "", "VNF configuration as a YAML string (deprecated, use --config-file)")
	command.Flags().StringVar(&req.TenantID, "tenant-id", "", "owner tenant ID")
	_ = command.MarkFlagFilename("config-file", "yaml", "yml")
	command.ValidArgsFunction = common.ResourceArgCompletionFunc(deps, resource.KindVNF, false)
	return command
}
