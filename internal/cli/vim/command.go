package vim

import (
	"strings"

	"github.com/crmarques/nfvctl/internal/app/body"
	"github.com/crmarques/nfvctl/internal/cli/common"
	resourcecmd "github.com/crmarques/nfvctl/internal/cli/resource"
	"github.com/crmarques/nfvctl/resource"
	"github.com/spf13/cobra"
)

func NewCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	descriptor := resourcecmd.MustDescriptor(resource.KindVIM)
	return resourcecmd.NewCommand(
		deps,
		globalFlags,
		descriptor,
		newCreateCommand(deps, globalFlags),
		newUpdateCommand(deps, globalFlags),
	)
}

func newCreateCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var req body.VIMCreateRequest

	command := &cobra.Command{
		Use:   "create <name>",
		Short: "Register a VIM",
		Example: strings.Join([]string{
			"  nfvctl vim create site-a --config-file vim_config.yaml --is-default",
		}, "\n"),
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			req.Name = args[0]
			requestBody, err := body.BuildVIMCreate(command.Context(), req)
			if err != nil {
				return err
			}

			created, err := client.Create(command.Context(), resource.KindVIM, requestBody)
			if err != nil {
				return err
			}
			return resourcecmd.WriteCreated(command, globalFlags, resourcecmd.MustDescriptor(resource.KindVIM), created)
		},
	}

	command.Flags().StringVar(&req.ConfigFile, "config-file", "", "YAML file with VIM auth_url, project and credentials")
	command.Flags().StringVar(&req.Description, "description", "", "VIM description")
	command.Flags().StringVar(&req.TenantID, "tenant-id", "", "owner tenant ID")
	command.Flags().BoolVar(&req.IsDefault, "is-default", false, "make this the default VIM")
	_ = command.MarkFlagFilename("config-file", "yaml", "yml")
	return command
}

func newUpdateCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var req body.VIMUpdateRequest

	command := &cobra.Command{
		Use:   "update <vim>",
		Short: "Update a VIM",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			requestBody, err := body.BuildVIMUpdate(command.Context(), req)
			if err != nil {
				return err
			}

			id, err := resourcecmd.ResolveArg(command, deps, resource.KindVIM, args[0])
			if err != nil {
				return err
			}

			updated, err := client.Update(command.Context(), resource.KindVIM, id, requestBody)
			if err != nil {
				return err
			}
			return resourcecmd.WriteUpdated(command, globalFlags, resourcecmd.MustDescriptor(resource.KindVIM), args[0], updated)
		},
	}

	command.Flags().StringVar(&req.ConfigFile, "config-file", "", "YAML file with VIM project and credentials")
	command.Flags().StringVar(&req.TenantID, "tenant-id", "", "owner tenant ID")
	command.Flags().BoolVar(&req.IsDefault, "is-default", false, "make this the default VIM")
	_ = command.MarkFlagFilename("config-file", "yaml", "yml")
	command.ValidArgsFunction = common.ResourceArgCompletionFunc(deps, resource.KindVIM, false)
	return command
}
