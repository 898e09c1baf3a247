package vnffgd

import (
	"fmt"
	"io"
	"strings"

	"github.com/crmarques/nfvctl/internal/app/body"
	"github.com/crmarques/nfvctl/internal/cli/common"
	resourcecmd "github.com/crmarques/nfvctl/internal/cli/resource"
	"github.com/crmarques/nfvctl/resource"
	"github.com/crmarques/nfvctl/yamlutil"
	"github.com/spf13/cobra"
)

func NewCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	return resourcecmd.NewCommand(
		deps,
		globalFlags,
		resourcecmd.MustDescriptor(resource.KindVNFFGD),
		newCreateCommand(deps, globalFlags),
		newTemplateShowCommand(deps, globalFlags),
	)
}

func newCreateCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var req body.VNFFGDCreateRequest

	command := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a VNF forwarding graph descriptor",
		Example: strings.Join([]string{
			"  nfvctl vnffgd create fgd1 --vnffgd-file vnffgd.yaml",
		}, "\n"),
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			req.Name = args[0]
			requestBody, err := body.BuildVNFFGDCreate(req)
			if err != nil {
				return err
			}

			created, err := client.Create(command.Context(), resource.KindVNFFGD, requestBody)
			if err != nil {
				return err
			}
			return resourcecmd.WriteCreated(command, globalFlags, resourcecmd.MustDescriptor(resource.KindVNFFGD), created)
		},
	}

	command.Flags().StringVar(&req.TemplateFile, "vnffgd-file", "", "YAML file with the VNFFGD template")
	command.Flags().StringVar(&req.Template, "vnffgd", "", "VNFFGD template as a YAML string")
	command.Flags().StringVar(&req.Description, "description", "", "VNFFGD description")
	command.Flags().StringVar(&req.TenantID, "tenant-id", "", "owner tenant ID")
	_ = command.MarkFlagFilename("vnffgd-file", "yaml", "yml")
	return command
}

func newTemplateShowCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	command := &cobra.Command{
		Use:   "template-show <vnffgd>",
		Short: "Display the template of a VNFFGD",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			id, err := resourcecmd.ResolveArg(command, deps, resource.KindVNFFGD, args[0])
			if err != nil {
				return err
			}

			shown, err := client.Show(command.Context(), resource.KindVNFFGD, id, nil)
			if err != nil {
				return err
			}

			template, ok := body.ExtractVNFFGDTemplate(shown)
			if !ok {
				_, err := fmt.Fprintln(command.OutOrStdout(), body.VNFFGDTemplateUnavailable)
				return err
			}
			return common.WriteOutput(command, globalFlags.Output, template, writeTemplateText)
		},
	}

	command.ValidArgsFunction = common.ResourceArgCompletionFunc(deps, resource.KindVNFFGD, false)
	return command
}

func writeTemplateText(w io.Writer, template any) error {
	if text, ok := template.(string); ok {
		_, err := fmt.Fprintln(w, text)
		return err
	}

	encoded, err := yamlutil.MarshalWithIndent(template, 2)
	if err != nil {
		return err
	}
	_, err = w.Write(encoded)
	return err
}
