package vnf

import (
	"fmt"
	"strings"

	"github.com/crmarques/nfvctl/internal/app/body"
	"github.com/crmarques/nfvctl/internal/cli/common"
	resourcecmd "github.com/crmarques/nfvctl/internal/cli/resource"
	"github.com/crmarques/nfvctl/resource"
	"github.com/spf13/cobra"
)

var scalingTypeCompletionValues = []string{"out", "in"}

func newScaleCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var req body.VNFScaleRequest
	vnfFlags := common.RefFlags{Label: "vnf"}

	command := &cobra.Command{
		Use:   "scale",
		Short: "Scale a VNF in or out",
		Example: strings.Join([]string{
			"  nfvctl vnf scale --vnf-name web --scaling-policy-name SP1 --scaling-type out",
		}, "\n"),
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			if req.VNF, err = vnfFlags.Ref(true); err != nil {
				return err
			}

			scaleBody, err := body.BuildVNFScale(command.Context(), body.Dependencies{Resolver: deps.Resolver}, req)
			if err != nil {
				return err
			}
			vnfID, actionBody, err := body.SplitScaleTarget(scaleBody)
			if err != nil {
				return err
			}

			if err := client.ScaleVNF(command.Context(), vnfID, actionBody); err != nil {
				return err
			}
			return resourcecmd.WriteMessage(command, globalFlags, fmt.Sprintf("Scaling %s requested for vnf: %s", req.Type, req.VNF))
		},
	}

	common.BindRefFlags(command, deps, &vnfFlags, resource.KindVNF)
	command.Flags().StringVar(&req.Policy, "scaling-policy-name", "", "scaling policy name from the VNFD")
	command.Flags().StringVar(&req.Type, "scaling-type", "", "scaling direction: out|in")
	common.RegisterFlagValueCompletions(command, "scaling-type", scalingTypeCompletionValues)
	return command
}
