package resource

import (
	"fmt"
	"io"
	"strings"

	"github.com/crmarques/nfvctl/debugctx"
	"github.com/crmarques/nfvctl/internal/cli/commandmeta"
	"github.com/crmarques/nfvctl/internal/cli/common"
	"github.com/crmarques/nfvctl/server"
	"github.com/spf13/cobra"
)

func NewListCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags, descriptor commandmeta.Descriptor) *cobra.Command {
	var listFlags common.ListFlags
	collection := descriptor.Kind.Collection()

	command := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", collection),
		Example: strings.Join([]string{
			fmt.Sprintf("  nfvctl %s list", descriptor.Kind),
			fmt.Sprintf("  nfvctl %s list --filter status=ACTIVE --field id --field name", descriptor.Kind),
		}, "\n"),
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			opts, err := listFlags.Options()
			if err != nil {
				return err
			}

			client, err := common.RequireClient(deps)
			if err != nil {
				return err
			}

			items, err := client.List(command.Context(), descriptor.Kind, opts)
			if err != nil {
				return err
			}
			debugctx.Printf(command.Context(), "listed %d %s", len(items), collection)

			return WriteObjects(command, globalFlags, listColumns(descriptor.ListColumns, opts), items)
		},
	}

	common.BindListFlags(command, &listFlags, descriptor.Paginated)
	return command
}

// listColumns narrows the default columns to the requested fields. Requested
// fields unknown to the descriptor are appended in request order.
func listColumns(defaults []string, opts server.ListOptions) []string {
	if len(opts.Fields) == 0 {
		return defaults
	}

	requested := make(map[string]struct{}, len(opts.Fields))
	for _, field := range opts.Fields {
		requested[field] = struct{}{}
	}

	columns := make([]string, 0, len(opts.Fields))
	for _, column := range defaults {
		if _, ok := requested[column]; ok {
			columns = append(columns, column)
			delete(requested, column)
		}
	}
	for _, field := range opts.Fields {
		if _, ok := requested[field]; ok {
			columns = append(columns, field)
			delete(requested, field)
		}
	}
	return columns
}

func WriteObjects(command *cobra.Command, globalFlags *common.GlobalFlags, columns []string, items []server.Object) error {
	if items == nil {
		items = []server.Object{}
	}
	return common.WriteOutput(command, globalFlags.Output, items, func(w io.Writer, value []server.Object) error {
		return common.RenderObjects(w, columns, value, common.SupportsColor(w, globalFlags.NoColor))
	})
}

func WriteObject(command *cobra.Command, globalFlags *common.GlobalFlags, item server.Object) error {
	return common.WriteOutput(command, globalFlags.Output, item, func(w io.Writer, value server.Object) error {
		return common.RenderFields(w, value, common.SupportsColor(w, globalFlags.NoColor))
	})
}

// WriteMessage prints message in text mode only; structured output stays
// machine readable.
func WriteMessage(command *cobra.Command, globalFlags *common.GlobalFlags, message string) error {
	switch globalFlags.Output {
	case common.OutputJSON, common.OutputYAML:
		return nil
	}
	_, err := fmt.Fprintln(command.OutOrStdout(), message)
	return err
}
