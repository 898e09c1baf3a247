package common

import (
	"fmt"

	"github.com/crmarques/nfvctl/internal/app/body"
	"github.com/crmarques/nfvctl/resource"
	"github.com/crmarques/nfvctl/server"
	"github.com/spf13/cobra"
)

var sortDirCompletionValues = []string{"asc", "desc"}

type GlobalFlags struct {
	Context  string
	Debug    bool
	NoStatus bool
	NoColor  bool
	Output   string
}

type ListFlags struct {
	Fields      []string
	Filters     []string
	ShowDetails bool
	PageSize    int
	SortKeys    []string
	SortDirs    []string
}

// RefFlags holds a --<label>-id / --<label>-name flag pair.
type RefFlags struct {
	Label string
	ID    string
	Name  string
}

func BindGlobalFlags(command *cobra.Command, flags *GlobalFlags) {
	command.PersistentFlags().StringVarP(&flags.Context, "context", "c", "", "context name")
	command.PersistentFlags().BoolVarP(&flags.Debug, "debug", "d", false, "enable debug output")
	command.PersistentFlags().BoolVarP(&flags.NoStatus, "no-status", "n", false, "hide status output")
	command.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "disable color output")
	command.PersistentFlags().StringVarP(&flags.Output, "output", "o", OutputAuto, "output format: auto|text|json|yaml")
	RegisterOutputFlagCompletion(command)
}

// BindListFlags registers the list query flags. Paging and sorting flags are
// only bound when the server supports them for the listed collection.
func BindListFlags(command *cobra.Command, flags *ListFlags, paginated bool) {
	command.Flags().StringArrayVarP(&flags.Fields, "field", "F", nil, "field to return from the server (repeatable)")
	command.Flags().StringArrayVar(&flags.Filters, "filter", nil, "server-side filter as key=value (repeatable)")
	command.Flags().BoolVarP(&flags.ShowDetails, "show-details", "D", false, "request detailed resource views")
	if !paginated {
		return
	}
	command.Flags().IntVarP(&flags.PageSize, "page-size", "P", 0, "maximum number of items per request")
	command.Flags().StringArrayVar(&flags.SortKeys, "sort-key", nil, "sort key (repeatable)")
	command.Flags().StringArrayVar(&flags.SortDirs, "sort-dir", nil, "sort direction per --sort-key: asc|desc (repeatable)")
	RegisterFlagValueCompletions(command, "sort-dir", sortDirCompletionValues)
}

func (f ListFlags) Options() (server.ListOptions, error) {
	return body.BuildListOptions(body.ListRequest{
		Fields:      f.Fields,
		Filters:     f.Filters,
		ShowDetails: f.ShowDetails,
		PageSize:    f.PageSize,
		SortKeys:    f.SortKeys,
		SortDirs:    f.SortDirs,
	})
}

func BindFieldFlags(command *cobra.Command, fields *[]string) {
	command.Flags().StringArrayVarP(fields, "field", "F", nil, "field to return from the server (repeatable)")
}

func BindRefFlags(command *cobra.Command, deps CommandDependencies, flags *RefFlags, kind resource.Kind) {
	command.Flags().StringVar(&flags.ID, flags.Label+"-id", "", fmt.Sprintf("%s ID", kind.Title()))
	command.Flags().StringVar(&flags.Name, flags.Label+"-name", "", fmt.Sprintf("%s name", kind.Title()))
	RegisterResourceFlagCompletion(command, deps, flags.Label+"-name", kind)
}

func (f RefFlags) Ref(required bool) (resource.Ref, error) {
	return resource.NewRef(f.Label, f.ID, f.Name, required)
}
