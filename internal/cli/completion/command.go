package completion

import (
	"bytes"
	"io"

	"github.com/spf13/cobra"
)

type generator struct {
	shell     string
	short     string
	generate  func(root *cobra.Command, w io.Writer) error
	normalize func([]byte) []byte
}

var generators = []generator{
	{
		shell:     "bash",
		short:     "Generate Bash completion",
		generate:  func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletion(w) },
		normalize: normalizeBashFlagSuggestions,
	},
	{
		shell:     "zsh",
		short:     "Generate Zsh completion",
		generate:  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
		normalize: normalizeZshCompletion,
	},
	{
		shell:    "fish",
		short:    "Generate Fish completion",
		generate: func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	},
	{
		shell:    "powershell",
		short:    "Generate PowerShell completion",
		generate: func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
	},
}

// NewCommand builds the completion group. Completion scripts call back into
// the binary, so resource names are suggested from the active context.
func NewCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Args:  cobra.NoArgs,
	}
	for _, item := range generators {
		command.AddCommand(newShellCommand(item))
	}
	return command
}

func newShellCommand(item generator) *cobra.Command {
	return &cobra.Command{
		Use:   item.shell,
		Short: item.short,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			buffer := &bytes.Buffer{}
			if err := item.generate(command.Root(), buffer); err != nil {
				return err
			}

			script := buffer.Bytes()
			if item.normalize != nil {
				script = item.normalize(script)
			}
			_, err := command.OutOrStdout().Write(script)
			return err
		},
	}
}
