package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/crmarques/nfvctl/debugctx"
	"github.com/crmarques/nfvctl/faults"
	"github.com/crmarques/nfvctl/internal/cli/commandmeta"
	"github.com/crmarques/nfvctl/internal/cli/common"
	"github.com/crmarques/nfvctl/internal/cli/completion"
	"github.com/crmarques/nfvctl/internal/cli/config"
	resourcecmd "github.com/crmarques/nfvctl/internal/cli/resource"
	"github.com/crmarques/nfvctl/internal/cli/version"
	"github.com/crmarques/nfvctl/internal/cli/vim"
	"github.com/crmarques/nfvctl/internal/cli/vnf"
	"github.com/crmarques/nfvctl/internal/cli/vnffg"
	"github.com/crmarques/nfvctl/internal/cli/vnffgd"
	"github.com/crmarques/nfvctl/resource"
	"github.com/spf13/cobra"
)

func NewRootCommand(deps Dependencies) *cobra.Command {
	commandDeps := deps.commandDependencies()
	var globalFlags common.GlobalFlags

	root := &cobra.Command{
		Use:   commandmeta.RootCommandName,
		Short: "Client for NFV orchestration services",
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
		Args: cobra.NoArgs,
		PersistentPreRunE: func(command *cobra.Command, _ []string) error {
			if err := common.ValidateOutputFormat(globalFlags.Output); err != nil {
				return err
			}
			if err := common.ValidateOutputFormatForCommandPath(command.CommandPath(), globalFlags.Output); err != nil {
				return err
			}

			commandContext := command.Context()
			if commandContext == nil {
				commandContext = context.Background()
			}
			commandContext = common.WithContextName(commandContext, globalFlags.Context)
			commandContext = debugctx.WithEnabled(commandContext, globalFlags.Debug)
			commandContext = debugctx.WithLogger(commandContext, debugctx.NewLogger(command.ErrOrStderr(), globalFlags.Debug))
			command.SetContext(commandContext)

			debugctx.Printf(
				command.Context(),
				"root flags context=%q output=%q no_status=%t no_color=%t command=%q",
				globalFlags.Context,
				globalFlags.Output,
				globalFlags.NoStatus,
				globalFlags.NoColor,
				command.CommandPath(),
			)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	defaultHelpFunc := root.HelpFunc()
	root.SetHelpFunc(func(command *cobra.Command, args []string) {
		originalOut := command.OutOrStdout()
		originalErr := command.ErrOrStderr()

		buffer := &bytes.Buffer{}
		command.SetOut(buffer)
		command.SetErr(buffer)
		defaultHelpFunc(command, args)
		command.SetOut(originalOut)
		command.SetErr(originalErr)

		rendered := strings.TrimRight(buffer.String(), "\n")
		if rendered == "" {
			_, _ = fmt.Fprintln(originalOut)
			return
		}

		_, _ = fmt.Fprintln(originalOut, rendered)
	})

	common.BindGlobalFlags(root, &globalFlags)
	common.RegisterContextFlagCompletion(root, commandDeps)
	root.PersistentFlags().BoolP("help", "h", false, "help for command")

	root.AddGroup(
		&cobra.Group{ID: "resource", Title: "Resource Commands:"},
		&cobra.Group{ID: "other", Title: "Other Commands:"},
	)

	resourceCommands := []*cobra.Command{
		vim.NewCommand(commandDeps, &globalFlags),
		vnf.NewCommand(commandDeps, &globalFlags),
		vnffg.NewCommand(commandDeps, &globalFlags),
		vnffgd.NewCommand(commandDeps, &globalFlags),
	}
	for _, kind := range []resource.Kind{resource.KindNFP, resource.KindSFC, resource.KindClassifier} {
		resourceCommands = append(
			resourceCommands,
			resourcecmd.NewCommand(commandDeps, &globalFlags, resourcecmd.MustDescriptor(kind)),
		)
	}
	for _, command := range resourceCommands {
		command.GroupID = "resource"
		root.AddCommand(command)
	}

	otherCommands := []*cobra.Command{
		config.NewCommand(commandDeps, &globalFlags),
		completion.NewCommand(),
		version.NewCommand(commandDeps, &globalFlags),
	}
	for _, command := range otherCommands {
		command.GroupID = "other"
		root.AddCommand(command)
	}

	wrapUsageForMissingPositionalParameterErrors(root)

	return root
}

func wrapUsageForMissingPositionalParameterErrors(root *cobra.Command) {
	if root == nil {
		return
	}

	var wrapCommandTree func(*cobra.Command)
	wrapCommandTree = func(command *cobra.Command) {
		if command == nil {
			return
		}

		command.Args = wrapCommandErrorHandlerWithUsage(command.Args)
		command.PersistentPreRunE = wrapCommandErrorHandlerWithUsage(command.PersistentPreRunE)
		command.PreRunE = wrapCommandErrorHandlerWithUsage(command.PreRunE)
		command.RunE = wrapCommandErrorHandlerWithUsage(command.RunE)

		for _, child := range command.Commands() {
			wrapCommandTree(child)
		}
	}

	wrapCommandTree(root)
}

func wrapCommandErrorHandlerWithUsage(handler func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	if handler == nil {
		return nil
	}

	return func(command *cobra.Command, args []string) error {
		err := handler(command, args)
		if shouldPrintUsageForMissingPositionalParameter(command, err, args) {
			printCommandUsageOnError(command)
		}
		return err
	}
}

func shouldPrintUsageForMissingPositionalParameter(command *cobra.Command, err error, args []string) bool {
	if err == nil || len(args) != 0 {
		return false
	}
	if !commandDeclaresPositionalParameters(command) {
		return false
	}

	message := strings.TrimSpace(strings.ToLower(err.Error()))
	if message == "" {
		return false
	}

	if faults.IsCategory(err, faults.ValidationError) {
		if strings.HasPrefix(message, "flag ") {
			return false
		}
		if strings.Contains(message, "input is required") {
			return false
		}
		if strings.Contains(message, "interactive terminal is required") {
			return false
		}
		if strings.Contains(message, "value is required") {
			return false
		}
		return strings.Contains(message, " is required")
	}

	return strings.Contains(message, "arg(s)") && strings.Contains(message, "received 0")
}

func commandDeclaresPositionalParameters(command *cobra.Command) bool {
	if command == nil {
		return false
	}

	use := strings.TrimSpace(command.Use)
	return strings.Contains(use, "[") || strings.Contains(use, "<")
}

func printCommandUsageOnError(command *cobra.Command) {
	if command == nil {
		return
	}

	rendered := strings.TrimRight(command.UsageString(), "\n")
	if rendered == "" {
		return
	}

	_, _ = fmt.Fprintln(command.ErrOrStderr(), rendered)
}
