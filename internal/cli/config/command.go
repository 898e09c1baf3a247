package config

import (
	"fmt"
	"io"
	"strings"

	configdomain "github.com/crmarques/nfvctl/config"
	"github.com/crmarques/nfvctl/internal/cli/common"
	"github.com/spf13/cobra"
)

const redactedValue = "<redacted>"

func NewCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	return newCommandWithPrompter(deps, globalFlags, terminalPrompter{})
}

func newCommandWithPrompter(
	deps common.CommandDependencies,
	globalFlags *common.GlobalFlags,
	prompter configPrompter,
) *cobra.Command {
	command := &cobra.Command{
		Use:   "config",
		Short: "Manage contexts",
		Args:  cobra.NoArgs,
	}

	command.AddCommand(
		newListCommand(deps, globalFlags),
		newCurrentCommand(deps, globalFlags),
		newShowCommand(deps, globalFlags, prompter),
		newUseCommand(deps, prompter),
	)

	return command
}

func newListCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contexts",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			contexts, err := common.RequireContexts(deps)
			if err != nil {
				return err
			}
			items, err := contexts.List(command.Context())
			if err != nil {
				return err
			}

			redacted := make([]configdomain.Context, 0, len(items))
			for _, item := range items {
				redacted = append(redacted, redactContext(item))
			}
			return common.WriteOutput(command, globalFlags.Output, redacted, func(w io.Writer, value []configdomain.Context) error {
				for _, item := range value {
					if _, writeErr := fmt.Fprintln(w, item.Name); writeErr != nil {
						return writeErr
					}
				}
				return nil
			})
		},
	}
}

func newCurrentCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Get current context",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			contexts, err := common.RequireContexts(deps)
			if err != nil {
				return err
			}
			current, err := contexts.GetCurrent(command.Context())
			if err != nil {
				return err
			}
			return common.WriteOutput(command, globalFlags.Output, redactContext(current), func(w io.Writer, value configdomain.Context) error {
				_, writeErr := fmt.Fprintln(w, value.Name)
				return writeErr
			})
		},
	}
}

func newShowCommand(
	deps common.CommandDependencies,
	globalFlags *common.GlobalFlags,
	prompter configPrompter,
) *cobra.Command {
	command := &cobra.Command{
		Use:   "show [name]",
		Short: "Show a resolved context with secrets redacted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			contexts, err := common.RequireContexts(deps)
			if err != nil {
				return err
			}

			name := ""
			if len(args) > 0 {
				name = strings.TrimSpace(args[0])
			} else if globalFlags != nil {
				name = strings.TrimSpace(globalFlags.Context)
			}
			if name == "" && prompter.IsInteractive(command) {
				name, err = selectContextForAction(command, contexts, prompter, "show")
				if err != nil {
					return err
				}
			}

			shown, err := contexts.ResolveContext(command.Context(), configdomain.ContextSelection{Name: name})
			if err != nil {
				return err
			}

			return common.WriteOutput(command, common.OutputYAML, redactContext(shown), nil)
		},
	}
	command.ValidArgsFunction = common.ContextNameArgCompletionFunc(deps)
	return command
}

func newUseCommand(deps common.CommandDependencies, prompter configPrompter) *cobra.Command {
	command := &cobra.Command{
		Use:   "use [name]",
		Short: "Set current context (interactive when name is omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			contexts, err := common.RequireContexts(deps)
			if err != nil {
				return err
			}

			name := ""
			if len(args) > 0 {
				name = args[0]
			} else {
				name, err = selectContextForAction(command, contexts, prompter, "use")
				if err != nil {
					return err
				}
			}
			return contexts.SetCurrent(command.Context(), name)
		},
	}
	command.ValidArgsFunction = common.ContextNameArgCompletionFunc(deps)
	return command
}

func selectContextForAction(
	command *cobra.Command,
	contexts configdomain.ContextService,
	prompter configPrompter,
	actionLabel string,
) (string, error) {
	items, err := contexts.List(command.Context())
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", common.ValidationError("no contexts available", nil)
	}
	if !prompter.IsInteractive(command) {
		return "", common.ValidationError(fmt.Sprintf("context name is required: nfvctl config %s <name>", actionLabel), nil)
	}

	options := make([]string, 0, len(items))
	for _, item := range items {
		options = append(options, item.Name)
	}
	return prompter.Select(command, "Choose context", options)
}

// redactContext masks credentials. Nested auth structs are copied so the
// caller's context stays intact.
func redactContext(cfg configdomain.Context) configdomain.Context {
	auth := cfg.Server.Auth
	if auth == nil {
		return cfg
	}

	redacted := *auth
	if auth.OAuth2 != nil {
		oauth := *auth.OAuth2
		oauth.ClientSecret = maskSecret(oauth.ClientSecret)
		redacted.OAuth2 = &oauth
	}
	if auth.BasicAuth != nil {
		basic := *auth.BasicAuth
		basic.Password = maskSecret(basic.Password)
		redacted.BasicAuth = &basic
	}
	if auth.BearerToken != nil {
		bearer := *auth.BearerToken
		bearer.Token = maskSecret(bearer.Token)
		redacted.BearerToken = &bearer
	}
	if auth.CustomHeader != nil {
		header := *auth.CustomHeader
		header.Token = maskSecret(header.Token)
		redacted.CustomHeader = &header
	}
	cfg.Server.Auth = &redacted
	return cfg
}

func maskSecret(value string) string {
	if value == "" {
		return ""
	}
	return redactedValue
}
