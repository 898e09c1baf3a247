package common

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/crmarques/nfvctl/resource"
	"github.com/crmarques/nfvctl/server"
	"github.com/spf13/cobra"
)

const (
	completionTimeout        = 2 * time.Second
	maxCompletionSuggestions = 256
)

var outputCompletionValues = []string{
	OutputAuto,
	OutputText,
	OutputJSON,
	OutputYAML,
}

func completionContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, completionTimeout)
}

func RegisterOutputFlagCompletion(command *cobra.Command) {
	RegisterFlagValueCompletions(command, "output", outputCompletionValues)
}

func RegisterFlagValueCompletions(command *cobra.Command, flagName string, values []string) {
	_ = command.RegisterFlagCompletionFunc(flagName, func(
		_ *cobra.Command,
		_ []string,
		toComplete string,
	) ([]string, cobra.ShellCompDirective) {
		return CompleteValues(values, toComplete)
	})
}

func RegisterContextFlagCompletion(command *cobra.Command, deps CommandDependencies) {
	_ = command.RegisterFlagCompletionFunc("context", func(
		_ *cobra.Command,
		_ []string,
		toComplete string,
	) ([]string, cobra.ShellCompDirective) {
		return completeContextNames(deps, toComplete)
	})
}

func ContextNameArgCompletionFunc(
	deps CommandDependencies,
) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return completeContextNames(deps, toComplete)
	}
}

func completeContextNames(deps CommandDependencies, toComplete string) ([]string, cobra.ShellCompDirective) {
	service, err := RequireContexts(deps)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx, cancel := completionContext(context.Background())
	defer cancel()

	items, err := service.List(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return CompleteValues(names, toComplete)
}

// ResourceArgCompletionFunc suggests remote resource names of kind. When
// multi is false only the first positional argument is completed.
func ResourceArgCompletionFunc(
	deps CommandDependencies,
	kind resource.Kind,
	multi bool,
) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(command *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if !multi && len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return completeResourceNames(command.Context(), deps, kind, toComplete)
	}
}

func RegisterResourceFlagCompletion(command *cobra.Command, deps CommandDependencies, flagName string, kind resource.Kind) {
	_ = command.RegisterFlagCompletionFunc(flagName, func(
		command *cobra.Command,
		_ []string,
		toComplete string,
	) ([]string, cobra.ShellCompDirective) {
		return completeResourceNames(command.Context(), deps, kind, toComplete)
	})
}

func completeResourceNames(
	parent context.Context,
	deps CommandDependencies,
	kind resource.Kind,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	client, err := RequireClient(deps)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx, cancel := completionContext(parent)
	defer cancel()

	items, err := client.List(ctx, kind, server.ListOptions{Fields: []string{"id", "name"}})
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		if name, ok := item["name"]; ok && name != nil {
			names = append(names, fmt.Sprint(name))
		}
		if len(names) >= maxCompletionSuggestions {
			break
		}
	}
	return CompleteValues(names, toComplete)
}

func CompleteValues(values []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	trimmedPrefix := strings.TrimSpace(toComplete)
	unique := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmedValue := strings.TrimSpace(value)
		if trimmedValue == "" {
			continue
		}
		if trimmedPrefix != "" && !strings.HasPrefix(trimmedValue, trimmedPrefix) {
			continue
		}
		unique[trimmedValue] = struct{}{}
	}

	items := make([]string, 0, len(unique))
	for value := range unique {
		items = append(items, value)
	}
	sort.Strings(items)
	return items, cobra.ShellCompDirectiveNoFileComp
}
