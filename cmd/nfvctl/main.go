package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/crmarques/nfvctl/config"
	"github.com/crmarques/nfvctl/core"
	"github.com/crmarques/nfvctl/internal/cli"
)

func main() {
	args := os.Args[1:]

	contexts, err := core.NewContextService(core.BootstrapConfig{})
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeForError(err))
	}
	deps := cli.Dependencies{Contexts: contexts}

	if !shouldSkipContextBootstrap(args) {
		nfvContext, err := core.NewNFVContext(
			core.BootstrapConfig{},
			config.ContextSelection{Name: contextNameFromArgs(args)},
		)
		if err != nil {
			// Completion degrades to no suggestions instead of failing the shell.
			if !isShellCompletionInvocation(args) {
				_, _ = fmt.Fprintln(os.Stderr, err)
				os.Exit(exitCodeForError(err))
			}
		} else {
			deps = cli.Dependencies{
				Contexts: nfvContext.Contexts,
				Client:   nfvContext.Client,
				Resolver: nfvContext.Resolver,
			}
		}
	}

	if err := cli.Execute(deps); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func exitCodeForError(err error) int {
	return cli.ExitCodeForError(err)
}

func contextNameFromArgs(args []string) string {
	for idx := 0; idx < len(args); idx++ {
		current := args[idx]
		if current == "--" {
			return ""
		}

		if current == "--context" || current == "-c" {
			if idx+1 < len(args) {
				return args[idx+1]
			}
			return ""
		}
		if strings.HasPrefix(current, "--context=") {
			return strings.TrimPrefix(current, "--context=")
		}
	}

	return ""
}

func isHelpInvocation(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if args[0] == "help" {
		return true
	}

	for _, current := range args {
		if current == "--" {
			break
		}
		if current == "--help" || current == "-h" {
			return true
		}
	}

	return false
}

func isCompletionScriptInvocation(args []string) bool {
	return len(args) > 0 && args[0] == "completion"
}

func isShellCompletionInvocation(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return args[0] == "__complete" || args[0] == "__completeNoDesc"
}

// shellCompletionRequiresContextBootstrap inspects the command being
// completed; the last argument is the partial word.
func shellCompletionRequiresContextBootstrap(args []string) bool {
	if !isShellCompletionInvocation(args) || len(args) <= 2 {
		return false
	}

	targetArgs := args[1 : len(args)-1]
	lookupRoot := cli.NewRootCommand(cli.Dependencies{})
	command, _, err := lookupRoot.Find(targetArgs)
	if err != nil || command == nil || !command.Runnable() {
		return false
	}

	return cli.RequiresContextBootstrapPath(command.CommandPath())
}

func shouldSkipContextBootstrap(args []string) bool {
	if isHelpInvocation(args) {
		return true
	}
	if isCompletionScriptInvocation(args) {
		return true
	}
	if isShellCompletionInvocation(args) {
		return !shellCompletionRequiresContextBootstrap(args)
	}

	required, ok := resolveRunnableCommand(args)
	if !ok {
		return true
	}
	return !required
}

// resolveRunnableCommand reports whether args name a runnable command and
// whether that command needs a server connection. Invalid invocations skip
// the bootstrap so cobra can report them.
func resolveRunnableCommand(args []string) (bool, bool) {
	lookupRoot := cli.NewRootCommand(cli.Dependencies{})
	command, remainingArgs, err := lookupRoot.Find(args)
	if err != nil || command == nil || !command.Runnable() {
		return false, false
	}

	if err := command.ParseFlags(remainingArgs); err != nil {
		return false, false
	}
	if err := command.ValidateArgs(command.Flags().Args()); err != nil {
		return false, false
	}

	return cli.RequiresContextBootstrap(command), true
}
