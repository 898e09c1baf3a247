package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/crmarques/nfvctl/config"
	"github.com/crmarques/nfvctl/faults"
	"github.com/crmarques/nfvctl/internal/cli/commandmeta"
	"github.com/crmarques/nfvctl/internal/cli/common"
	"github.com/crmarques/nfvctl/server"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Dependencies are injected by main. Client and Resolver stay nil for
// commands that never reach the server.
type Dependencies struct {
	Contexts config.ContextService
	Client   server.Client
	Resolver server.Resolver
}

func (d Dependencies) commandDependencies() common.CommandDependencies {
	return common.CommandDependencies{
		Contexts: d.Contexts,
		Client:   d.Client,
		Resolver: d.Resolver,
	}
}

// RequiresContextBootstrap reports whether command needs a resolved context
// and a server client before it runs.
func RequiresContextBootstrap(command *cobra.Command) bool {
	return commandmeta.RequiresContextBootstrap(command)
}

func RequiresContextBootstrapPath(commandPath string) bool {
	return commandmeta.RequiresContextBootstrapPath(commandPath)
}

func Execute(deps Dependencies) error {
	root := NewRootCommand(deps)
	command, err := root.ExecuteC()
	emitStatus := shouldEmitExecutionStatus(os.Args[1:], command)

	if err != nil {
		if emitStatus {
			writeExecutionErrorStatus(root.ErrOrStderr(), err)
		} else {
			_, _ = fmt.Fprintln(root.ErrOrStderr(), strings.TrimSpace(err.Error()))
		}
		return err
	}
	if emitStatus {
		writeExecutionOKStatus(root.ErrOrStderr())
	}
	return nil
}

func ExitCodeForError(err error) int {
	if err == nil {
		return 0
	}

	var typedErr *faults.TypedError
	if !errors.As(err, &typedErr) {
		return 1
	}

	switch typedErr.Category {
	case faults.ValidationError:
		return 2
	case faults.NotFoundError:
		return 3
	case faults.AuthError:
		return 4
	case faults.ConflictError:
		return 5
	case faults.TransportError:
		return 6
	case faults.ParseError:
		return 7
	default:
		return 1
	}
}

var (
	okStatusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStatusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

func writeExecutionOKStatus(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s command executed successfully.\n", statusLabel(w, "OK", okStatusStyle))
}

func writeExecutionErrorStatus(w io.Writer, err error) {
	description := "command execution failed"
	if err != nil {
		description = fmt.Sprintf("%s: %s", description, strings.TrimSpace(err.Error()))
	}
	_, _ = fmt.Fprintf(w, "%s %s.\n", statusLabel(w, "ERROR", errorStatusStyle), description)
}

func statusLabel(w io.Writer, status string, style lipgloss.Style) string {
	label := "[" + status + "]"
	if !common.SupportsColor(w, hasNoColorArgToken(os.Args[1:])) {
		return label
	}
	return style.Render(label)
}

func shouldEmitExecutionStatus(args []string, command *cobra.Command) bool {
	if shouldSuppressStatusMessage(args) {
		return false
	}
	if isHelpOrCompletionInvocation(args) {
		return false
	}
	return commandPathSupportsExecutionStatus(commandPath(command))
}

func commandPath(command *cobra.Command) string {
	if command == nil {
		return ""
	}
	return strings.TrimSpace(command.CommandPath())
}

func commandPathSupportsExecutionStatus(path string) bool {
	return commandmeta.EmitsExecutionStatusPath(path)
}

func shouldSuppressStatusMessage(args []string) bool {
	flags := pflag.NewFlagSet("status", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)

	var noStatus bool
	flags.BoolVarP(&noStatus, "no-status", "n", false, "hide status output")
	if err := flags.Parse(args); err != nil {
		return hasNoStatusArgToken(args)
	}
	return noStatus
}

func isHelpOrCompletionInvocation(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if args[0] == "help" {
		return true
	}
	switch args[0] {
	case "completion", "__complete", "__completeNoDesc":
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

func hasNoStatusArgToken(args []string) bool {
	for _, current := range args {
		if current == "--no-status" || current == "-n" {
			return true
		}
		if strings.HasPrefix(current, "--no-status=") {
			return strings.TrimSpace(strings.TrimPrefix(current, "--no-status=")) != "false"
		}
	}
	return false
}

func hasNoColorArgToken(args []string) bool {
	for _, current := range args {
		if current == "--no-color" {
			return true
		}
		if strings.HasPrefix(current, "--no-color=") {
			return strings.TrimSpace(strings.TrimPrefix(current, "--no-color=")) != "false"
		}
	}
	return false
}
