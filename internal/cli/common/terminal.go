package common

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func IsInteractiveTerminal(command *cobra.Command) bool {
	in, ok := command.InOrStdin().(*os.File)
	if !ok || in == nil {
		return false
	}
	return term.IsTerminal(int(in.Fd())) && IsTerminalWriter(command.OutOrStdout())
}

func IsTerminalWriter(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok || file == nil {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// SupportsColor honours --no-color, NO_COLOR and dumb terminals.
func SupportsColor(writer io.Writer, noColor bool) bool {
	if noColor || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return false
	}
	if !IsTerminalWriter(writer) {
		return false
	}
	termName := strings.TrimSpace(strings.ToLower(os.Getenv("TERM")))
	return termName != "" && termName != "dumb"
}
