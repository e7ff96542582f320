package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrNoInput is returned when neither a file nor piped stdin was given.
var ErrNoInput = errors.New("no input: pass a file or pipe text on stdin")

// readInput reads the file named by args, or stdin when args is empty or "-".
// An interactive terminal on stdin is refused instead of waiting for EOF.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", "", ErrNoInput
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "stdin", nil
}

// writeOutput writes s to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, s string) error {
	if path == "" || path == "-" {
		if _, err := io.WriteString(cmd.OutOrStdout(), s); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(s), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Summary colors, taken from the window's palette
const (
	colorOK   = "#2ECC71"
	colorWarn = "#E67E22"
)

// printSummary writes one status line to stderr unless --quiet is set.
// Colors are only emitted when stderr is a color terminal.
func printSummary(cmd *cobra.Command, line string, warn bool) {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return
	}
	out := termenv.NewOutput(cmd.ErrOrStderr())
	hex := colorOK
	if warn {
		hex = colorWarn
	}
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), out.String(line).Foreground(out.Color(hex)).String())
}
