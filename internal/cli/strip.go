package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"latex-for-typora/internal/config"
	"latex-for-typora/internal/text"
)

// NewStripCommand creates the strip command.
func NewStripCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "strip [file]",
		Short: "Remove blank and whitespace-only lines",
		Long: `Strip reads a file (or stdin) and writes it back without lines that are
empty or contain only whitespace. Delimiters are left alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(cmd, args, outPath)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

func runStrip(cmd *cobra.Command, args []string, outPath string) error {
	log := GetLogger(cmd.Context()).With("command", "strip")

	input, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	before := len(text.SplitLines(input))
	out := text.StripBlankLines(input)
	after := len(text.SplitLines(out))
	log.Debug("%s: %d -> %d lines", source, before, after)

	if err := writeOutput(cmd, outPath, out); err != nil {
		return err
	}

	printSummary(cmd, fmt.Sprintf("%s: %d of %d lines kept", config.StatusStripped, after, before), false)
	return nil
}
