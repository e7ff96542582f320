package cli

import (
	"github.com/spf13/cobra"

	"latex-for-typora/internal/markdown"
	"latex-for-typora/internal/text"
	"latex-for-typora/services"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	var outPath string
	var strip bool

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: `Rewrite \[ \] and \( \) delimiters as $ $`,
		Long: `Convert reads a file (or stdin) and writes the text with every \[ … \]
and \( … \) pair rewritten as $ … $. Everything else is copied unchanged.

A summary with the number of formulas goes to stderr; delimiters that sit
inside Markdown code are reported there but still converted.`,
		Example: `  # Convert a note in place
  latex4typora convert note.md -o note.md

  # Convert the clipboard on macOS
  pbpaste | latex4typora convert | pbcopy

  # Convert and drop blank lines
  latex4typora convert --strip-blank answer.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, outPath, strip)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&strip, "strip-blank", false, "Also remove blank lines (default from strip_after_convert)")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, outPath string, strip bool) error {
	cfg := GetConfig(cmd.Context())
	log := GetLogger(cmd.Context()).With("command", "convert")

	input, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out, stats := text.ConvertWithStats(input)
	if strip || cfg.StripAfterConvert {
		out = text.StripBlankLines(out)
	}
	inCode := markdown.DelimitersInCode(input)
	log.Debug("%s: %d display, %d inline, %d in code", source, stats.Display, stats.Inline, inCode)

	if err := writeOutput(cmd, outPath, out); err != nil {
		return err
	}

	printSummary(cmd, services.ConvertStatus(stats, inCode), inCode > 0)
	return nil
}
