package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"latex-for-typora/internal/config"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the latex4typora version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", config.BinaryName, version)
		},
	}
}
