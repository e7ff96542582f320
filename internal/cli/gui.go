package cli

import (
	"github.com/spf13/cobra"
)

// NewGUICommand creates the gui command.
func NewGUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the converter window",
		Long:  `Open the desktop window. This is also what runs when no subcommand is given.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd)
		},
	}
}

func runGUI(cmd *cobra.Command) error {
	cfg := GetConfig(cmd.Context())
	launchGUI(cfg, GetLogger(cmd.Context()))
	return nil
}
