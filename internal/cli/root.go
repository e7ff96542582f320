// Package cli provides the command-line interface for latex-for-typora.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"latex-for-typora/internal/config"
	"latex-for-typora/internal/logger"
	"latex-for-typora/models"
	"latex-for-typora/ui"
)

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// launchGUI opens the window; tests replace it.
var launchGUI = ui.Run

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   config.BinaryName,
		Short: "Convert LaTeX math delimiters for Typora",
		Long: `Rewrites \[ … \] and \( … \) math delimiters as $ … $ so that text
copied from chat tools and PDFs renders in Typora.

Without a subcommand the desktop window opens.`,
		Version: config.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := models.LoadConfigFrom(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			log.Debug("config loaded from %s", cfg.ConfigPath())

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, log)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	// Global persistent flags; log-level and log-format override the config file
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/latex-for-typora/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (console|json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Do not print the summary line on stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"console", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewGUICommand())
	rootCmd.AddCommand(NewConvertCommand())
	rootCmd.AddCommand(NewStripCommand())
	rootCmd.AddCommand(NewVersionCommand(config.Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *models.Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*models.Config); ok {
			return c
		}
	}
	return models.DefaultConfig()
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *logger.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*logger.Logger); ok {
			return l
		}
	}
	return logger.Default()
}

// newLogger configures the process-wide logger from cfg and returns it.
func newLogger(cfg *models.Config, stderr io.Writer) (*logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)
	logger.SetOutput(logger.Writer(cfg.LogFormat, stderr))
	return logger.Default(), nil
}
