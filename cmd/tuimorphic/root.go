package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tuimorphic/internal/settings"
)

type rootFlags struct {
	configPath string
	theme      string
	glyphs     string
	noColor    bool
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "tuimorphic",
		Short:         "Tuimorphic renders terminal-aesthetic UI components",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", fmt.Sprintf("Config file (default %s)", settings.DefaultPath()))
	pf.StringVar(&flags.theme, "theme", "default", "Colour theme: default, mono or amber")
	pf.StringVar(&flags.glyphs, "glyphs", "unicode", "Glyph set: unicode or ascii")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colour output")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")

	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newVersionCmd())

	cmd.RunE = closingRunE(app, cmd.RunE)
	for _, sub := range cmd.Commands() {
		sub.RunE = closingRunE(app, sub.RunE)
	}

	return cmd
}

// closingRunE releases the app context after run, whether or not it failed.
func closingRunE(app *appContext, run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if closeErr := app.close(); err == nil {
			err = closeErr
		}
		return err
	}
}
