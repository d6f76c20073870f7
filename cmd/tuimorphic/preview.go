package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tuimorphic/internal/preview"
	"github.com/alexisbeaulieu97/tuimorphic/internal/scene"
)

type previewOptions struct {
	watch  bool
	static bool
}

func newPreviewCmd(app *appContext) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [scene]",
		Short: "Open an interactive preview of a scene",
		Long: "Open a full-screen preview of a scene. Press t to cycle themes, g to " +
			"toggle ASCII glyphs, r to reload and q to quit. With --watch the scene is " +
			"reloaded whenever its file changes.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, app, args)
		},
	}

	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the scene when its file changes")
	cmd.Flags().BoolVar(&opts.static, "static", false, "Print a single frame instead of opening the preview")

	return cmd
}

func runPreview(cmd *cobra.Command, app *appContext, args []string) error {
	path := app.scenePath(args)
	sc, err := app.loadScene(path)
	if err != nil {
		return newCommandError("preview", describeScene(path), err,
			"Run 'tuimorphic list' to see the supported widget kinds and variants.")
	}

	out := cmd.OutOrStdout()
	if app.settings.Preview.Static || !isTerminal(out) {
		app.log.Debug("output is not interactive, printing a single frame")
		return printStatic(cmd, app, sc)
	}

	themeName, glyphName := app.themeNames(cmd, sc)
	log := app.interactiveLogger()

	var watcher *preview.Watcher
	if app.settings.Preview.Watch {
		if path == "" {
			app.log.Warn("--watch needs a scene file; the built-in showcase is not watched")
		} else {
			watcher, err = preview.NewWatcher(path)
			if err != nil {
				return newCommandError("preview", fmt.Sprintf("watching %s", path), err, "")
			}
		}
	}

	first := sc
	model, err := preview.NewModel(preview.Options{
		Load: func() (*scene.Scene, error) {
			if first != nil {
				loaded := first
				first = nil
				return loaded, nil
			}
			return app.loadScene(path)
		},
		Theme:   themeName,
		Glyphs:  glyphName,
		Watcher: watcher,
		Logger:  log,
	})
	if err != nil {
		_ = watcher.Close()
		return newCommandError("preview", describeScene(path), err, "")
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(out), tea.WithInput(cmd.InOrStdin()))
	_, runErr := program.Run()
	_ = watcher.Close()
	if runErr != nil {
		return newCommandError("preview", "running the preview", runErr, "")
	}
	return nil
}

func printStatic(cmd *cobra.Command, app *appContext, sc *scene.Scene) error {
	theme, err := app.resolveTheme(cmd, sc)
	if err != nil {
		return newCommandError("preview", "resolving theme", err, "")
	}
	root, err := scene.Build(sc)
	if err != nil {
		return newCommandError("preview", "building scene", err, "")
	}
	out := cmd.OutOrStdout()
	_, err = fmt.Fprintln(out, renderFrame(root, theme, terminalWidth(out), sc.Width))
	return err
}
