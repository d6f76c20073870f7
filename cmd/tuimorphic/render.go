package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tuimorphic/internal/scene"
	"github.com/alexisbeaulieu97/tuimorphic/internal/ui/markup"
)

const (
	formatAuto  = "auto"
	formatANSI  = "ansi"
	formatPlain = "plain"
	formatHTML  = "html"
)

type renderOptions struct {
	format   string
	width    int
	fragment bool
}

func newRenderCmd(app *appContext) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a scene once and print it",
		Long: "Render a scene file (YAML or TOML) once and print it. Without a scene " +
			"argument the configured scene or the built-in showcase is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, app, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatAuto, "Output format: auto, ansi, plain or html")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Render width in columns (default: terminal width or 80)")
	cmd.Flags().BoolVar(&opts.fragment, "fragment", false, "With --format html, omit the surrounding document")

	return cmd
}

func runRender(cmd *cobra.Command, app *appContext, opts *renderOptions, args []string) error {
	switch opts.format {
	case formatAuto, formatANSI, formatPlain, formatHTML:
	default:
		return newCommandError("render", "choosing output format", fmt.Errorf("unknown format %q", opts.format),
			"Use one of auto, ansi, plain or html.")
	}
	if opts.width < 0 {
		return newCommandError("render", "choosing width", fmt.Errorf("width must not be negative, got %d", opts.width), "")
	}

	path := app.scenePath(args)
	sc, err := app.loadScene(path)
	if err != nil {
		return newCommandError("render", describeScene(path), err,
			"Run 'tuimorphic list' to see the supported widget kinds and variants.")
	}

	theme, err := app.resolveTheme(cmd, sc)
	if err != nil {
		return newCommandError("render", "resolving theme", err, "")
	}

	root, err := scene.Build(sc)
	if err != nil {
		return newCommandError("render", describeScene(path), err, "")
	}

	out := cmd.OutOrStdout()
	app.log.WithFields(map[string]any{"format": opts.format, "theme": theme.Name, "glyphs": theme.Glyphs.Name}).Debug("rendering scene")

	if opts.format == formatHTML {
		renderer := markup.NewRenderer(theme)
		if opts.fragment {
			fragment, err := renderer.Render(root)
			if err != nil {
				return newCommandError("render", "building markup", err, "")
			}
			_, err = fmt.Fprintln(out, string(fragment))
			return err
		}
		page, err := renderer.Page(sc.Title, root)
		if err != nil {
			return newCommandError("render", "building markup", err, "")
		}
		_, err = fmt.Fprint(out, page)
		return err
	}

	if opts.format == formatANSI && !app.settings.NoColor {
		previous := lipgloss.ColorProfile()
		lipgloss.SetColorProfile(termenv.ANSI)
		defer lipgloss.SetColorProfile(previous)
	}

	width := opts.width
	if width == 0 {
		width = terminalWidth(out)
	}

	view := renderFrame(root, theme, width, sc.Width)
	if opts.format == formatPlain {
		view = ansi.Strip(view)
	}
	_, err = fmt.Fprintln(out, view)
	return err
}

func describeScene(path string) string {
	if path == "" {
		return "loading built-in showcase"
	}
	return fmt.Sprintf("loading scene %s", path)
}
