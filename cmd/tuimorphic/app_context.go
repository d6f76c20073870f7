package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tuimorphic/internal/logger"
	"github.com/alexisbeaulieu97/tuimorphic/internal/scene"
	"github.com/alexisbeaulieu97/tuimorphic/internal/settings"
	"github.com/alexisbeaulieu97/tuimorphic/internal/ui/components"
)

const fallbackWidth = 80

// appContext bundles what every subcommand needs once flags are parsed.
type appContext struct {
	settings *settings.Settings
	log      *logger.Logger
	logFile  *os.File
	restore  func()
}

func (a *appContext) setup(cmd *cobra.Command, flags *rootFlags) error {
	s, err := settings.Load(flags.configPath, cmd.Flags())
	if err != nil {
		return newCommandError("load settings", "resolving configuration", err,
			"Check the config file and any TUIMORPHIC_* environment variables.")
	}
	a.settings = s

	var writer io.Writer = cmd.ErrOrStderr()
	if s.Log.File != "" {
		file, err := os.OpenFile(s.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return newCommandError("open log file", s.Log.File, err, "Choose a writable path for --log-file.")
		}
		a.logFile = file
		writer = file
	}

	log, err := logger.New(logger.Options{Level: s.Log.Level, HumanReadable: s.Log.Human, Writer: writer})
	if err != nil {
		return newCommandError("create logger", fmt.Sprintf("log level %q", s.Log.Level), err,
			"Use one of debug, info, warn or error.")
	}
	a.log = log.WithFields(map[string]any{"command": cmd.Name()})

	if s.NoColor {
		a.restore = disableColor()
	}
	return nil
}

func (a *appContext) close() error {
	if a.restore != nil {
		a.restore()
		a.restore = nil
	}
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// interactiveLogger keeps logs off the screen a full-screen program owns.
func (a *appContext) interactiveLogger() *logger.Logger {
	if a.logFile == nil {
		return logger.Nop()
	}
	return a.log
}

// disableColor turns colour off for both renderers and returns a func that
// puts the previous settings back.
func disableColor() func() {
	profile, noColor := lipgloss.ColorProfile(), color.NoColor
	lipgloss.SetColorProfile(termenv.Ascii)
	color.NoColor = true
	return func() {
		lipgloss.SetColorProfile(profile)
		color.NoColor = noColor
	}
}

// scenePath picks the scene argument, then the configured scene. Empty means
// the built-in showcase.
func (a *appContext) scenePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.settings.Scene
}

func (a *appContext) loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		a.log.Debug("using built-in showcase scene")
		return scene.Default(), nil
	}
	a.log.WithFields(map[string]any{"scene": path}).Debug("loading scene")
	return scene.Load(path)
}

// themeNames resolves theme and glyph names: an explicit flag wins over the
// scene, and the scene wins over config and environment.
func (a *appContext) themeNames(cmd *cobra.Command, sc *scene.Scene) (string, string) {
	theme, glyphs := a.settings.Theme, a.settings.Glyphs
	if sc != nil && sc.Theme != "" && !cmd.Flags().Changed("theme") {
		theme = sc.Theme
	}
	if sc != nil && sc.Glyphs != "" && !cmd.Flags().Changed("glyphs") {
		glyphs = sc.Glyphs
	}
	return theme, glyphs
}

func (a *appContext) resolveTheme(cmd *cobra.Command, sc *scene.Scene) (components.Theme, error) {
	themeName, glyphName := a.themeNames(cmd, sc)
	theme, err := components.ThemeByName(themeName)
	if err != nil {
		return components.Theme{}, err
	}
	glyphs, err := components.GlyphsByName(glyphName)
	if err != nil {
		return components.Theme{}, err
	}
	return theme.WithGlyphs(glyphs), nil
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// terminalWidth reports the width of writer when it is a terminal.
func terminalWidth(writer io.Writer) int {
	if file, ok := writer.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallbackWidth
}

func renderFrame(root *components.Stack, theme components.Theme, width, maxWidth int) string {
	ctx := components.DefaultContext().WithTheme(theme).WithParentWidth(width)
	if maxWidth > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(maxWidth))
	}
	return root.ViewWithContext(ctx)
}
