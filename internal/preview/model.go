// Package preview mounts a component tree into a bubbletea program: it
// drives spinner timers, lets the user flip theme and glyph set, and
// reloads the scene on request or when the file changes.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuimorphic/internal/logger"
	"github.com/alexisbeaulieu97/tuimorphic/internal/scene"
	"github.com/alexisbeaulieu97/tuimorphic/internal/ui/components"
)

// Loader produces a fresh scene on every call.
type Loader func() (*scene.Scene, error)

// Options configures a preview Model.
type Options struct {
	Load   Loader
	Theme  string
	Glyphs string
	// Watcher is optional; when set its changes trigger reloads. The model
	// closes it on quit.
	Watcher *Watcher
	Logger  *logger.Logger
}

// Model is the preview program state.
type Model struct {
	keys KeyMap
	help help.Model

	load     Loader
	watcher  *Watcher
	log      *logger.Logger
	title    string
	maxWidth int
	root     *components.Stack
	spinners []*components.Spinner
	err      error

	themes     []string
	themeIndex int
	ascii      bool

	width    int
	height   int
	quitting bool
}

// NewModel loads the first scene. An error here is fatal for the caller;
// later reload errors are shown inside the preview instead.
func NewModel(opts Options) (Model, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	m := Model{
		keys:    DefaultKeyMap(),
		help:    help.New(),
		load:    opts.Load,
		watcher: opts.Watcher,
		log:     log,
		themes:  components.ThemeNames(),
		ascii:   opts.Glyphs == "ascii",
		width:   80,
		height:  24,
	}
	for i, name := range m.themes {
		if name == opts.Theme {
			m.themeIndex = i
		}
	}

	sc, err := m.load()
	if err != nil {
		return Model{}, err
	}
	if err := m.mount(sc); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init starts every spinner and the watcher.
func (m Model) Init() tea.Cmd {
	cmds := m.startSpinners()
	cmds = append(cmds, m.watcher.Wait())
	return tea.Batch(cmds...)
}

// mount swaps in the tree built from sc, stopping the old spinners first so
// their pending ticks are dropped.
func (m *Model) mount(sc *scene.Scene) error {
	root, err := scene.Build(sc)
	if err != nil {
		return err
	}

	m.stopSpinners()
	m.root = root
	m.spinners = Spinners(root)
	m.title = sc.Title
	m.maxWidth = sc.Width
	m.err = nil
	return nil
}

func (m *Model) startSpinners() []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.spinners)+1)
	for _, s := range m.spinners {
		cmds = append(cmds, s.Start())
	}
	return cmds
}

func (m *Model) stopSpinners() {
	for _, s := range m.spinners {
		s.Stop()
	}
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmds []tea.Cmd
		for _, s := range m.spinners {
			if cmd := s.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case SceneChangedMsg:
		m.log.WithFields(map[string]any{"path": msg.Path}).Debug("scene changed")
		cmds := m.reload()
		return m, tea.Batch(append(cmds, m.watcher.Wait())...)

	case WatchErrorMsg:
		m.log.Error(msg.Err, "watch failed")
		m.err = msg.Err
		return m, m.watcher.Wait()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.stopSpinners()
		if err := m.watcher.Close(); err != nil {
			m.log.Error(err, "close watcher")
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Theme):
		m.themeIndex = (m.themeIndex + 1) % len(m.themes)
		m.log.WithFields(map[string]any{"theme": m.themes[m.themeIndex]}).Debug("theme changed")
		return m, nil

	case key.Matches(msg, m.keys.Glyphs):
		m.ascii = !m.ascii
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, tea.Batch(m.reload()...)
	}
	return m, nil
}

// reload rebuilds the tree. On failure the previous tree stays mounted and
// the error is shown above it.
func (m *Model) reload() []tea.Cmd {
	sc, err := m.load()
	if err == nil {
		err = m.mount(sc)
	}
	if err != nil {
		m.log.Warn("reload failed: " + err.Error())
		m.err = err
		return nil
	}
	m.log.Info("scene reloaded")
	return m.startSpinners()
}

// Theme returns the theme currently selected by the user.
func (m Model) Theme() components.Theme {
	theme, err := components.ThemeByName(m.themes[m.themeIndex])
	if err != nil {
		theme = components.DefaultTheme()
	}
	if m.ascii {
		theme = theme.WithGlyphs(components.ASCIIGlyphs())
	}
	return theme
}

// Context returns the render context for the current window.
func (m Model) Context() components.RenderContext {
	ctx := components.DefaultContext().WithTheme(m.Theme()).WithParentWidth(m.width)
	if m.maxWidth > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(m.maxWidth))
	}
	return ctx
}

// View renders the header, the mounted tree, any reload error and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := m.Context()
	theme := ctx.Theme

	title := m.title
	if title == "" {
		title = "tuimorphic"
	}
	header := components.HStack(
		components.EmphasisText(title),
		components.NewBadge(theme.Name).WithVariant(components.BadgeVariantPrimary),
		components.NewBadge(theme.Glyphs.Name).WithVariant(components.BadgeVariantSecondary),
	).WithGap(1)

	sections := []string{header.ViewWithContext(ctx)}
	if m.err != nil {
		sections = append(sections, components.ErrorAlert(m.err.Error()).WithTitle("Reload failed").ViewWithContext(ctx))
	}
	sections = append(sections, m.root.ViewWithContext(ctx), m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// Spinners returns the spinners of the mounted tree.
func (m Model) Spinners() []*components.Spinner {
	return m.spinners
}

// Err returns the last reload or watch error, if any.
func (m Model) Err() error {
	return m.err
}
