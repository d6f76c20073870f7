package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerInterval is the time between two spinner frames.
const SpinnerInterval = 100 * time.Millisecond

// Spinner is an indeterminate activity indicator cycling through the theme's
// spinner frames. It is the only stateful component: the frame index lives
// here and advances on accepted ticks between Start and Stop.
type Spinner struct {
	BaseComponent
	label  string
	tone   Tone
	model  spinner.Model
	frame  int
	active bool
}

// NewSpinner creates a stopped spinner with an optional label.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		BaseComponent: NewBaseComponent(),
		label:         label,
		tone:          TonePrimary,
		model:         newSpinnerModel(),
	}
}

func newSpinnerModel() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Spinner{
		Frames: UnicodeGlyphs().SpinnerFrames,
		FPS:    SpinnerInterval,
	}))
}

// Start mounts the spinner: the frame resets to 0, a fresh timer identity is
// taken so ticks from an earlier mount are ignored, and the first tick is
// scheduled one interval from now.
func (s *Spinner) Start() tea.Cmd {
	s.model = newSpinnerModel()
	s.frame = 0
	s.active = true

	id := s.model.ID()
	return tea.Tick(SpinnerInterval, func(t time.Time) tea.Msg {
		return spinner.TickMsg{Time: t, ID: id}
	})
}

// Stop unmounts the spinner. Later ticks are dropped and the chain ends.
func (s *Spinner) Stop() {
	s.active = false
}

// Update advances one frame for a tick addressed to this mount and returns
// the next tick. Anything else returns nil.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !s.active || tick.ID != s.model.ID() {
		return nil
	}

	var cmd tea.Cmd
	s.model, cmd = s.model.Update(tick)
	if cmd == nil {
		return nil
	}
	s.frame = (s.frame + 1) % len(s.model.Spinner.Frames)
	return cmd
}

// View renders the current frame.
func (s *Spinner) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the current frame with the given theme context.
func (s *Spinner) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	theme := ctx.Theme

	frames := theme.Glyphs.frames()
	glyph := lipgloss.NewStyle().Foreground(theme.Tone(s.tone).Color).
		Render(frames[s.frame%len(frames)])
	if s.label == "" {
		return glyph
	}
	return glyph + " " + s.ComputeStyle(theme).Render(s.label)
}

// WithLabel sets the text drawn after the glyph.
func (s *Spinner) WithLabel(label string) *Spinner {
	s.label = label
	return s
}

// WithTone colours the glyph.
func (s *Spinner) WithTone(tone Tone) *Spinner {
	s.tone = tone
	return s
}

// WithAppliers styles the label.
func (s *Spinner) WithAppliers(appliers ...StyleFunc) *Spinner {
	s.AddAppliers(appliers...)
	return s
}

// Frame returns the current frame index.
func (s *Spinner) Frame() int { return s.frame }

// ID identifies the current mount's timer.
func (s *Spinner) ID() int { return s.model.ID() }

// IsActive reports whether the spinner is mounted.
func (s *Spinner) IsActive() bool { return s.active }

// Label returns the label.
func (s *Spinner) Label() string { return s.label }

// Tone returns the glyph tone.
func (s *Spinner) Tone() Tone { return s.tone }
