package components

import (
	"github.com/alexisbeaulieu97/tuimorphic/internal/ui"
)

// Radio is a single labelled option of a mutually exclusive set.
type Radio struct {
	control
}

// NewRadio creates an unselected radio option.
func NewRadio(label string) *Radio {
	return &Radio{control: newControl(label)}
}

// View renders the radio.
func (r *Radio) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the radio with the given theme context.
func (r *Radio) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	glyph := ctx.Theme.Glyphs.RadioOff
	if r.on {
		glyph = ctx.Theme.Glyphs.RadioOn
	}
	return r.render(ctx.Theme, glyph, TonePrimary, "")
}

// WithSelected sets the selected state.
func (r *Radio) WithSelected(selected bool) *Radio {
	r.on = selected
	return r
}

// WithFocused marks the radio as holding focus.
func (r *Radio) WithFocused(focused bool) *Radio {
	r.focused = focused
	return r
}

// WithDisabled sets the disabled state.
func (r *Radio) WithDisabled(disabled bool) *Radio {
	r.disabled = disabled
	return r
}

// IsSelected reports the selected state.
func (r *Radio) IsSelected() bool {
	return r.on
}

// RadioGroup renders options vertically with at most one selected and one
// focused. Indices outside the option list select or focus nothing.
type RadioGroup struct {
	options  []string
	selected int
	focused  int
}

// NewRadioGroup creates a group with nothing selected or focused.
func NewRadioGroup(options ...string) *RadioGroup {
	return &RadioGroup{options: options, selected: -1, focused: -1}
}

// View renders the group.
func (g *RadioGroup) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the group with the given theme context.
func (g *RadioGroup) ViewWithContext(ctx RenderContext) string {
	return VStack(g.Radios()...).ViewWithContext(ctx)
}

// Radios expands the group into its individual options.
func (g *RadioGroup) Radios() []ui.Renderable {
	radios := make([]ui.Renderable, len(g.options))
	for i, option := range g.options {
		radios[i] = NewRadio(option).
			WithSelected(i == g.selected).
			WithFocused(i == g.focused)
	}
	return radios
}

// WithSelected selects the option at index.
func (g *RadioGroup) WithSelected(index int) *RadioGroup {
	g.selected = index
	return g
}

// WithFocused focuses the option at index.
func (g *RadioGroup) WithFocused(index int) *RadioGroup {
	g.focused = index
	return g
}

// Options returns the option labels.
func (g *RadioGroup) Options() []string {
	return g.options
}

// Selected returns the selected index, or -1.
func (g *RadioGroup) Selected() int {
	if g.selected < 0 || g.selected >= len(g.options) {
		return -1
	}
	return g.selected
}

// Focused returns the focused index, or -1.
func (g *RadioGroup) Focused() int {
	if g.focused < 0 || g.focused >= len(g.options) {
		return -1
	}
	return g.focused
}
