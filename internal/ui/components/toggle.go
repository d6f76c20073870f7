package components

import "github.com/charmbracelet/lipgloss"

// Toggle is an on/off switch drawn as a track glyph plus ON/OFF text.
type Toggle struct {
	control
}

// NewToggle creates a toggle in the off position.
func NewToggle(label string) *Toggle {
	return &Toggle{control: newControl(label)}
}

// View renders the toggle.
func (t *Toggle) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the toggle with the given theme context.
func (t *Toggle) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	theme := ctx.Theme

	glyph, state := theme.Glyphs.ToggleOff, "OFF"
	if t.on {
		glyph, state = theme.Glyphs.ToggleOn, "ON "
	}

	stateStyle := lipgloss.NewStyle().Foreground(theme.Tone(t.StateTone()).Color).Bold(t.on)
	if t.disabled {
		stateStyle = stateStyle.Faint(true)
	}
	return t.render(theme, glyph, ToneSuccess, stateStyle.Render(state))
}

// StateTone is Success when on and Neutral when off.
func (t *Toggle) StateTone() Tone {
	if t.on {
		return ToneSuccess
	}
	return ToneNeutral
}

// WithChecked sets the on state.
func (t *Toggle) WithChecked(on bool) *Toggle {
	t.on = on
	return t
}

// WithFocused marks the toggle as holding focus.
func (t *Toggle) WithFocused(focused bool) *Toggle {
	t.focused = focused
	return t
}

// WithDisabled sets the disabled state.
func (t *Toggle) WithDisabled(disabled bool) *Toggle {
	t.disabled = disabled
	return t
}

// IsOn reports the on state.
func (t *Toggle) IsOn() bool {
	return t.on
}
