package components

// Checkbox is a labelled two-state box.
type Checkbox struct {
	control
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{control: newControl(label)}
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the checkbox with the given theme context.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	glyph := ctx.Theme.Glyphs.CheckboxOff
	if c.on {
		glyph = ctx.Theme.Glyphs.CheckboxOn
	}
	return c.render(ctx.Theme, glyph, ToneSuccess, "")
}

// WithChecked sets the checked state.
func (c *Checkbox) WithChecked(checked bool) *Checkbox {
	c.on = checked
	return c
}

// WithFocused marks the checkbox as holding focus.
func (c *Checkbox) WithFocused(focused bool) *Checkbox {
	c.focused = focused
	return c
}

// WithDisabled sets the disabled state.
func (c *Checkbox) WithDisabled(disabled bool) *Checkbox {
	c.disabled = disabled
	return c
}

// IsChecked reports the checked state.
func (c *Checkbox) IsChecked() bool {
	return c.on
}
