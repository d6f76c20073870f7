package components

import "github.com/charmbracelet/lipgloss"

// control holds the state shared by checkbox, radio and toggle.
type control struct {
	BaseComponent
	label    string
	on       bool
	focused  bool
	disabled bool
}

func newControl(label string) control {
	return control{BaseComponent: NewBaseComponent(), label: label}
}

// tone picks the glyph colour: focus wins over state, disabled wins over both.
func (c *control) tone(onTone Tone) Tone {
	switch {
	case c.focused && !c.disabled:
		return TonePrimary
	case c.on:
		return onTone
	default:
		return ToneNeutral
	}
}

// render lays out "<focus> <glyph> [extra] <label>"; extra arrives styled.
func (c *control) render(theme Theme, glyph string, onTone Tone, extra string) string {
	marker := " "
	if c.focused && !c.disabled {
		marker = theme.Glyphs.Focus
	}

	glyphStyle := lipgloss.NewStyle().Foreground(theme.Tone(c.tone(onTone)).Color)
	labelStyle := c.ComputeStyle(theme)
	if c.disabled {
		glyphStyle = glyphStyle.Faint(true)
		labelStyle = labelStyle.Faint(true)
	}

	out := marker + " " + glyphStyle.Render(glyph)
	if extra != "" {
		out += " " + extra
	}
	if c.label != "" {
		out += " " + labelStyle.Render(c.label)
	}
	return out
}

// Label returns the control label.
func (c *control) Label() string { return c.label }

// IsFocused reports focus; disabled controls never show it.
func (c *control) IsFocused() bool { return c.focused && !c.disabled }

// IsDisabled reports the disabled state.
func (c *control) IsDisabled() bool { return c.disabled }
