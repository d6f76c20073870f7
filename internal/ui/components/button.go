package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button is a bracketed, focusable action label. It only draws; key
// handling belongs to whoever owns focus.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	focused  bool
}

// NewButton creates a new primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	glyphs := ctx.Theme.Glyphs

	marker := " "
	if b.IsFocused() {
		marker = glyphs.Focus
	}
	return marker + b.computeStyle(ctx.Theme).Render("[ "+b.label+" ]")
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	} else {
		style = Foreground(b.variant.Tone())(style, theme)
	}

	switch {
	case b.disabled:
		style = style.Faint(true)
	case b.focused:
		style = style.Reverse(true)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocused marks the button as holding focus.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Variant returns the button variant.
func (b *Button) Variant() ButtonVariant {
	return b.variant
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsFocused reports focus; a disabled button never shows focus.
func (b *Button) IsFocused() bool {
	return b.focused && !b.disabled
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// ErrorButton creates an error/danger button.
func ErrorButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantError)
}

// MutedButton creates a muted/neutral button.
func MutedButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantMuted)
}
