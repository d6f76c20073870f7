package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Alert is a bordered notification: an "icon Title" line over a message.
type Alert struct {
	BaseComponent
	message string
	icon    string
	title   string
	variant AlertVariant
}

// NewAlert creates an info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	theme := ctx.Theme
	tone := theme.Tone(a.variant.Tone())

	style := a.ComputeStyle(theme)
	if strategy := theme.Variants.Get(a.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	} else {
		style = style.Border(theme.Borders.Normal).BorderForeground(tone.Color)
	}
	if width := ctx.availableWidth(0, 0); width > 0 {
		style = style.Width(max(width-style.GetHorizontalBorderSize(), 0))
	}

	heading := lipgloss.NewStyle().Foreground(tone.Color).Bold(true).
		Render(a.Icon(theme) + " " + a.Title(theme))

	lines := []string{heading}
	if a.message != "" {
		lines = append(lines, a.message)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithIcon overrides the variant's icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle overrides the variant's default title.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// Variant returns the alert variant.
func (a *Alert) Variant() AlertVariant {
	return a.variant
}

// Title returns the explicit title or the variant's default from theme.
func (a *Alert) Title(theme Theme) string {
	if a.title != "" {
		return a.title
	}
	return theme.Tone(a.variant.Tone()).Title
}

// Icon returns the explicit icon or the variant's icon from theme.
func (a *Alert) Icon(theme Theme) string {
	if a.icon != "" {
		return a.icon
	}
	return theme.Tone(a.variant.Tone()).Icon
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantInfo)
}
