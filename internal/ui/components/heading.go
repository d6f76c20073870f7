package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Heading is a section title. Level 1 is underlined with a heavy rule.
type Heading struct {
	BaseComponent
	text     string
	subtitle string
	level    int
}

// NewHeading creates a level 1 heading.
func NewHeading(text string) *Heading {
	return &Heading{
		BaseComponent: NewBaseComponent(),
		text:          text,
		level:         1,
	}
}

// View renders the heading.
func (h *Heading) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the heading with the given theme context.
func (h *Heading) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	theme := ctx.Theme
	style := h.ComputeStyle(theme).Inherit(TypographyStyle(theme, h.typography()))

	lines := []string{style.Render(h.text)}
	if h.level == 1 {
		rule := strings.Repeat(theme.Glyphs.RuleHeavy, lipgloss.Width(h.text))
		lines = append(lines, TypographyStyle(theme, TypographyVariantMuted).Render(rule))
	}
	if h.subtitle != "" {
		lines = append(lines, TypographyStyle(theme, TypographyVariantSubtitle).Render(h.subtitle))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (h *Heading) typography() TypographyVariant {
	switch h.level {
	case 1:
		return TypographyVariantTitle
	case 2:
		return TypographyVariantEmphasis
	default:
		return TypographyVariantBody
	}
}

// WithLevel sets the heading level, clamped to 1-6.
func (h *Heading) WithLevel(level int) *Heading {
	h.level = min(max(level, 1), 6)
	return h
}

// WithSubtitle adds a faint line under the heading.
func (h *Heading) WithSubtitle(subtitle string) *Heading {
	h.subtitle = subtitle
	return h
}

// WithAppliers applies theme-based style modifiers.
func (h *Heading) WithAppliers(appliers ...StyleFunc) *Heading {
	h.SetAppliers(appliers...)
	return h
}

// Text returns the heading text.
func (h *Heading) Text() string {
	return h.text
}

// Subtitle returns the heading subtitle.
func (h *Heading) Subtitle() string {
	return h.subtitle
}

// Level returns the heading level.
func (h *Heading) Level() int {
	return h.level
}
