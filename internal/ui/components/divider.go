package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 40

// Divider renders a horizontal or vertical rule, optionally labelled.
type Divider struct {
	BaseComponent
	char      string
	label     string
	width     int
	direction Direction
}

// NewDivider creates a horizontal divider drawn with the theme's rule glyph.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		direction:     DirectionHorizontal,
	}
}

// HorizontalDivider creates a horizontal divider.
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical divider; its width is its height.
func VerticalDivider() *Divider {
	return NewDivider().WithDirection(DirectionVertical)
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	width := ctx.availableWidth(d.width, defaultDividerWidth)
	style := d.ComputeStyle(ctx.Theme)

	if d.direction == DirectionVertical {
		char := d.glyph(ctx.Theme.Glyphs.RuleV)
		lines := make([]string, width)
		for i := range lines {
			lines[i] = char
		}
		return style.Render(strings.Join(lines, "\n"))
	}

	char := d.glyph(ctx.Theme.Glyphs.Rule)
	if d.label == "" {
		return style.Render(strings.Repeat(char, width))
	}

	// "── label ──────": the label sits after a two-glyph lead-in.
	label := " " + d.label + " "
	lead := min(2, width)
	rest := max(width-lead-lipgloss.Width(label), 0)
	return style.Render(strings.Repeat(char, lead) + label + strings.Repeat(char, rest))
}

func (d *Divider) glyph(fallback string) string {
	if d.char != "" {
		return d.char
	}
	return fallback
}

// WithChar overrides the theme's rule glyph.
func (d *Divider) WithChar(char string) *Divider {
	d.char = char
	return d
}

// WithLabel embeds a label near the start of a horizontal rule.
func (d *Divider) WithLabel(label string) *Divider {
	d.label = label
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithDirection sets the divider direction.
func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

// WithTone colours the rule.
func (d *Divider) WithTone(tone Tone) *Divider {
	d.AddAppliers(Foreground(tone))
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

// Width returns the explicit divider width, 0 for auto.
func (d *Divider) Width() int {
	return d.width
}

// Label returns the divider label.
func (d *Divider) Label() string {
	return d.label
}

// Direction returns the divider direction.
func (d *Divider) Direction() Direction {
	return d.direction
}

// DashedDivider creates a dashed divider.
func DashedDivider() *Divider {
	return NewDivider().WithChar("-")
}

// DoubleDivider creates a double-line divider.
func DoubleDivider() *Divider {
	return NewDivider().WithChar("═")
}
